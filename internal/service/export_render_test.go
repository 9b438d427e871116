package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRenderCSV(t *testing.T) {
	rows := [][]string{
		{"WM-1001", "Wireless Mouse", "electronics", "29.99", "12.50", "250", "20", "true", "2024-03-01T00:00:00Z"},
		{"KB-2002", "Keyboard, mechanical", "electronics", "89.00", "41.00", "80", "10", "true", "2024-03-02T00:00:00Z"},
	}

	data, err := renderCSV(productExportHeader, rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, productExportHeader, records[0])
	assert.Equal(t, rows[0], records[1])
	// Embedded commas survive the round trip
	assert.Equal(t, "Keyboard, mechanical", records[2][1])
}

func TestRenderCSVEmpty(t *testing.T) {
	data, err := renderCSV(orderExportHeader, nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, orderExportHeader, records[0])
}

func TestRenderXLSX(t *testing.T) {
	rows := [][]string{
		{"jane@example.com", "Jane", "Doe", "+1-555-0100", "Portland", "US", "true", "2024-03-01T00:00:00Z"},
	}

	data, err := renderXLSX("customers", customerExportHeader, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// The placeholder sheet is replaced by the resource sheet
	assert.Equal(t, []string{"customers"}, f.GetSheetList())

	cells, err := f.GetRows("customers")
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, customerExportHeader, cells[0])
	assert.Equal(t, "jane@example.com", cells[1][0])
	assert.Equal(t, "Jane", cells[1][1])
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "29.99", formatAmount(29.99))
	assert.Equal(t, "0.00", formatAmount(0))
	assert.Equal(t, "100.50", formatAmount(100.5))
	assert.Equal(t, "-5.25", formatAmount(-5.25))
}
