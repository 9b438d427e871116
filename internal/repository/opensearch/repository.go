package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/shopstack/commerce-analytics-api/internal/config"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
)

type Repository interface {
	// IndexProduct indexes a single product into the tenant's index
	IndexProduct(ctx context.Context, product *domain.Product) error
	// BulkIndexProducts indexes multiple products
	BulkIndexProducts(ctx context.Context, products []domain.Product) error
	// DeleteProduct removes a product document
	DeleteProduct(ctx context.Context, tenantID, productID string) error
	// SearchProducts runs a full-text product search within the resolved tenant's index
	SearchProducts(ctx context.Context, filter *domain.ProductFilter) ([]domain.Product, error)
	// DeleteTenantIndex removes a tenant's product index
	DeleteTenantIndex(ctx context.Context, tenantID string) error
}

type repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) Repository {
	return &repository{
		client: client,
		config: config,
	}
}

func (r *repository) IndexProduct(ctx context.Context, product *domain.Product) error {
	indexName := r.config.GetProductIndexName(product.TenantID)

	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: product.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *repository) BulkIndexProducts(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	// Group by tenant so each document lands in its tenant's index.
	var bulkBody strings.Builder
	for _, product := range products {
		action := map[string]any{
			"index": map[string]any{
				"_index": r.config.GetProductIndexName(product.TenantID),
				"_id":    product.ID,
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		bulkBody.Write(actionLine)
		bulkBody.WriteString("\n")

		docLine, err := json.Marshal(product)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		bulkBody.Write(docLine)
		bulkBody.WriteString("\n")
	}

	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(bulkBody.String()),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

func (r *repository) DeleteProduct(ctx context.Context, tenantID, productID string) error {
	req := opensearchapi.DeleteRequest{
		Index:      r.config.GetProductIndexName(tenantID),
		DocumentID: productID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	// A missing document is fine; the index may not have caught up yet.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete request failed: %s", res.String())
	}

	return nil
}

func (r *repository) SearchProducts(ctx context.Context, filter *domain.ProductFilter) ([]domain.Product, error) {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	query := r.buildSearchQuery(filter)

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetProductIndexName(tenantID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.Product{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var products []domain.Product
	for _, hit := range searchResult.Hits.Hits {
		products = append(products, hit.Source)
	}

	return products, nil
}

func (r *repository) DeleteTenantIndex(ctx context.Context, tenantID string) error {
	req := opensearchapi.IndicesDeleteRequest{
		Index: []string{r.config.GetProductIndexName(tenantID)},
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete index request failed: %s", res.String())
	}

	return nil
}

// buildSearchQuery constructs the OpenSearch query based on the filter
func (r *repository) buildSearchQuery(filter *domain.ProductFilter) map[string]any {
	must := make([]map[string]any, 0)

	if filter.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  filter.Query,
				"fields": []string{"name^3", "description", "sku", "category"},
			},
		})
	}
	if filter.Category != "" {
		must = append(must, createTermQuery("category", filter.Category))
	}
	if filter.SKU != "" {
		must = append(must, createTermQuery("sku", filter.SKU))
	}
	if filter.Active != nil {
		must = append(must, createTermQuery("is_active", *filter.Active))
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		must = append(must, createPriceRangeQuery(filter.MinPrice, filter.MaxPrice))
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query["from"] = (filter.Page - 1) * filter.PageSize
		query["size"] = filter.PageSize
	}

	query["sort"] = []map[string]any{
		{"_score": map[string]any{"order": "desc"}},
		{"created_at": map[string]any{"order": "desc", "unmapped_type": "date"}},
	}

	return query
}

func createTermQuery(field string, value any) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: value,
		},
	}
}

func createPriceRangeQuery(min, max float64) map[string]any {
	rangeQuery := map[string]any{}
	if min > 0 {
		rangeQuery["gte"] = min
	}
	if max > 0 {
		rangeQuery["lte"] = max
	}
	return map[string]any{
		"range": map[string]any{
			"price": rangeQuery,
		},
	}
}
