package utils

import (
	"fmt"
	"time"
)

// ParseWindowTime parses a report window boundary. Accepts RFC3339 or a bare
// YYYY-MM-DD date; a bare end date is widened to the end of that day so the
// whole day falls inside the window.
func ParseWindowTime(timeStr string, isEnd bool) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}

	if isEnd {
		t = t.Add(24*time.Hour - time.Second)
	}

	return t, nil
}

// Window resolves an optional start/end pair, defaulting to the trailing 30
// days ending now.
func Window(startStr, endStr string) (time.Time, time.Time, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if startStr != "" {
		t, err := ParseWindowTime(startStr, false)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	}
	if endStr != "" {
		t, err := ParseWindowTime(endStr, true)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end time %s is before start time %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	return start, end, nil
}
