package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a flat-file JSON export of grievance records. A missing file or
// invalid JSON is a source-level failure and propagates to the caller; an
// empty file or empty array is a valid, zero-record input.
func Load(path string) ([]RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []RawRecord{}, nil
	}

	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records file: %w", err)
	}

	return records, nil
}

// FromMaps converts collaborator-supplied record mappings into raw records.
// Field coercion is tolerant: a missing or mistyped field yields the zero
// value for that field rather than an error.
func FromMaps(rows []map[string]interface{}) []RawRecord {
	records := make([]RawRecord, 0, len(rows))

	for _, row := range rows {
		records = append(records, RawRecord{
			ID:         intField(row, "id"),
			Category:   stringField(row, "category"),
			Status:     stringField(row, "status"),
			CreatedAt:  stringField(row, "created_at"),
			ResolvedAt: stringField(row, "resolved_at"),
		})
	}

	return records
}

func intField(row map[string]interface{}, key string) int {
	switch v := row[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		// encoding/json decodes all numbers as float64
		return int(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	default:
		return 0
	}
}

func stringField(row map[string]interface{}, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}
