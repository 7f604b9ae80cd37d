package utils

import (
	"encoding/json"
	"fmt"
)

// ToMap converts a JSON-serialisable record into its field map
func ToMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	out := make(map[string]any)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return out, nil
}

// FilterMapFields keeps only the named keys; an empty field list keeps everything
func FilterMapFields(data map[string]any, fields []string) map[string]any {
	if len(fields) == 0 {
		return data
	}
	out := make(map[string]any, len(fields))
	for _, key := range fields {
		if val, ok := data[key]; ok {
			out[key] = val
		}
	}
	return out
}

// ProjectRecords maps each record and applies the projection
func ProjectRecords[T any](records []T, fields []string) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(records))
	for i := range records {
		m, err := ToMap(records[i])
		if err != nil {
			return nil, err
		}
		out = append(out, FilterMapFields(m, fields))
	}
	return out, nil
}
