package postgres

import (
	"encoding/json"
	"fmt"
)

// Scanner is satisfied by both pgx.Row and pgx.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// MarshalJSONB encodes v for a jsonb parameter. A nil map is stored as {}.
func MarshalJSONB(v map[string]any) ([]byte, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

// UnmarshalJSONB decodes a jsonb column into a map. NULL and empty input
// yield an empty map.
func UnmarshalJSONB(b []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("unmarshal jsonb: %w", err)
	}
	return out, nil
}
