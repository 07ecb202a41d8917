package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// digestPayload is the canonical serialization that is hashed.
// encoding/json writes map keys in sorted order.
type digestPayload struct {
	TemplateVersionID *uuid.UUID     `json:"template_version_id"`
	FieldValues       map[string]any `json:"field_values"`
	Timestamp         string         `json:"timestamp,omitempty"`
}

// TimestampedDigest hashes the field values together with the render time.
// Two renders of the same content differ, so it marks freshness.
func TimestampedDigest(templateVersionID *uuid.UUID, fieldValues map[string]any, ts time.Time) (string, error) {
	return digest(digestPayload{
		TemplateVersionID: templateVersionID,
		FieldValues:       normalize(fieldValues),
		Timestamp:         ts.UTC().Format(time.RFC3339Nano),
	})
}

// ContentDigest hashes only the template version and field values, so it
// changes exactly when the content does.
func ContentDigest(templateVersionID *uuid.UUID, fieldValues map[string]any) (string, error) {
	return digest(digestPayload{
		TemplateVersionID: templateVersionID,
		FieldValues:       normalize(fieldValues),
	})
}

func digest(p digestPayload) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal digest payload: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// normalize makes nil and empty field values hash the same.
func normalize(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
