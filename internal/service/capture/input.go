package capture

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// acceptedImageTypes are the media types a signature image may declare.
var acceptedImageTypes = []string{"image/png", "image/jpeg", "image/svg+xml"}

// Evidence is the client environment reported with a signature.
type Evidence struct {
	IP           string
	UserAgent    string
	ScreenWidth  int
	ScreenHeight int
}

// CaptureInput holds the parameters for signing one area.
type CaptureInput struct {
	Token         string
	AreaID        uuid.UUID
	Role          domain.SignerRole
	ImageData     string
	SignatureType domain.SignatureType
	Evidence      Evidence
}

// Validate checks all fields and collects all errors. maxBytes caps the
// decoded image size.
func (i CaptureInput) Validate(maxBytes int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Token) == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	}
	if i.AreaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "area_id", Message: "required"})
	}
	if i.Role != "" && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}
	if i.SignatureType != "" && !i.SignatureType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "signature_type", Message: "unknown signature type"})
	}
	if i.Evidence.ScreenWidth < 0 || i.Evidence.ScreenHeight < 0 {
		errs = append(errs, domain.FieldError{Field: "screen", Message: "must be non-negative"})
	}
	if err := ValidateImageData(i.ImageData, maxBytes); err != nil {
		errs = append(errs, domain.FieldError{Field: "image_data", Message: err.Error()})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ValidateImageData checks that raw is a base64 data URL of an accepted
// image type whose decoded content really is that type.
func ValidateImageData(raw string, maxBytes int) error {
	if raw == "" {
		return errors.New("required")
	}
	header, payload, ok := strings.Cut(raw, ",")
	if !ok || !strings.HasPrefix(header, "data:") {
		return errors.New("must be a data URL")
	}
	declared, encoding, ok := strings.Cut(strings.TrimPrefix(header, "data:"), ";")
	if !ok || encoding != "base64" {
		return errors.New("must be base64 encoded")
	}
	declared = strings.ToLower(declared)
	if !accepted(declared) {
		return fmt.Errorf("unsupported image type %q", declared)
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > maxBytes+2 {
		return fmt.Errorf("image exceeds %d bytes", maxBytes)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return errors.New("invalid base64 payload")
	}
	if len(decoded) == 0 {
		return errors.New("image is empty")
	}
	if len(decoded) > maxBytes {
		return fmt.Errorf("image exceeds %d bytes", maxBytes)
	}

	if detected := mimetype.Detect(decoded); !detected.Is(declared) {
		return fmt.Errorf("content is %s, declared %s", detected.String(), declared)
	}
	return nil
}

func accepted(mediaType string) bool {
	for _, t := range acceptedImageTypes {
		if t == mediaType {
			return true
		}
	}
	return false
}
