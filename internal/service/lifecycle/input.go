package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const (
	maxTitleLen   = 255
	maxMessageLen = 4000
	maxSigners    = 50
	maxReasonLen  = 1000
)

// CreateRequestInput holds the parameters for creating a signature request.
type CreateRequestInput struct {
	DocumentID uuid.UUID
	Title      string
	Message    *string
	ExpiresAt  *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateRequestInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLen)})
	}
	if i.Message != nil && len(*i.Message) > maxMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: fmt.Sprintf("max %d characters", maxMessageLen)})
	}
	if i.ExpiresAt != nil && !i.ExpiresAt.After(now) {
		errs = append(errs, domain.FieldError{Field: "expires_at", Message: "must be in the future"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SignerInput describes one signer to add.
type SignerInput struct {
	Name         string
	Email        string
	Phone        *string
	Role         domain.SignerRole
	SigningOrder int
}

// AddSignersInput holds the parameters for adding signers to a draft request.
type AddSignersInput struct {
	RequestID uuid.UUID
	Signers   []SignerInput
}

// Validate checks all fields and collects all errors.
func (i AddSignersInput) Validate() error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if len(i.Signers) == 0 {
		errs = append(errs, domain.FieldError{Field: "signers", Message: "at least one signer is required"})
	}
	if len(i.Signers) > maxSigners {
		errs = append(errs, domain.FieldError{Field: "signers", Message: fmt.Sprintf("max %d signers", maxSigners)})
	}

	seen := make(map[string]bool, len(i.Signers))
	for idx, sg := range i.Signers {
		prefix := fmt.Sprintf("signers[%d].", idx)
		if strings.TrimSpace(sg.Name) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "name", Message: "required"})
		}
		email := strings.ToLower(strings.TrimSpace(sg.Email))
		if err := validate.Var(email, "required,email"); err != nil {
			errs = append(errs, domain.FieldError{Field: prefix + "email", Message: "must be a valid email"})
		} else if seen[email] {
			errs = append(errs, domain.FieldError{Field: prefix + "email", Message: "duplicate signer"})
		}
		seen[email] = true
		if sg.Phone != nil {
			if err := validate.Var(strings.TrimSpace(*sg.Phone), "e164"); err != nil {
				errs = append(errs, domain.FieldError{Field: prefix + "phone", Message: "must be in E.164 format"})
			}
		}
		if sg.Role != "" && !sg.Role.IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + "role", Message: "unknown role"})
		}
		if sg.SigningOrder < 0 {
			errs = append(errs, domain.FieldError{Field: prefix + "signing_order", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SendInput holds the parameters for sending a request to its signers.
// Email is always used; WhatsApp is added when requested.
type SendInput struct {
	RequestID uuid.UUID
	Channels  []domain.NotificationChannel
}

// Validate checks all fields and collects all errors.
func (i SendInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	for idx, c := range i.Channels {
		if c != domain.NotificationChannelEmail && c != domain.NotificationChannelWhatsApp {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("channels[%d]", idx), Message: "unsupported channel"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i SendInput) wantsWhatsApp() bool {
	for _, c := range i.Channels {
		if c == domain.NotificationChannelWhatsApp {
			return true
		}
	}
	return false
}

// DeclineInput holds the parameters for a signer declining to sign.
type DeclineInput struct {
	Token    string
	Reason   *string
	Evidence domain.SigningEvidence
}

// Validate checks all fields and collects all errors.
func (i DeclineInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Token) == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	}
	if i.Reason != nil && len(*i.Reason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: fmt.Sprintf("max %d characters", maxReasonLen)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
