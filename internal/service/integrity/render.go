package integrity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// RenderInput holds the resolved field values of a document render.
type RenderInput struct {
	DocumentID        uuid.UUID
	TemplateVersionID *uuid.UUID
	FieldValues       map[string]any
}

// Validate checks all fields and collects all errors.
func (i RenderInput) Validate() error {
	var errs []domain.FieldError
	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	}
	if i.TemplateVersionID != nil && *i.TemplateVersionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_version_id", Message: "must not be the nil id"})
	}
	for k := range i.FieldValues {
		if k == "" {
			errs = append(errs, domain.FieldError{Field: "field_values", Message: "empty field name"})
			break
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RenderAndHash stores the field values of a render with both digests and
// appends a generated event. Nothing is persisted if the values cannot be
// serialized.
func (s *Service) RenderAndHash(ctx context.Context, input RenderInput) (domain.HashResult, error) {
	if err := input.Validate(); err != nil {
		return domain.HashResult{}, err
	}

	doc, err := s.documents.GetByID(ctx, input.DocumentID)
	if err != nil {
		return domain.HashResult{}, fmt.Errorf("get document: %w", err)
	}

	tv := input.TemplateVersionID
	if tv == nil {
		tv = doc.TemplateVersionID
	} else if doc.TemplateVersionID != nil && *doc.TemplateVersionID != *tv {
		return domain.HashResult{}, domain.NewValidationError("template_version_id", "does not match the document")
	}

	return s.hashAndStore(ctx, doc, tv, input.FieldValues, "render")
}

// RefreshHash recomputes both digests from the stored field values.
func (s *Service) RefreshHash(ctx context.Context, documentID uuid.UUID) (domain.HashResult, error) {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return domain.HashResult{}, fmt.Errorf("get document: %w", err)
	}
	return s.hashAndStore(ctx, doc, doc.TemplateVersionID, doc.FieldValues, "refresh")
}

// VerifyContent recomputes the content digest and compares it with the
// stored one. A document that was never hashed does not verify.
func (s *Service) VerifyContent(ctx context.Context, documentID uuid.UUID) (VerifyResult, error) {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("get document: %w", err)
	}

	computed, err := ContentDigest(doc.TemplateVersionID, doc.FieldValues)
	if err != nil {
		return VerifyResult{}, err
	}
	res := VerifyResult{DocumentID: doc.ID, Computed: computed}
	if doc.ContentSHA256Hex != nil {
		res.Stored = *doc.ContentSHA256Hex
		res.Valid = res.Stored == computed
	}
	if !res.Valid {
		s.log.WarnContext(ctx, "document content digest mismatch",
			slog.String("document_id", doc.ID.String()),
			slog.String("stored", res.Stored),
			slog.String("computed", computed),
		)
	}
	return res, nil
}

func (s *Service) hashAndStore(
	ctx context.Context,
	doc domain.Document,
	tv *uuid.UUID,
	fields map[string]any,
	trigger string,
) (domain.HashResult, error) {
	generatedAt := s.now().UTC()

	stamped, err := TimestampedDigest(tv, fields, generatedAt)
	if err != nil {
		return domain.HashResult{}, domain.NewValidationError("field_values", "not serializable")
	}
	content, err := ContentDigest(tv, fields)
	if err != nil {
		return domain.HashResult{}, domain.NewValidationError("field_values", "not serializable")
	}

	metadata := map[string]any{"resolved_fields": len(fields)}
	if tv != nil {
		metadata["template_version_id"] = tv.String()
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.documents.UpdateIntegrity(txCtx, doc.ID, domain.DocumentIntegrity{
			TemplateVersionID: tv,
			SHA256Hex:         stamped,
			ContentSHA256Hex:  content,
			GeneratedAt:       generatedAt,
			FieldValues:       fields,
			Metadata:          metadata,
		}); err != nil {
			return fmt.Errorf("update document integrity: %w", err)
		}
		if _, err := s.events.Append(txCtx, domain.DocumentEvent{
			DocumentID: doc.ID,
			EventType:  domain.EventTypeGenerated,
			EventData: map[string]any{
				"trigger":            trigger,
				"sha256_hex":         stamped,
				"content_sha256_hex": content,
			},
		}); err != nil {
			return fmt.Errorf("append generated event: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.HashResult{}, err
	}

	s.log.InfoContext(ctx, "document hashed",
		slog.String("document_id", doc.ID.String()),
		slog.String("trigger", trigger),
	)
	return domain.HashResult{SHA256Hex: stamped, ContentSHA256Hex: content, GeneratedAt: generatedAt}, nil
}
