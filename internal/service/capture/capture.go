package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// CaptureSignature signs one area as the holder of input.Token. An area is
// signed at most once and an existing signature is never overwritten. A
// signer with several areas signs each of them; the signature recorded on
// the signer is the first one.
func (s *Service) CaptureSignature(ctx context.Context, input CaptureInput) (CaptureResult, error) {
	if err := input.Validate(s.maxBytes); err != nil {
		return CaptureResult{}, err
	}

	signer, err := s.guard.Authorize(ctx, input.Token)
	if err != nil {
		return CaptureResult{}, err
	}

	req, err := s.requests.GetByID(ctx, signer.SignatureRequestID)
	if err != nil {
		return CaptureResult{}, fmt.Errorf("get signature request: %w", err)
	}
	if !signable(req.Status) {
		return CaptureResult{}, fmt.Errorf("sign on %s request: %w", req.Status, domain.ErrInvalidTransition)
	}

	area, err := s.areas.GetByID(ctx, input.AreaID)
	if err != nil {
		return CaptureResult{}, fmt.Errorf("get signature area: %w", err)
	}
	if area.DocumentID == nil || *area.DocumentID != req.DocumentID {
		return CaptureResult{}, fmt.Errorf("signature_area %s: %w", area.ID, domain.ErrNotFound)
	}

	if input.Role != "" && input.Role != signer.Role {
		return CaptureResult{}, fmt.Errorf("signer is %s, claimed %s: %w", signer.Role, input.Role, domain.ErrForbidden)
	}
	if !signer.Role.CanSign(area.Role) {
		return CaptureResult{}, fmt.Errorf("%s may not sign a %s area: %w", signer.Role, area.Role, domain.ErrForbidden)
	}

	if _, err := s.areas.GetBinding(ctx, area.ID); err == nil {
		return CaptureResult{}, fmt.Errorf("signature_area %s: %w", area.ID, domain.ErrAlreadySigned)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return CaptureResult{}, fmt.Errorf("get area binding: %w", err)
	}

	sigType := input.SignatureType
	if sigType == "" {
		sigType = domain.SignatureTypeElectronic
	}
	capture := domain.SignatureCapture{
		SignatureData: input.ImageData,
		SignatureType: sigType,
		SignedAt:      s.now(),
		Evidence:      evidence(input.Evidence),
	}
	binding := domain.AreaBinding{AreaID: area.ID, SignerID: signer.ID, SignedAt: capture.SignedAt}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.areas.Bind(txCtx, binding); err != nil {
			return fmt.Errorf("bind area: %w", err)
		}
		if !signer.HasSigned() {
			signed, err := s.signers.MarkSigned(txCtx, signer.ID, capture)
			if err != nil {
				return fmt.Errorf("mark signed: %w", err)
			}
			signer = signed
		}
		_, err := s.events.Append(txCtx, domain.DocumentEvent{
			DocumentID:         req.DocumentID,
			SignatureRequestID: &req.ID,
			SignerID:           &signer.ID,
			EventType:          domain.EventTypeSigned,
			EventData: map[string]any{
				"area_id":        area.ID.String(),
				"page":           area.Page,
				"role":           area.Role.String(),
				"signature_type": sigType.String(),
				"device_type":    capture.Evidence.DeviceInfo.Type.String(),
			},
			IPAddress: strOrNil(capture.Evidence.IPAddress),
			UserAgent: strOrNil(capture.Evidence.UserAgent),
		})
		if err != nil {
			return fmt.Errorf("append signed event: %w", err)
		}
		return nil
	})
	if err != nil {
		return CaptureResult{}, err
	}

	s.metrics.SignatureCaptured(area.Role.String())
	s.log.InfoContext(ctx, "signature captured",
		slog.String("request_id", req.ID.String()),
		slog.String("signer_id", signer.ID.String()),
		slog.String("area_id", area.ID.String()),
	)

	result := CaptureResult{Signer: signer, Binding: binding}
	result.RequestCompleted = s.afterCapture(ctx, req)
	return result, nil
}

// afterCapture runs the completion check and, on completion, refreshes the
// document hash. The signature is already committed, so failures here are
// logged and left for the next capture or a staff retry.
func (s *Service) afterCapture(ctx context.Context, req domain.SignatureRequest) bool {
	completed, err := s.completion.CheckCompletion(ctx, req.ID)
	if err != nil {
		s.log.ErrorContext(ctx, "completion check failed",
			slog.String("request_id", req.ID.String()),
			slog.String("error", err.Error()),
		)
		return false
	}
	if !completed {
		return false
	}

	if _, err := s.hashes.RefreshHash(ctx, req.DocumentID); err != nil {
		s.log.ErrorContext(ctx, "refresh document hash failed",
			slog.String("document_id", req.DocumentID.String()),
			slog.String("error", err.Error()),
		)
	}
	return true
}
