package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/docsign-backend/internal/domain"
	"github.com/heartmarshall/docsign-backend/internal/service/capture"
	"github.com/heartmarshall/docsign-backend/internal/service/lifecycle"
	"github.com/heartmarshall/docsign-backend/pkg/ctxutil"
)

type captureService interface {
	SigningView(ctx context.Context, token string) (capture.View, error)
	CaptureSignature(ctx context.Context, input capture.CaptureInput) (capture.CaptureResult, error)
}

type declineService interface {
	Decline(ctx context.Context, input lifecycle.DeclineInput) (domain.Signer, error)
}

// SigningHandler serves the public endpoints a signer reaches through the
// link in their invitation. The path token is the only credential.
type SigningHandler struct {
	capture  captureService
	declines declineService
	log      *slog.Logger
}

// NewSigningHandler creates a SigningHandler.
func NewSigningHandler(capture captureService, declines declineService, logger *slog.Logger) *SigningHandler {
	return &SigningHandler{capture: capture, declines: declines, log: logger.With("handler", "signing")}
}

type captureRequest struct {
	Role          string `json:"role"`
	ImageData     string `json:"imageData"`
	SignatureType string `json:"signatureType"`
	ScreenWidth   int    `json:"screenWidth"`
	ScreenHeight  int    `json:"screenHeight"`
}

type declineRequest struct {
	Reason *string `json:"reason"`
}

// View handles GET /sign/{token}.
func (h *SigningHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.capture.SigningView(r.Context(), r.PathValue("token"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSigningViewResponse(view))
}

// Capture handles POST /sign/{token}/areas/{areaID}/signature.
func (h *SigningHandler) Capture(w http.ResponseWriter, r *http.Request) {
	areaID, err := pathUUID(r, "areaID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req captureRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ip, ua := ctxutil.ClientFromCtx(r.Context())
	result, err := h.capture.CaptureSignature(r.Context(), capture.CaptureInput{
		Token:         r.PathValue("token"),
		AreaID:        areaID,
		Role:          domain.SignerRole(req.Role),
		ImageData:     req.ImageData,
		SignatureType: domain.SignatureType(req.SignatureType),
		Evidence: capture.Evidence{
			IP:           ip,
			UserAgent:    ua,
			ScreenWidth:  req.ScreenWidth,
			ScreenHeight: req.ScreenHeight,
		},
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCaptureResponse(result))
}

// Decline handles POST /sign/{token}/decline.
func (h *SigningHandler) Decline(w http.ResponseWriter, r *http.Request) {
	var req declineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ip, ua := ctxutil.ClientFromCtx(r.Context())
	signer, err := h.declines.Decline(r.Context(), lifecycle.DeclineInput{
		Token:  r.PathValue("token"),
		Reason: req.Reason,
		Evidence: domain.SigningEvidence{
			IPAddress: capture.NormalizeIP(ip),
			UserAgent: ua,
			DeviceInfo: domain.DeviceInfo{
				Type:      capture.ClassifyDevice(ua, 0),
				UserAgent: ua,
			},
		},
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSignerResponse(signer))
}
