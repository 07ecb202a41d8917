package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
	"github.com/heartmarshall/docsign-backend/internal/service/lifecycle"
)

type lifecycleService interface {
	CreateRequest(ctx context.Context, input lifecycle.CreateRequestInput) (domain.SignatureRequest, error)
	AddSigners(ctx context.Context, input lifecycle.AddSignersInput) ([]domain.Signer, error)
	Send(ctx context.Context, input lifecycle.SendInput) (lifecycle.SendResult, error)
	Remind(ctx context.Context, requestID uuid.UUID) (lifecycle.SendResult, error)
	Cancel(ctx context.Context, requestID uuid.UUID, reason *string) (domain.SignatureRequest, error)
	GetRequest(ctx context.Context, id uuid.UUID) (lifecycle.RequestView, error)
}

// RequestHandler serves the staff endpoints that manage signature requests.
type RequestHandler struct {
	svc lifecycleService
	log *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc lifecycleService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, log: logger.With("handler", "requests")}
}

type createRequestRequest struct {
	DocumentID uuid.UUID  `json:"documentId"`
	Title      string     `json:"title"`
	Message    *string    `json:"message"`
	ExpiresAt  *time.Time `json:"expiresAt"`
}

type signerRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Role         string  `json:"role"`
	SigningOrder int     `json:"signingOrder"`
}

type addSignersRequest struct {
	Signers []signerRequest `json:"signers"`
}

type sendRequest struct {
	Channels []string `json:"channels"`
}

type cancelRequest struct {
	Reason *string `json:"reason"`
}

// Create handles POST /requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateRequest(r.Context(), lifecycle.CreateRequestInput{
		DocumentID: req.DocumentID,
		Title:      req.Title,
		Message:    req.Message,
		ExpiresAt:  req.ExpiresAt,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(created))
}

// Get handles GET /requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	view, err := h.svc.GetRequest(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestViewResponse(view))
}

// AddSigners handles POST /requests/{id}/signers.
func (h *RequestHandler) AddSigners(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req addSignersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := lifecycle.AddSignersInput{RequestID: id, Signers: make([]lifecycle.SignerInput, 0, len(req.Signers))}
	for _, s := range req.Signers {
		input.Signers = append(input.Signers, lifecycle.SignerInput{
			Name:         s.Name,
			Email:        s.Email,
			Phone:        s.Phone,
			Role:         domain.SignerRole(s.Role),
			SigningOrder: s.SigningOrder,
		})
	}

	signers, err := h.svc.AddSigners(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSignerResponses(signers))
}

// Send handles POST /requests/{id}/send.
func (h *RequestHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req sendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := lifecycle.SendInput{RequestID: id}
	for _, c := range req.Channels {
		input.Channels = append(input.Channels, domain.NotificationChannel(c))
	}

	result, err := h.svc.Send(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSendResponse(result))
}

// Remind handles POST /requests/{id}/remind.
func (h *RequestHandler) Remind(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	result, err := h.svc.Remind(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSendResponse(result))
}

// Cancel handles POST /requests/{id}/cancel.
func (h *RequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req cancelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	cancelled, err := h.svc.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(cancelled))
}
