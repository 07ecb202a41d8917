package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
	"github.com/heartmarshall/docsign-backend/internal/service/integrity"
	"github.com/heartmarshall/docsign-backend/internal/transport/rest/loader"
)

type integrityService interface {
	RenderAndHash(ctx context.Context, input integrity.RenderInput) (domain.HashResult, error)
	VerifyContent(ctx context.Context, documentID uuid.UUID) (integrity.VerifyResult, error)
	BuildCertificate(ctx context.Context, documentID uuid.UUID) (domain.Certificate, error)
	ListEvents(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentEvent, error)
}

type requestLister interface {
	ListRequests(ctx context.Context, documentID uuid.UUID) ([]domain.SignatureRequest, error)
}

// DocumentHandler serves the staff endpoints scoped to one document.
type DocumentHandler struct {
	integrity integrityService
	requests  requestLister
	log       *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(integrity integrityService, requests requestLister, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{integrity: integrity, requests: requests, log: logger.With("handler", "documents")}
}

type renderRequest struct {
	TemplateVersionID *uuid.UUID     `json:"templateVersionId"`
	FieldValues       map[string]any `json:"fieldValues"`
}

// Render handles POST /documents/{id}/render.
func (h *DocumentHandler) Render(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req renderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.integrity.RenderAndHash(r.Context(), integrity.RenderInput{
		DocumentID:        id,
		TemplateVersionID: req.TemplateVersionID,
		FieldValues:       req.FieldValues,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHashResponse(result))
}

// Verify handles GET /documents/{id}/verify.
func (h *DocumentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	result, err := h.integrity.VerifyContent(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVerifyResponse(result))
}

// Certificate handles GET /documents/{id}/certificate.
func (h *DocumentHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	cert, err := h.integrity.BuildCertificate(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCertificateResponse(cert))
}

// Events handles GET /documents/{id}/events.
func (h *DocumentHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	events, err := h.integrity.ListEvents(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events))
}

// Requests handles GET /documents/{id}/requests. Signers of all listed
// requests are fetched in one batch through the request loaders.
func (h *DocumentHandler) Requests(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	reqs, err := h.requests.ListRequests(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
	}
	signers, err := loader.FromContext(r.Context()).SignersFor(r.Context(), ids)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]requestResponse, 0, len(reqs))
	for _, req := range reqs {
		resp := toRequestResponse(req)
		resp.Signers = toSignerResponses(signers[req.ID])
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, out)
}
