package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
	"github.com/heartmarshall/docsign-backend/internal/service/capture"
	"github.com/heartmarshall/docsign-backend/internal/service/integrity"
	"github.com/heartmarshall/docsign-backend/internal/service/lifecycle"
)

type requestResponse struct {
	ID          uuid.UUID        `json:"id"`
	DocumentID  uuid.UUID        `json:"documentId"`
	Title       string           `json:"title"`
	Message     *string          `json:"message,omitempty"`
	Status      string           `json:"status"`
	CreatedBy   uuid.UUID        `json:"createdBy"`
	ExpiresAt   *time.Time       `json:"expiresAt,omitempty"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	Signers     []signerResponse `json:"signers,omitempty"`
}

// signerResponse never carries the access token.
type signerResponse struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         *string            `json:"phone,omitempty"`
	Role          string             `json:"role"`
	RoleLabel     string             `json:"roleLabel"`
	SigningOrder  int                `json:"signingOrder"`
	Status        string             `json:"status"`
	ExpiresAt     time.Time          `json:"expiresAt"`
	SignatureType *string            `json:"signatureType,omitempty"`
	SignedAt      *time.Time         `json:"signedAt,omitempty"`
	DeviceInfo    *domain.DeviceInfo `json:"deviceInfo,omitempty"`
	DeclinedAt    *time.Time         `json:"declinedAt,omitempty"`
	DeclineReason *string            `json:"declineReason,omitempty"`
	RemindedAt    *time.Time         `json:"remindedAt,omitempty"`
}

type sendResponse struct {
	Request   requestResponse `json:"request"`
	Delivered int             `json:"delivered"`
	Failed    int             `json:"failed"`
}

type areaResponse struct {
	ID         uuid.UUID `json:"id"`
	Page       int       `json:"page"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Role       string    `json:"role"`
	Kind       string    `json:"kind"`
	IsRequired bool      `json:"isRequired"`
	Label      *string   `json:"label,omitempty"`
	Signed     bool      `json:"signed"`
	SignedByMe bool      `json:"signedByMe"`
}

type signingViewResponse struct {
	Signer        signerResponse `json:"signer"`
	RequestTitle  string         `json:"requestTitle"`
	Message       *string        `json:"message,omitempty"`
	DocumentTitle string         `json:"documentTitle"`
	Areas         []areaResponse `json:"areas"`
}

type captureResponse struct {
	Signer           signerResponse `json:"signer"`
	AreaID           uuid.UUID      `json:"areaId"`
	SignedAt         time.Time      `json:"signedAt"`
	RequestCompleted bool           `json:"requestCompleted"`
}

type hashResponse struct {
	SHA256Hex        string    `json:"sha256"`
	ContentSHA256Hex string    `json:"contentSha256"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

type verifyResponse struct {
	DocumentID uuid.UUID `json:"documentId"`
	Valid      bool      `json:"valid"`
	Stored     string    `json:"stored"`
	Computed   string    `json:"computed"`
}

type eventResponse struct {
	ID                 uuid.UUID      `json:"id"`
	SignatureRequestID *uuid.UUID     `json:"signatureRequestId,omitempty"`
	SignerID           *uuid.UUID     `json:"signerId,omitempty"`
	EventType          string         `json:"eventType"`
	EventData          map[string]any `json:"eventData,omitempty"`
	IPAddress          *string        `json:"ipAddress,omitempty"`
	UserAgent          *string        `json:"userAgent,omitempty"`
	Timestamp          time.Time      `json:"timestamp"`
}

type certificateSignerResponse struct {
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         *string            `json:"phone,omitempty"`
	Role          string             `json:"role"`
	RoleLabel     string             `json:"roleLabel"`
	SigningOrder  int                `json:"signingOrder"`
	SignatureType *string            `json:"signatureType,omitempty"`
	SignedAt      time.Time          `json:"signedAt"`
	IPAddress     string             `json:"ipAddress"`
	UserAgent     string             `json:"userAgent"`
	DeviceInfo    *domain.DeviceInfo `json:"deviceInfo,omitempty"`
}

type certificateResponse struct {
	DocumentID       uuid.UUID                   `json:"documentId"`
	DocumentTitle    string                      `json:"documentTitle"`
	RequestID        uuid.UUID                   `json:"requestId"`
	RequestTitle     string                      `json:"requestTitle"`
	SHA256Hex        string                      `json:"sha256"`
	ContentSHA256Hex string                      `json:"contentSha256"`
	GeneratedAt      *time.Time                  `json:"generatedAt,omitempty"`
	CompletedAt      time.Time                   `json:"completedAt"`
	IssuedAt         time.Time                   `json:"issuedAt"`
	Signers          []certificateSignerResponse `json:"signers"`
	Events           []eventResponse             `json:"events"`
}

func toRequestResponse(r domain.SignatureRequest) requestResponse {
	return requestResponse{
		ID:          r.ID,
		DocumentID:  r.DocumentID,
		Title:       r.Title,
		Message:     r.Message,
		Status:      r.Status.String(),
		CreatedBy:   r.CreatedBy,
		ExpiresAt:   r.ExpiresAt,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
	}
}

func toRequestViewResponse(v lifecycle.RequestView) requestResponse {
	resp := toRequestResponse(v.Request)
	resp.Signers = toSignerResponses(v.Signers)
	return resp
}

func toSignerResponse(s domain.Signer) signerResponse {
	resp := signerResponse{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Role:          s.Role.String(),
		RoleLabel:     s.Role.Label(),
		SigningOrder:  s.SigningOrder,
		Status:        s.Status.String(),
		ExpiresAt:     s.ExpiresAt,
		SignedAt:      s.SignedAt,
		DeviceInfo:    s.DeviceInfo,
		DeclinedAt:    s.DeclinedAt,
		DeclineReason: s.DeclineReason,
		RemindedAt:    s.RemindedAt,
	}
	if s.SignatureType != nil {
		st := s.SignatureType.String()
		resp.SignatureType = &st
	}
	return resp
}

func toSignerResponses(signers []domain.Signer) []signerResponse {
	out := make([]signerResponse, 0, len(signers))
	for _, s := range signers {
		out = append(out, toSignerResponse(s))
	}
	return out
}

func toSendResponse(r lifecycle.SendResult) sendResponse {
	return sendResponse{Request: toRequestResponse(r.Request), Delivered: r.Delivered, Failed: r.Failed}
}

func toSigningViewResponse(v capture.View) signingViewResponse {
	resp := signingViewResponse{
		Signer:        toSignerResponse(v.Signer),
		RequestTitle:  v.Request.Title,
		Message:       v.Request.Message,
		DocumentTitle: v.DocumentTitle,
		Areas:         make([]areaResponse, 0, len(v.Areas)),
	}
	for _, a := range v.Areas {
		resp.Areas = append(resp.Areas, areaResponse{
			ID:         a.Area.ID,
			Page:       a.Area.Page,
			X:          a.Area.X,
			Y:          a.Area.Y,
			Width:      a.Area.Width,
			Height:     a.Area.Height,
			Role:       a.Area.Role.String(),
			Kind:       a.Area.Kind.String(),
			IsRequired: a.Area.IsRequired,
			Label:      a.Area.Label,
			Signed:     a.Signed,
			SignedByMe: a.SignedByMe,
		})
	}
	return resp
}

func toCaptureResponse(r capture.CaptureResult) captureResponse {
	return captureResponse{
		Signer:           toSignerResponse(r.Signer),
		AreaID:           r.Binding.AreaID,
		SignedAt:         r.Binding.SignedAt,
		RequestCompleted: r.RequestCompleted,
	}
}

func toHashResponse(h domain.HashResult) hashResponse {
	return hashResponse{SHA256Hex: h.SHA256Hex, ContentSHA256Hex: h.ContentSHA256Hex, GeneratedAt: h.GeneratedAt}
}

func toVerifyResponse(v integrity.VerifyResult) verifyResponse {
	return verifyResponse{DocumentID: v.DocumentID, Valid: v.Valid, Stored: v.Stored, Computed: v.Computed}
}

func toEventResponses(events []domain.DocumentEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse{
			ID:                 e.ID,
			SignatureRequestID: e.SignatureRequestID,
			SignerID:           e.SignerID,
			EventType:          e.EventType.String(),
			EventData:          e.EventData,
			IPAddress:          e.IPAddress,
			UserAgent:          e.UserAgent,
			Timestamp:          e.Timestamp,
		})
	}
	return out
}

func toCertificateResponse(c domain.Certificate) certificateResponse {
	resp := certificateResponse{
		DocumentID:       c.DocumentID,
		DocumentTitle:    c.DocumentTitle,
		RequestID:        c.RequestID,
		RequestTitle:     c.RequestTitle,
		SHA256Hex:        c.SHA256Hex,
		ContentSHA256Hex: c.ContentSHA256Hex,
		GeneratedAt:      c.GeneratedAt,
		CompletedAt:      c.CompletedAt,
		IssuedAt:         c.IssuedAt,
		Signers:          make([]certificateSignerResponse, 0, len(c.Signers)),
		Events:           toEventResponses(c.Events),
	}
	for _, s := range c.Signers {
		cs := certificateSignerResponse{
			Name:         s.Name,
			Email:        s.Email,
			Phone:        s.Phone,
			Role:         s.Role.String(),
			RoleLabel:    s.RoleLabel,
			SigningOrder: s.SigningOrder,
			SignedAt:     s.SignedAt,
			IPAddress:    s.IPAddress,
			UserAgent:    s.UserAgent,
			DeviceInfo:   s.DeviceInfo,
		}
		if s.SignatureType != nil {
			st := s.SignatureType.String()
			cs.SignatureType = &st
		}
		resp.Signers = append(resp.Signers, cs)
	}
	return resp
}
