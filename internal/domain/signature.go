package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMaxAttempts is the access attempt budget of a freshly minted token.
const DefaultMaxAttempts = 5

// SignatureRequest is one outstanding ask-to-sign for a Document.
type SignatureRequest struct {
	ID          uuid.UUID
	DocumentID  uuid.UUID
	Title       string
	Message     *string
	Status      RequestStatus
	CreatedBy   uuid.UUID
	ExpiresAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsExpiredAt reports whether the request deadline has passed at now.
func (r *SignatureRequest) IsExpiredAt(now time.Time) bool {
	return r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}

// Signer is one required signatory on a SignatureRequest.
type Signer struct {
	ID                 uuid.UUID
	SignatureRequestID uuid.UUID
	Name               string
	Email              string
	Phone              *string
	Role               SignerRole
	SigningOrder       int
	Status             SignerStatus
	AccessToken        string
	ExpiresAt          time.Time
	AccessAttempts     int
	MaxAttempts        int
	IsExpired          bool
	SignatureData      *string
	SignatureType      *SignatureType
	SignedAt           *time.Time
	IPAddress          *string
	UserAgent          *string
	DeviceInfo         *DeviceInfo
	DeclinedAt         *time.Time
	DeclineReason      *string
	RemindedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasSigned reports whether the signer completed signing with evidence.
func (s *Signer) HasSigned() bool {
	return s.Status == SignerStatusSigned && s.SignatureData != nil && s.SignedAt != nil
}

// TokenExpiredAt reports whether the access token is past its window at now.
func (s *Signer) TokenExpiredAt(now time.Time) bool {
	return s.IsExpired || now.After(s.ExpiresAt)
}

// AttemptsExhausted reports whether the access attempt budget is used up.
func (s *Signer) AttemptsExhausted() bool {
	return s.AccessAttempts >= s.MaxAttempts
}

// DeviceInfo is the client environment captured at the moment of signing.
type DeviceInfo struct {
	Type         DeviceType `json:"type"`
	ScreenWidth  int        `json:"screen_width,omitempty"`
	ScreenHeight int        `json:"screen_height,omitempty"`
	UserAgent    string     `json:"user_agent,omitempty"`
}

// SigningEvidence is the proof material recorded when a signer signs.
type SigningEvidence struct {
	IPAddress  string
	UserAgent  string
	DeviceInfo DeviceInfo
}

// SignatureCapture is the data written onto a signer row on signing.
type SignatureCapture struct {
	SignatureData string
	SignatureType SignatureType
	SignedAt      time.Time
	Evidence      SigningEvidence
}

// SignatureArea is a design-time placeholder on a document page where a
// signer with a given role must sign.
type SignatureArea struct {
	ID                uuid.UUID
	DocumentID        *uuid.UUID
	TemplateVersionID *uuid.UUID
	Page              int
	X                 float64
	Y                 float64
	Width             float64
	Height            float64
	Role              SignerRole
	Kind              SignatureKind
	IsRequired        bool
	Label             *string
}

// AreaBinding marks a signature area as signed by a signer.
type AreaBinding struct {
	AreaID   uuid.UUID
	SignerID uuid.UUID
	SignedAt time.Time
}

// DocumentEvent is an append-only audit trail entry.
type DocumentEvent struct {
	ID                 uuid.UUID
	DocumentID         uuid.UUID
	SignatureRequestID *uuid.UUID
	SignerID           *uuid.UUID
	EventType          EventType
	EventData          map[string]any
	IPAddress          *string
	UserAgent          *string
	Timestamp          time.Time
}

// NotificationLog records one delivery attempt to one signer.
type NotificationLog struct {
	ID                 uuid.UUID
	SignatureRequestID uuid.UUID
	SignerID           uuid.UUID
	NotificationType   NotificationChannel
	Status             NotificationStatus
	MessageContent     *string
	SentAt             *time.Time
	ErrorMessage       *string
	CreatedAt          time.Time
}
