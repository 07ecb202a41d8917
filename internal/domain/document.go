package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is a generated document instance. It is the aggregate root that
// signature requests, areas and events point at.
type Document struct {
	ID                uuid.UUID
	TemplateVersionID *uuid.UUID
	Title             string
	FieldValues       map[string]any
	Metadata          map[string]any
	SHA256Hex         *string
	ContentSHA256Hex  *string
	GeneratedAt       *time.Time
	Status            DocumentStatus
	CreatedBy         uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DocumentIntegrity is the hash material persisted onto a document.
type DocumentIntegrity struct {
	TemplateVersionID *uuid.UUID
	SHA256Hex         string
	ContentSHA256Hex  string
	GeneratedAt       time.Time
	FieldValues       map[string]any
	Metadata          map[string]any
}

// Certificate is the printable completion record of a signed document.
type Certificate struct {
	DocumentID       uuid.UUID
	DocumentTitle    string
	RequestID        uuid.UUID
	RequestTitle     string
	SHA256Hex        string
	ContentSHA256Hex string
	GeneratedAt      *time.Time
	CompletedAt      time.Time
	Signers          []CertificateSigner
	Events           []DocumentEvent
	IssuedAt         time.Time
}

// CertificateSigner is the evidence of one signer on a certificate.
type CertificateSigner struct {
	Name          string
	Email         string
	Phone         *string
	Role          SignerRole
	RoleLabel     string
	SigningOrder  int
	SignatureType *SignatureType
	SignedAt      time.Time
	IPAddress     string
	UserAgent     string
	DeviceInfo    *DeviceInfo
}

// HashResult is the outcome of hashing a rendered document.
type HashResult struct {
	SHA256Hex        string
	ContentSHA256Hex string
	GeneratedAt      time.Time
}
