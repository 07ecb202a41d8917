// Package notify holds the messages sent to signers through the external
// delivery functions. Adapters under adapter/notify implement the delivery.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is the email asking a signer to open their signing link.
type Invitation struct {
	SignatureRequestID uuid.UUID
	SignerEmail        string
	SignerName         string
	DocumentTitle      string
	AccessToken        string
	SigningURL         string
	Message            *string
	ExpiresAt          time.Time
	Reminder           bool
}

// WhatsAppMessage is the WhatsApp counterpart of an Invitation.
type WhatsAppMessage struct {
	SignatureRequestID uuid.UUID
	Phone              string
	SignerName         string
	DocumentTitle      string
	SigningURL         string
	ExpiresAt          time.Time
	Reminder           bool
}
