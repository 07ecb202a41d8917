// Package functions delivers signer notifications through the hosted
// serverless functions (send-signature-invitation, send-whatsapp-notification).
package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/docsign-backend/internal/notify"
)

const (
	invitationPath = "/send-signature-invitation"
	whatsAppPath   = "/send-whatsapp-notification"
)

// Client posts notification payloads to the delivery functions.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a Client. baseURL is the functions root, e.g.
// https://project.functions.example.com/v1.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "notify_functions"),
	}
}

type invitationPayload struct {
	SignatureRequestID string  `json:"signatureRequestId"`
	SignerEmail        string  `json:"signerEmail"`
	SignerName         string  `json:"signerName"`
	DocumentTitle      string  `json:"documentTitle"`
	AccessToken        string  `json:"accessToken"`
	SigningURL         string  `json:"signingUrl"`
	Message            *string `json:"message,omitempty"`
	ExpiresAt          string  `json:"expiresAt"`
	Reminder           bool    `json:"reminder,omitempty"`
}

type whatsAppPayload struct {
	SignatureRequestID string `json:"signatureRequestId"`
	Phone              string `json:"phone"`
	SignerName         string `json:"signerName"`
	DocumentTitle      string `json:"documentTitle"`
	SigningURL         string `json:"signingUrl"`
	ExpiresAt          string `json:"expiresAt"`
	Reminder           bool   `json:"reminder,omitempty"`
}

// SendInvitation emails a signing invitation.
func (c *Client) SendInvitation(ctx context.Context, inv notify.Invitation) error {
	return c.post(ctx, invitationPath, invitationPayload{
		SignatureRequestID: inv.SignatureRequestID.String(),
		SignerEmail:        inv.SignerEmail,
		SignerName:         inv.SignerName,
		DocumentTitle:      inv.DocumentTitle,
		AccessToken:        inv.AccessToken,
		SigningURL:         inv.SigningURL,
		Message:            inv.Message,
		ExpiresAt:          inv.ExpiresAt.UTC().Format(time.RFC3339),
		Reminder:           inv.Reminder,
	})
}

// SendWhatsApp sends the signing link over WhatsApp.
func (c *Client) SendWhatsApp(ctx context.Context, msg notify.WhatsAppMessage) error {
	return c.post(ctx, whatsAppPath, whatsAppPayload{
		SignatureRequestID: msg.SignatureRequestID.String(),
		Phone:              msg.Phone,
		SignerName:         msg.SignerName,
		DocumentTitle:      msg.DocumentTitle,
		SigningURL:         msg.SigningURL,
		ExpiresAt:          msg.ExpiresAt.UTC().Format(time.RFC3339),
		Reminder:           msg.Reminder,
	})
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: encode payload: %w", err)
	}

	resp, err := c.doWithRetry(ctx, path, body)
	if err != nil {
		c.log.ErrorContext(ctx, "notify request failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("notify %s: request failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notify %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	c.log.DebugContext(ctx, "notify delivered", slog.String("path", path), slog.Int("status", resp.StatusCode))
	return nil
}

func (c *Client) newRequest(ctx context.Context, path string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := c.newRequest(ctx, path, body)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "notify retry", slog.String("path", path), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	req, err = c.newRequest(ctx, path, body)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
