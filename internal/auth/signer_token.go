package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// signerTokenBytes is the entropy of a signer access token (256 bits).
const signerTokenBytes = 32

// NewSignerToken mints an opaque signer access token: 32 random bytes,
// base64url without padding. The token is the only credential a signer
// needs, so it must never be derived from guessable data.
func NewSignerToken() (string, error) {
	b := make([]byte, signerTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// LooksLikeSignerToken reports whether s has the shape of a minted token.
// Used to reject garbage before touching the database.
func LooksLikeSignerToken(s string) bool {
	if len(s) != base64.RawURLEncoding.EncodedLen(signerTokenBytes) {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil
}
