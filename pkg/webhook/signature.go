package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

const SignatureHeaderName = "X-Webhook-Signature"

var (
	ErrMissingSignature = errors.New("webhook signature is missing")
	ErrInvalidSignature = errors.New("webhook signature is invalid")
)

// Sign returns the hex encoded HMAC-SHA256 of body keyed with the
// subscription secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// Verify checks a delivery's signature header against body. Hex digits are
// accepted in either case.
func Verify(secret string, body []byte, signature string) error {
	signature = strings.TrimSpace(signature)
	if len(signature) == 0 {
		return ErrMissingSignature
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(provided, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}
