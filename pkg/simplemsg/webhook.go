package simplemsg

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyWebhookSignature reports whether signature matches the HMAC-SHA256 hex
// digest of payload under secret. The comparison is constant-time and
// case-sensitive: the provider emits lowercase hex, and no normalization is
// applied on either side. Empty payloads and secrets are valid inputs.
//
// It needs no Client and no configuration, so webhook handlers can call it
// directly with the raw request body, the shared secret, and the signature
// value they extracted.
func VerifyWebhookSignature(payload, secret, signature string) bool {
	expected := SignWebhookPayload(payload, secret)
	// hmac.Equal rejects length mismatches before comparing, still in
	// constant time for equal lengths.
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignWebhookPayload computes the lowercase hex HMAC-SHA256 digest the
// provider attaches to webhook deliveries.
func SignWebhookPayload(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
