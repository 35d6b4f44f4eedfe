package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignHMAC computes a hex-encoded HMAC-SHA256 signature over message
func SignHMAC(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMAC reports whether signature matches the keyed hash of message
func VerifyHMAC(secret, message, signature string) bool {
	expected := SignHMAC(secret, message)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// SignatureHash derives a stable SHA-256 hex digest over the given parts
func SignatureHash(parts ...string) string {
	h := sha256.New()
	for i, part := range parts {
		if i > 0 {
			h.Write([]byte("|"))
		}
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// MintCSRFToken creates a signed CSRF token: base64url(ts.nonce) + "." + hmac
func MintCSRFToken(secret string) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%d.%s", time.Now().Unix(), hex.EncodeToString(nonce))),
	)
	return payload + "." + SignHMAC(secret, payload), nil
}

// VerifyCSRFToken checks the token signature and that it is not older than maxAge
func VerifyCSRFToken(secret, token string, maxAge time.Duration) bool {
	payload, signature, found := strings.Cut(token, ".")
	if !found || !VerifyHMAC(secret, payload, signature) {
		return false
	}

	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return false
	}

	tsPart, _, found := strings.Cut(string(decoded), ".")
	if !found {
		return false
	}

	ts, err := strconv.ParseInt(tsPart, 10, 64)
	if err != nil {
		return false
	}

	return time.Since(time.Unix(ts, 0)) <= maxAge
}
