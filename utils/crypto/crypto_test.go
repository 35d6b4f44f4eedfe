package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignHMAC(t *testing.T) {
	sig := SignHMAC("secret", "message")

	assert.Len(t, sig, 64)
	assert.Equal(t, sig, SignHMAC("secret", "message"))
	assert.NotEqual(t, sig, SignHMAC("secret", "other"))
	assert.NotEqual(t, sig, SignHMAC("other", "message"))
}

func TestVerifyHMAC(t *testing.T) {
	sig := SignHMAC("secret", "message")

	assert.True(t, VerifyHMAC("secret", "message", sig))
	assert.False(t, VerifyHMAC("secret", "message", sig[:63]+"0"))
	assert.False(t, VerifyHMAC("wrong", "message", sig))
}

func TestSignatureHash(t *testing.T) {
	hash := SignatureHash("app-id", "signer@corp.com", "image-data")

	assert.Len(t, hash, 64)
	assert.Equal(t, hash, SignatureHash("app-id", "signer@corp.com", "image-data"))
	// Delimited parts must not collide with shifted boundaries
	assert.NotEqual(t, hash, SignatureHash("app-id", "signer@corp.comimage-data"))
}

func TestCSRFToken(t *testing.T) {
	token, err := MintCSRFToken("secret")
	assert.NoError(t, err)
	assert.Equal(t, 1, strings.Count(token, "."))

	assert.True(t, VerifyCSRFToken("secret", token, time.Hour))
	assert.False(t, VerifyCSRFToken("wrong", token, time.Hour))
	assert.False(t, VerifyCSRFToken("secret", token+"x", time.Hour))
	assert.False(t, VerifyCSRFToken("secret", "garbage", time.Hour))
}

func TestCSRFTokenExpiry(t *testing.T) {
	token, err := MintCSRFToken("secret")
	assert.NoError(t, err)

	assert.False(t, VerifyCSRFToken("secret", token, -time.Second))
}
