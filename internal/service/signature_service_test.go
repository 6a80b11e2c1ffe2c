package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte(`{"thread_ref":"42","body":".tip @bob 5"}`)

	sig := svc.Sign("webhook-secret", payload)
	assert.True(t, strings.HasPrefix(sig, "sha256="))
	assert.True(t, svc.Verify("webhook-secret", payload, sig))
}

func TestHMACSignatureService_Verify_TamperedPayload(t *testing.T) {
	svc := NewHMACSignatureService()
	sig := svc.Sign("webhook-secret", []byte(`{"amount":5}`))

	assert.False(t, svc.Verify("webhook-secret", []byte(`{"amount":500}`), sig))
}

func TestHMACSignatureService_Verify_WrongSecret(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte("hello")
	sig := svc.Sign("secret-a", payload)

	assert.False(t, svc.Verify("secret-b", payload, sig))
}

func TestHMACSignatureService_Verify_MalformedSignature(t *testing.T) {
	svc := NewHMACSignatureService()

	assert.False(t, svc.Verify("secret", []byte("hello"), ""))
	assert.False(t, svc.Verify("secret", []byte("hello"), "sha256=nothex"))
}
