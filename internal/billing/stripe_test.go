package billing

import (
	"strings"
	"testing"
)

func TestNewStripeGateway_KeyValidation(t *testing.T) {
	if _, err := NewStripeGateway("", "whsec_x"); err == nil {
		t.Fatalf("empty key must be rejected")
	}
	if _, err := NewStripeGateway("pk_test_123", "whsec_x"); err == nil || !strings.Contains(err.Error(), "format") {
		t.Fatalf("publishable key must be rejected, got %v", err)
	}
	gw, err := NewStripeGateway("sk_test_123", "whsec_x")
	if err != nil {
		t.Fatalf("secret key rejected: %v", err)
	}
	if gw == nil {
		t.Fatalf("expected a gateway")
	}
}

func TestVerifyEvent_RejectsBadSignature(t *testing.T) {
	gw, err := NewStripeGateway("sk_test_123", "whsec_secret")
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	if _, err := gw.VerifyEvent(payload, "t=1,v1=deadbeef"); err == nil {
		t.Fatalf("forged signature must fail verification")
	}
}
