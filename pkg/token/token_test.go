package token

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret"
	accountID := uuid.New().String()

	tokenString, err := GenerateJWT(accountID, true, secret, 15)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(tokenString, secret)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.AccountID != accountID {
		t.Errorf("account_id = %q, want %q", claims.AccountID, accountID)
	}
	if !claims.IsAdmin {
		t.Errorf("is_admin claim lost")
	}
	if claims.Issuer != "firewallz" {
		t.Errorf("issuer = %q, want firewallz", claims.Issuer)
	}
}

func TestValidateJWTRejects(t *testing.T) {
	secret := "test-secret"
	tokenString, err := GenerateJWT(uuid.New().String(), false, secret, 15)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ValidateJWT(tokenString, "wrong-secret"); err == nil {
		t.Errorf("token accepted with the wrong secret")
	}
	if _, err := ValidateJWT("", secret); err == nil {
		t.Errorf("empty token accepted")
	}

	expired, err := GenerateJWT(uuid.New().String(), false, secret, -1)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ValidateJWT(expired, secret); err == nil || !strings.Contains(err.Error(), "expired") {
		t.Errorf("expired token: got %v, want expiry error", err)
	}
}
