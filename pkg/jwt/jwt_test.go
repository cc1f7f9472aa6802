package jwt

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "alice@example.com", "Alice", "v1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "alice@example.com" || claims.Name != "Alice" {
		t.Errorf("claims mismatch: %+v", claims)
	}
	if claims.TokenVersion != "v1" {
		t.Errorf("expected token version v1, got %s", claims.TokenVersion)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.c", "A", "v1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected an error for a tampered token")
	}
}
