package auth

import (
	"testing"
	"time"

	"github.com/rewearhq/rewear/internal/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateToken(secret, "id_1_1700000000000", "admin@rewear.example", model.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != "id_1_1700000000000" {
		t.Errorf("expected user_id 'id_1_1700000000000', got %q", claims.UserID)
	}
	if claims.Email != "admin@rewear.example" {
		t.Errorf("expected email 'admin@rewear.example', got %q", claims.Email)
	}
	if claims.Role != model.RoleAdmin {
		t.Errorf("expected role 'admin', got %q", claims.Role)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret1", "u1", "admin@rewear.example", model.RoleAdmin)

	_, err := ValidateToken("secret2", token)
	if err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("secret", "not-a-token")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestTokenExpiry(t *testing.T) {
	// Just verify the expiry is set correctly.
	secret := "test"
	token, _ := GenerateToken(secret, "u1", "test@example.com", "user")
	claims, _ := ValidateToken(secret, token)

	expiresAt := claims.ExpiresAt.Time
	expectedExpiry := time.Now().Add(TokenExpiry)

	// Should be within a few seconds.
	diff := expectedExpiry.Sub(expiresAt)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("a-valid-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "a-valid-password" {
		t.Fatal("hash must not equal the plain password")
	}

	if !CheckPassword(hash, "a-valid-password") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("expected non-matching password to fail")
	}
}
