package services

import (
	"testing"

	"accident-analytics-api/config"
)

func newTestAuthService() *AuthService {
	return NewAuthService(config.JWTConfig{
		Secret:      "test-secret-key",
		ExpiryHours: 24,
	})
}

func TestHashAndCheckPassword(t *testing.T) {
	svc := newTestAuthService()

	hash, err := svc.HashPassword("mypassword123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "" {
		t.Fatal("hash should not be empty")
	}
	if hash == "mypassword123" {
		t.Fatal("hash should not equal plaintext")
	}

	if !svc.CheckPassword(hash, "mypassword123") {
		t.Error("CheckPassword should return true for correct password")
	}
	if svc.CheckPassword(hash, "wrongpassword") {
		t.Error("CheckPassword should return false for wrong password")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.GenerateToken(1, "analyst@test.com", "viewer")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("token should not be empty")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 1 {
		t.Errorf("UserID = %d, want 1", claims.UserID)
	}
	if claims.Email != "analyst@test.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "analyst@test.com")
	}
	if claims.Role != "viewer" {
		t.Errorf("Role = %q, want %q", claims.Role, "viewer")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ValidateToken("invalid.token.string")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc1 := NewAuthService(config.JWTConfig{Secret: "secret-1", ExpiryHours: 24})
	svc2 := NewAuthService(config.JWTConfig{Secret: "secret-2", ExpiryHours: 24})

	token, _ := svc1.GenerateToken(1, "analyst@test.com", "viewer")

	_, err := svc2.ValidateToken(token)
	if err == nil {
		t.Error("expected error for token signed with different secret")
	}
}
