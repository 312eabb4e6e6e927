package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret", 15*time.Minute)
	userID := uuid.New()

	t.Run("generated token validates", func(t *testing.T) {
		token, err := service.GenerateAccessToken(ctx, userID, "user@example.com")
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		claims, err := service.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("ValidateAccessToken: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("UserID = %s, want %s", claims.UserID, userID)
		}
		if claims.Email != "user@example.com" {
			t.Errorf("Email = %q, want user@example.com", claims.Email)
		}
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := NewTokenService("other-secret", 15*time.Minute)
		token, err := other.GenerateAccessToken(ctx, userID, "user@example.com")
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		if _, err := service.ValidateAccessToken(ctx, token); err == nil {
			t.Error("expected validation to fail for a foreign signature")
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewTokenService("test-secret", -time.Minute)
		token, err := expired.GenerateAccessToken(ctx, userID, "user@example.com")
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		if _, err := service.ValidateAccessToken(ctx, token); err == nil {
			t.Error("expected validation to fail for an expired token")
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, "not-a-token"); err == nil {
			t.Error("expected validation to fail")
		}
	})
}
