package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)
	id := uuid.New()

	tok, err := svc.GenerateAccessToken(id, "admin@learnify.dev")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.SubjectID != id {
		t.Fatalf("unexpected subject id")
	}
	if claims.Email != "admin@learnify.dev" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected token type: %s", claims.TokenType)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token misreported as refresh")
	}
}

func TestHMACService_RefreshTokenType(t *testing.T) {
	svc := NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)

	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected refresh token type")
	}
}

func TestHMACService_RejectsForeignSecret(t *testing.T) {
	svc := NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)
	other := NewHMACService("other-access", "other-refresh", 15*time.Minute, 24*time.Hour)

	tok, err := other.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
