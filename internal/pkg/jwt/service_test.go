package jwt

import (
	"errors"
	"testing"
	"time"

	"gigboard/internal/config"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService(config.JWTConfig{
		AccessSecret:     "access-secret",
		RefreshSecret:    "refresh-secret",
		AccessExpiresIn:  time.Minute,
		RefreshExpiresIn: time.Hour,
	}, "gigboard")
}

func TestHMACService_RoundTrip(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	access, err := s.GenerateAccessToken(userID, "ada@example.com")
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}
	claims, err := s.ValidateToken(access)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	if claims.UserID != userID || claims.Email != "ada@example.com" || claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if s.IsRefreshToken(claims) {
		t.Fatalf("access token reported as refresh")
	}

	refresh, err := s.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}
	claims, err = s.ValidateToken(refresh)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if !s.IsRefreshToken(claims) {
		t.Fatalf("expected refresh token")
	}
}

func TestHMACService_Expired(t *testing.T) {
	s := newTestService()
	issued := time.Now()
	s.now = func() time.Time { return issued }

	tok, err := s.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_RejectsForeignTokens(t *testing.T) {
	s := newTestService()
	other := NewHMACService(config.JWTConfig{
		AccessSecret:     "different",
		RefreshSecret:    "also-different",
		AccessExpiresIn:  time.Minute,
		RefreshExpiresIn: time.Hour,
	}, "gigboard")

	tok, err := other.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := s.ValidateToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
