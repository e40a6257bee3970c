package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tour_ops/internal/auth"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	v := auth.NewVerifier("test-secret", time.Hour)

	tok, err := v.Sign(7, "Ada", true)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	id, err := v.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.GuideID != 7 || id.Name != "Ada" || !id.IsAdmin {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := auth.NewVerifier("secret-a", time.Hour).Sign(1, "x", false)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := auth.NewVerifier("secret-b", time.Hour).Verify(tok); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestVerifyExpired(t *testing.T) {
	v := auth.NewVerifier("test-secret", -time.Minute)
	tok, err := v.Sign(1, "x", false)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := v.Verify(tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyGarbage(t *testing.T) {
	v := auth.NewVerifier("test-secret", time.Hour)
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := v.Verify(raw); err == nil {
			t.Fatalf("expected rejection for %q", raw)
		}
	}
}

func TestVerifyMissingIDClaim(t *testing.T) {
	// Well-signed token whose payload lacks the integer identity.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name":    "no-id",
		"isAdmin": true,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := auth.NewVerifier("test-secret", time.Hour).Verify(raw); err == nil {
		t.Fatal("expected token without id claim to be rejected")
	}
}
