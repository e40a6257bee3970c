package app_test

import (
	"context"
	"errors"
	"testing"

	"tour_ops/internal/app"
	"tour_ops/internal/auth"
	"tour_ops/internal/domain"
)

type fakeSigner struct {
	id      int64
	name    string
	isAdmin bool
}

func (f *fakeSigner) Sign(id int64, name string, isAdmin bool) (string, error) {
	f.id, f.name, f.isAdmin = id, name, isAdmin
	return "signed-token", nil
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("guide-pass-123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	guides := &fakeGuides{login: domain.LoginInfo{
		ID: 2, Name: "Ayse Demir", Username: "ayse", PasswordHash: hash, IsAdmin: true,
	}}
	signer := &fakeSigner{}
	svc := app.NewAuthService(guides, signer)
	ctx := context.Background()

	// Unknown user and wrong password collapse into the same error.
	if _, err := svc.Login(ctx, "nobody", "guide-pass-123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: %v", err)
	}
	if _, err := svc.Login(ctx, "ayse", "wrong-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", err)
	}

	tok, err := svc.Login(ctx, "ayse", "guide-pass-123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok != "signed-token" {
		t.Fatalf("token: %q", tok)
	}
	if signer.id != 2 || signer.name != "Ayse Demir" || !signer.isAdmin {
		t.Fatalf("claims: %+v", signer)
	}
}
