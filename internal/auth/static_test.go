package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticateDefaultCredentials(t *testing.T) {
	a := NewStatic(DefaultCredentials())

	ident, err := a.Authenticate(context.Background(), "admin@ricgcw.com", "admin123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if ident.Role != "admin" || ident.Branch != "all" {
		t.Fatalf("unexpected identity: %+v", ident)
	}

	ident, err = a.Authenticate(context.Background(), "secretary@ricgcw.com", "secretary123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if ident.Role != "secretary" || ident.Branch != "main" {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	a := NewStatic(DefaultCredentials())

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@ricgcw.com", "letmein"},
		{"unknown email", "pastor@ricgcw.com", "admin123"},
		{"empty password", "admin@ricgcw.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := a.Authenticate(context.Background(), tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	a := NewStatic(DefaultCredentials())

	if _, err := a.Authenticate(context.Background(), "  Admin@RICGCW.com ", "admin123"); err != nil {
		t.Fatalf("lookup should be case- and space-insensitive: %v", err)
	}
}

func TestAuthenticateBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	a := NewStatic([]Credential{
		{Email: "hashed@ricgcw.com", PasswordHash: string(hash), Role: "admin", Branch: "all"},
	})

	if _, err := a.Authenticate(context.Background(), "hashed@ricgcw.com", "s3cret"); err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if _, err := a.Authenticate(context.Background(), "hashed@ricgcw.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestParseCredentials(t *testing.T) {
	creds, err := ParseCredentials([]byte(`[{"email":"a@b.com","password":"p","role":"admin","branch":"all"}]`))
	if err != nil {
		t.Fatalf("ParseCredentials returned error: %v", err)
	}
	if len(creds) != 1 || creds[0].Email != "a@b.com" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}

	if _, err := ParseCredentials([]byte(`{"not":"a list"}`)); err == nil {
		t.Fatalf("expected error for a non-list payload")
	}
}
