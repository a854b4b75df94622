package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credential is one entry of the configured allowlist. Either
// PasswordHash (bcrypt) or Password (plaintext, compared in constant
// time) must be set; the hash wins when both are present.
type Credential struct {
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Role         string `json:"role"`
	Branch       string `json:"branch"`
}

// StaticAuthenticator authenticates against a fixed credential list
// loaded at startup. It holds no per-request state.
type StaticAuthenticator struct {
	creds map[string]Credential
}

func NewStatic(creds []Credential) *StaticAuthenticator {
	m := make(map[string]Credential, len(creds))
	for _, c := range creds {
		m[strings.ToLower(strings.TrimSpace(c.Email))] = c
	}
	return &StaticAuthenticator{creds: m}
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, email, password string) (*Identity, error) {
	c, ok := a.creds[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		// burn a comparison anyway so unknown emails cost the same
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if c.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		Email:  c.Email,
		Role:   c.Role,
		Branch: c.Branch,
	}, nil
}

// dummyHash is bcrypt("") at the default cost.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// ParseCredentials decodes a configured credential list.
func ParseCredentials(data []byte) ([]Credential, error) {
	var creds []Credential
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

// DefaultCredentials is the stock allowlist used when no external list
// is configured. Kept for compatibility with existing deployments.
func DefaultCredentials() []Credential {
	return []Credential{
		{Email: "admin@ricgcw.com", Password: "admin123", Role: "admin", Branch: "all"},
		{Email: "secretary@ricgcw.com", Password: "secretary123", Role: "secretary", Branch: "main"},
	}
}
