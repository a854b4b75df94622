package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ricgcw/chms-backend/internal/auth"
	"github.com/ricgcw/chms-backend/internal/dto"
)

func TestLoginSuccess(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{
		ResponseHandler: resp,
		Authenticator:   auth.NewStatic(auth.DefaultCredentials()),
	})

	body := `{"email":"admin@ricgcw.com","password":"admin123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if resp.status != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.status)
	}
	got, ok := resp.data.(dto.LoginResponse)
	if !ok {
		t.Fatalf("unexpected payload: %#v", resp.data)
	}
	if !got.IsAuthenticated || got.Role != "admin" || got.Branch != "all" || got.Email != "admin@ricgcw.com" {
		t.Fatalf("unexpected login response: %+v", got)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{
		ResponseHandler: resp,
		Authenticator:   auth.NewStatic(auth.DefaultCredentials()),
	})

	body := `{"email":"admin@ricgcw.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if resp.status != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", resp.status)
	}
	got, ok := resp.data.(dto.LoginFailure)
	if !ok || got.Message != "Invalid credentials" {
		t.Fatalf("unexpected payload: %#v", resp.data)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{
		ResponseHandler: resp,
		Authenticator:   auth.NewStatic(auth.DefaultCredentials()),
	})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"nobody@ricgcw.com","password":"admin123"}`))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if resp.status != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", resp.status)
	}
}

type failingAuthenticator struct{ err error }

func (f *failingAuthenticator) Authenticate(context.Context, string, string) (*auth.Identity, error) {
	return nil, f.err
}

func TestLoginAuthenticatorFailure(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{
		ResponseHandler: resp,
		Authenticator:   &failingAuthenticator{err: context.DeadlineExceeded},
	})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"admin@ricgcw.com","password":"admin123"}`))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	// infrastructure failures are not credential failures
	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError for a non-credential failure")
	}
	if resp.status == http.StatusUnauthorized {
		t.Fatalf("must not masquerade as a 401")
	}
}

func TestLoginMalformedBody(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{
		ResponseHandler: resp,
		Authenticator:   auth.NewStatic(auth.DefaultCredentials()),
	})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{"))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError for malformed JSON")
	}
}
