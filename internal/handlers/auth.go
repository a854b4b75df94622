package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ricgcw/chms-backend/internal/auth"
	"github.com/ricgcw/chms-backend/internal/dto"
	"github.com/ricgcw/chms-backend/internal/errs"
	"github.com/ricgcw/chms-backend/internal/response"
	"github.com/ricgcw/chms-backend/pkg/logger"
)

type authHandlers struct {
	ResponseHandler response.ResponseHandler
	Authenticator   auth.Authenticator
}

func NewAuthHandlers(deps *Deps) *authHandlers {
	return &authHandlers{
		ResponseHandler: deps.ResponseHandler,
		Authenticator:   deps.Authenticator,
	}
}

func (h *authHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var body dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}

	ident, err := h.Authenticator.Authenticate(r.Context(), body.Email, body.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.ResponseHandler.HandleError(w, r, err)
			return
		}
		logger.FromContext(r.Context()).Warn("login rejected", "email", body.Email)
		h.ResponseHandler.WriteJSON(w, r, http.StatusUnauthorized, dto.LoginFailure{Message: "Invalid credentials"})
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.LoginResponse{
		IsAuthenticated: true,
		Role:            ident.Role,
		Branch:          ident.Branch,
		Email:           ident.Email,
	})
}
