package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ricgcw/chms-backend/internal/errs"
	"github.com/ricgcw/chms-backend/internal/models"
	"github.com/ricgcw/chms-backend/internal/response"
)

type contributionHandlers struct {
	ResponseHandler response.ResponseHandler
	Validate        *validator.Validate
	Svc             contributionService
}

func NewContributionHandlers(deps *Deps) *contributionHandlers {
	return &contributionHandlers{
		ResponseHandler: deps.ResponseHandler,
		Validate:        deps.Validate,
		Svc:             deps.ContributionSvc,
	}
}

func (h *contributionHandlers) List(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")

	contributions, err := h.Svc.List(r.Context(), memberID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, contributions)
}

func (h *contributionHandlers) Add(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")

	var c models.Contribution
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	if err := h.Validate.Struct(&c); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError(err.Error()))
		return
	}

	if err := h.Svc.Add(r.Context(), memberID, &c); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusCreated, &c)
}
