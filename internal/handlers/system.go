package handlers

import (
	"net/http"
	"time"

	"github.com/ricgcw/chms-backend/internal/dto"
	"github.com/ricgcw/chms-backend/internal/response"
)

type systemHandlers struct {
	ResponseHandler response.ResponseHandler
	Env             string
}

func NewSystemHandlers(deps *Deps) *systemHandlers {
	return &systemHandlers{
		ResponseHandler: deps.ResponseHandler,
		Env:             deps.Env,
	}
}

func (h *systemHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Env:       h.Env,
	})
}
