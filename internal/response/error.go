package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ricgcw/chms-backend/internal/errs"
	"github.com/ricgcw/chms-backend/pkg/logger"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *responseHandler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode error response", "error", err, "status", status)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.writeError(w, r, http.StatusNotFound, e.Message)

	case *errs.AlreadyExistsError:
		log.Warn("resource already exists", "error", e.Message)
		h.writeError(w, r, http.StatusConflict, e.Message)

	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.writeError(w, r, http.StatusBadRequest, e.Message)

	case *errs.DatabaseError:
		log.Error("store operation failed",
			"collection", e.Collection,
			"operation", e.Operation,
			"error", e.Err)
		// the SPA surfaces 500s as a generic toast; the message is
		// forwarded for debugging, not display
		h.writeError(w, r, http.StatusInternalServerError, e.Error())

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.writeError(w, r, http.StatusInternalServerError, err.Error())
	}
}
