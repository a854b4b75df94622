package response

import (
	"encoding/json"
	"net/http"

	"github.com/ricgcw/chms-backend/pkg/logger"
)

// WriteJSON writes the payload as-is. The SPA consumes raw arrays and
// records, so there is no success envelope.
func (h *responseHandler) WriteJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Last-ditch logging; can't return an error now
		logger.FromContext(r.Context()).Error("failed to encode response", "error", err, "status", status)
	}
}

func (h *responseHandler) WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
