package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ricgcw/chms-backend/internal/errs"
	"github.com/ricgcw/chms-backend/internal/response"
)

// collectionHandlers binds the four CRUD verbs for one collection.
// Entity-specific rules (validation tags, uniqueness) come in through
// the model type and the service; the handler itself is uniform.
type collectionHandlers[T any] struct {
	ResponseHandler response.ResponseHandler
	Validate        *validator.Validate
	Svc             collectionService[T]
}

func NewCollectionHandlers[T any](deps *Deps, svc collectionService[T]) *collectionHandlers[T] {
	return &collectionHandlers[T]{
		ResponseHandler: deps.ResponseHandler,
		Validate:        deps.Validate,
		Svc:             svc,
	}
}

func (h *collectionHandlers[T]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *collectionHandlers[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Svc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, records)
}

func (h *collectionHandlers[T]) Create(w http.ResponseWriter, r *http.Request) {
	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}
	if err := h.Validate.Struct(&rec); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError(err.Error()))
		return
	}

	if err := h.Svc.Create(r.Context(), &rec); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusCreated, &rec)
}

func (h *collectionHandlers[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid JSON body"))
		return
	}

	if err := h.Svc.Update(r.Context(), id, fields); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["id"] = id
	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, body)
}

func (h *collectionHandlers[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteNoContent(w)
}
