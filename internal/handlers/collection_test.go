package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/ricgcw/chms-backend/internal/errs"
	"github.com/ricgcw/chms-backend/internal/models"
)

type stubCollectionService[T any] struct {
	records []*T

	created     *T
	updateID    string
	updateSent  map[string]any
	deletedID   string
	err         error
	createCalls int
}

func (s *stubCollectionService[T]) List(_ context.Context) ([]*T, error) {
	return s.records, s.err
}

func (s *stubCollectionService[T]) Create(_ context.Context, rec *T) error {
	s.createCalls++
	s.created = rec
	return s.err
}

func (s *stubCollectionService[T]) Update(_ context.Context, id string, fields map[string]any) error {
	s.updateID = id
	s.updateSent = fields
	return s.err
}

func (s *stubCollectionService[T]) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

type stubResponseHandler struct {
	status int
	data   any

	noContentCalled bool

	handleErrorCalled bool
	handledError      error
}

func (s *stubResponseHandler) WriteJSON(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.status = status
	s.data = data
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *stubResponseHandler) WriteNoContent(w http.ResponseWriter) {
	s.noContentCalled = true
	w.WriteHeader(http.StatusNoContent)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handledError = err
	w.WriteHeader(http.StatusInternalServerError)
}

func newEventHandlersForTest(svc collectionService[models.Event]) (*collectionHandlers[models.Event], *stubResponseHandler) {
	resp := &stubResponseHandler{}
	deps := &Deps{
		ResponseHandler: resp,
		Validate:        validator.New(),
	}
	return NewCollectionHandlers(deps, svc), resp
}

func TestCollectionList(t *testing.T) {
	svc := &stubCollectionService[models.Event]{records: []*models.Event{
		{Name: "Youth Retreat", Date: "2025-03-01T00:00:00.000Z"},
	}}
	h, resp := newEventHandlersForTest(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if resp.status != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.status)
	}
	records, ok := resp.data.([]*models.Event)
	if !ok || len(records) != 1 {
		t.Fatalf("unexpected payload: %#v", resp.data)
	}
}

func TestCollectionCreate(t *testing.T) {
	svc := &stubCollectionService[models.Event]{}
	h, resp := newEventHandlersForTest(svc)

	body := `{"name":"Youth Retreat","date":"2025-03-01T00:00:00.000Z","time":"10:00","location":"Main Hall","isOnline":false}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if svc.createCalls != 1 {
		t.Fatalf("Create called %d times, want 1", svc.createCalls)
	}
	if resp.status != http.StatusCreated {
		t.Fatalf("status %d, want 201", resp.status)
	}
	if svc.created == nil || svc.created.Name != "Youth Retreat" || svc.created.Location != "Main Hall" {
		t.Fatalf("service received wrong record: %+v", svc.created)
	}
}

func TestCollectionCreateInvalidJSON(t *testing.T) {
	svc := &stubCollectionService[models.Event]{}
	h, resp := newEventHandlersForTest(svc)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if svc.createCalls != 0 {
		t.Fatalf("Create must not reach the service on invalid JSON")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("HandleError should be called on invalid JSON")
	}
	var verr *errs.ValidationError
	if !errors.As(resp.handledError, &verr) {
		t.Fatalf("expected a validation error, got %T", resp.handledError)
	}
}

func TestCollectionCreateRejectsMissingRequiredFields(t *testing.T) {
	svc := &stubCollectionService[models.Event]{}
	h, resp := newEventHandlersForTest(svc)

	// events require name and date
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"location":"Main Hall"}`))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if svc.createCalls != 0 {
		t.Fatalf("Create must not reach the service when validation fails")
	}
	var verr *errs.ValidationError
	if !errors.As(resp.handledError, &verr) {
		t.Fatalf("expected a validation error, got %T", resp.handledError)
	}
}

func TestCollectionUpdate(t *testing.T) {
	svc := &stubCollectionService[models.Event]{}
	h, resp := newEventHandlersForTest(svc)

	req := httptest.NewRequest(http.MethodPut, "/ev-42", strings.NewReader(`{"location":"Annex"}`))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if svc.updateID != "ev-42" {
		t.Fatalf("service received id %q, want ev-42", svc.updateID)
	}
	if resp.status != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.status)
	}

	body, ok := resp.data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected payload: %#v", resp.data)
	}
	if body["id"] != "ev-42" || body["location"] != "Annex" {
		t.Fatalf("update response must echo id and submitted fields: %v", body)
	}
}

func TestCollectionDelete(t *testing.T) {
	svc := &stubCollectionService[models.Event]{}
	h, resp := newEventHandlersForTest(svc)

	req := httptest.NewRequest(http.MethodDelete, "/ev-42", nil)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if svc.deletedID != "ev-42" {
		t.Fatalf("service received id %q, want ev-42", svc.deletedID)
	}
	if !resp.noContentCalled || rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with empty body, got %d", rr.Code)
	}
}

func TestCollectionServiceErrorsDelegated(t *testing.T) {
	svc := &stubCollectionService[models.Event]{err: errs.NewDatabaseError("events", "list", errors.New("unreachable"))}
	h, resp := newEventHandlersForTest(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected the store error to reach HandleError")
	}
	var derr *errs.DatabaseError
	if !errors.As(resp.handledError, &derr) {
		t.Fatalf("expected the database error, got %T", resp.handledError)
	}
}
