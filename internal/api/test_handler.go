package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heyged/gedprep/internal/api/shared"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/quiz"
	"github.com/heyged/gedprep/internal/service"
)

// TestSessions is the part of service.TestService used by TestHandler.
type TestSessions interface {
	Start(ctx context.Context, subject domain.Subject) (*service.TestHandle, error)
	Get(id string) (*service.TestHandle, error)
	Abort(id string) error
}

// TestHandler handles practice test requests.
type TestHandler struct {
	tests  TestSessions
	logger *slog.Logger
}

// NewTestHandler creates a new TestHandler.
func NewTestHandler(tests TestSessions, logger *slog.Logger) *TestHandler {
	return &TestHandler{
		tests:  tests,
		logger: logger.With("handler", "test"),
	}
}

// StartTest handles POST /api/tests. The first question loads in the
// background, so the response is 202 Accepted with a loading view.
func (h *TestHandler) StartTest(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	subject, err := domain.ParseSubject(req.Subject)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	handle, err := h.tests.Start(r.Context(), subject)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start test")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, testToResponse(handle))
}

// GetTest handles GET /api/tests/{id}.
func (h *TestHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(*quiz.Session) error { return nil })
}

// SelectOption handles POST /api/tests/{id}/select.
func (h *TestHandler) SelectOption(w http.ResponseWriter, r *http.Request) {
	var req SelectOptionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.act(w, r, func(s *quiz.Session) error { return s.Select(req.Option) })
}

// CheckAnswer handles POST /api/tests/{id}/check.
func (h *TestHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, (*quiz.Session).Check)
}

// SkipQuestion handles POST /api/tests/{id}/skip.
func (h *TestHandler) SkipQuestion(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, (*quiz.Session).Skip)
}

// NextQuestion handles POST /api/tests/{id}/next.
func (h *TestHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, (*quiz.Session).Next)
}

// ExitTest handles DELETE /api/tests/{id}. The test ends without a score.
func (h *TestHandler) ExitTest(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.tests.Abort(id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// act runs op on the session named in the path and responds with its view.
func (h *TestHandler) act(w http.ResponseWriter, r *http.Request, op func(*quiz.Session) error) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	handle, err := h.tests.Get(id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := op(handle.Session); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, testToResponse(handle))
}

func testToResponse(handle *service.TestHandle) TestSessionResponse {
	return TestSessionResponse{ID: handle.ID, View: handle.Session.View()}
}
