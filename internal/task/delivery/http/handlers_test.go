package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskdates/internal/middleware"
	"taskdates/internal/model"
	"taskdates/internal/task"
	"taskdates/pkg/dateparse"
	"taskdates/pkg/log"
)

// stubUseCase lets each test pin the outputs it needs.
type stubUseCase struct {
	task.UseCase

	interpretOut task.InterpretOutput
	interpretErr error
	nextOut      task.NextOccurrenceOutput
	nextErr      error
	createOut    task.CreateOutput
	createErr    error
	detailOut    task.DetailOutput
	detailErr    error
	completeOut  task.CompleteOutput
	completeErr  error
	icsOut       []byte

	gotInterpret task.InterpretInput
}

func (s *stubUseCase) Interpret(_ context.Context, input task.InterpretInput) (task.InterpretOutput, error) {
	s.gotInterpret = input
	return s.interpretOut, s.interpretErr
}

func (s *stubUseCase) NextOccurrence(_ context.Context, _ task.NextOccurrenceInput) (task.NextOccurrenceOutput, error) {
	return s.nextOut, s.nextErr
}

func (s *stubUseCase) Create(_ context.Context, _ task.CreateInput) (task.CreateOutput, error) {
	return s.createOut, s.createErr
}

func (s *stubUseCase) Detail(_ context.Context, _ string) (task.DetailOutput, error) {
	return s.detailOut, s.detailErr
}

func (s *stubUseCase) Complete(_ context.Context, _ string) (task.CompleteOutput, error) {
	return s.completeOut, s.completeErr
}

func (s *stubUseCase) ExportICS(_ context.Context) ([]byte, error) {
	return s.icsOut, nil
}

func newTestServer(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), 0))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestInterpretHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &stubUseCase{
			interpretOut: task.InterpretOutput{
				Anchor: time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC),
				Candidates: []dateparse.Candidate{
					{Label: "Tomorrow", ISODate: "2025-01-09"},
				},
			},
		}
		r := newTestServer(uc)

		w := postJSON(r, "/api/v1/dates/interpret", `{"text": "tomorrow", "anchor": "2025-01-08"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var resp struct {
			Data interpretResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Data.Anchor != "2025-01-08" {
			t.Errorf("anchor = %q", resp.Data.Anchor)
		}
		if len(resp.Data.Candidates) != 1 || resp.Data.Candidates[0].ISODate != "2025-01-09" {
			t.Errorf("candidates = %+v", resp.Data.Candidates)
		}
		if uc.gotInterpret.Text != "tomorrow" {
			t.Errorf("use case received text %q", uc.gotInterpret.Text)
		}
	})

	t.Run("missing text key", func(t *testing.T) {
		r := newTestServer(&stubUseCase{})
		w := postJSON(r, "/api/v1/dates/interpret", `{"anchor": "2025-01-08"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("empty text reaches the use case and 400s", func(t *testing.T) {
		uc := &stubUseCase{interpretErr: task.ErrEmptyText}
		r := newTestServer(uc)
		w := postJSON(r, "/api/v1/dates/interpret", `{"text": ""}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("malformed anchor", func(t *testing.T) {
		r := newTestServer(&stubUseCase{})
		w := postJSON(r, "/api/v1/dates/interpret", `{"text": "tomorrow", "anchor": "January 8"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestNextHandler(t *testing.T) {
	t.Run("next date", func(t *testing.T) {
		uc := &stubUseCase{
			nextOut: task.NextOccurrenceOutput{
				Next: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			},
		}
		r := newTestServer(uc)

		w := postJSON(r, "/api/v1/recurrence/next",
			`{"rule": {"type": "weekly", "days_of_week": ["friday"]}, "anchor": "2025-01-08"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var resp struct {
			Data nextResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Data.Next != "2025-01-10" || resp.Data.None {
			t.Errorf("next = %+v", resp.Data)
		}
	})

	t.Run("none sentinel", func(t *testing.T) {
		uc := &stubUseCase{nextOut: task.NextOccurrenceOutput{None: true}}
		r := newTestServer(uc)

		w := postJSON(r, "/api/v1/recurrence/next",
			`{"rule": {"type": "daily", "end_date": "2024-01-01"}, "anchor": "2025-01-08"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var resp struct {
			Data nextResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Data.None || resp.Data.Next != "" {
			t.Errorf("expected none sentinel, got %+v", resp.Data)
		}
	})

	t.Run("invalid rule is a 400", func(t *testing.T) {
		uc := &stubUseCase{nextErr: task.ErrInvalidRule}
		r := newTestServer(uc)

		w := postJSON(r, "/api/v1/recurrence/next",
			`{"rule": {"type": "daily"}, "anchor": "2025-01-08"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing anchor", func(t *testing.T) {
		r := newTestServer(&stubUseCase{})
		w := postJSON(r, "/api/v1/recurrence/next", `{"rule": {"type": "daily"}}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestCreateHandler(t *testing.T) {
	due := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	created := model.Task{
		ID:       "11111111-1111-1111-1111-111111111111",
		SeriesID: "11111111-1111-1111-1111-111111111111",
		Title:    "Ship report",
		DueDate:  &due,
	}

	t.Run("success", func(t *testing.T) {
		uc := &stubUseCase{
			createOut: task.CreateOutput{
				Task:        created,
				Interpreted: &dateparse.Candidate{Label: "Friday", ISODate: "2025-01-10"},
			},
		}
		r := newTestServer(uc)

		w := postJSON(r, "/api/v1/tasks", `{"title": "Ship report", "due_text": "friday"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var resp struct {
			Data createResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Data.Task.DueDate == nil || time.Time(*resp.Data.Task.DueDate) != due {
			t.Errorf("due_date = %v", resp.Data.Task.DueDate)
		}
		if resp.Data.Interpreted == nil || resp.Data.Interpreted.Label != "Friday" {
			t.Errorf("interpreted = %+v", resp.Data.Interpreted)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		r := newTestServer(&stubUseCase{})
		w := postJSON(r, "/api/v1/tasks", `{"due_text": "friday"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("due_text and due_date conflict", func(t *testing.T) {
		r := newTestServer(&stubUseCase{})
		w := postJSON(r, "/api/v1/tasks",
			`{"title": "X", "due_text": "friday", "due_date": "2025-01-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestDetailAndCompleteHandlers(t *testing.T) {
	t.Run("detail not found", func(t *testing.T) {
		uc := &stubUseCase{detailErr: task.ErrTaskNotFound}
		r := newTestServer(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/nope", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("complete returns spawned occurrence", func(t *testing.T) {
		due := time.Date(2025, time.January, 17, 0, 0, 0, 0, time.UTC)
		uc := &stubUseCase{
			completeOut: task.CompleteOutput{
				Task: model.Task{ID: "a", SeriesID: "a", Title: "Weekly", Completed: true},
				Next: &model.Task{ID: "b", SeriesID: "a", Title: "Weekly", DueDate: &due},
			},
		}
		r := newTestServer(uc)

		w := postJSON(r, "/api/v1/tasks/a/complete", ``)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var resp struct {
			Data completeResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Data.Task.Completed {
			t.Errorf("task not completed in response")
		}
		if resp.Data.Next == nil || resp.Data.Next.DueDate == nil || time.Time(*resp.Data.Next.DueDate) != due {
			t.Errorf("next = %+v", resp.Data.Next)
		}
	})

	t.Run("double completion is a 400", func(t *testing.T) {
		uc := &stubUseCase{completeErr: task.ErrAlreadyComplete}
		r := newTestServer(uc)

		w := postJSON(r, "/api/v1/tasks/a/complete", ``)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestExportICSHandler(t *testing.T) {
	uc := &stubUseCase{icsOut: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")}
	r := newTestServer(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/calendar.ics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("BEGIN:VCALENDAR")) {
		t.Errorf("body = %q", w.Body.String())
	}
}
