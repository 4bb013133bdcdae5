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

	"smart-task-planner/internal/tasks"
	"smart-task-planner/internal/tasks/usecase"
	"smart-task-planner/pkg/log"
	"smart-task-planner/pkg/response"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var _ log.Logger = (*mockLogger)(nil)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := usecase.New(&mockLogger{}, usecase.Config{
		Now: func() time.Time { return testNow },
	})
	h := New(&mockLogger{}, uc)

	r := gin.New()
	RegisterRoutes(r.Group("/api"), h)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func importancePtr(i int) *int { return &i }

func TestAnalyzeEndpoint(t *testing.T) {
	r := newTestRouter()

	t.Run("Returns Ordered Bare Array", func(t *testing.T) {
		w := postJSON(t, r, "/api/tasks/analyze/", analyzeReq{
			Strategy: "default",
			Tasks: []taskReq{
				{ID: "1", Title: "A", Importance: importancePtr(10), DueDate: testNow.Format(dateFormat)},
				{ID: "2", Title: "B", Importance: importancePtr(1)},
			},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var out []scoredTaskResp
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("expected a bare JSON array, got: %s", w.Body.String())
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 scored tasks, got %d", len(out))
		}
		if out[0].ID != "1" {
			t.Errorf("expected id '1' first, got %q", out[0].ID)
		}
		if out[0].Score < out[1].Score {
			t.Errorf("ordering not descending: %v then %v", out[0].Score, out[1].Score)
		}
		if out[0].Explanation == "" {
			t.Error("expected a non-empty explanation")
		}
		if out[0].DueDate == nil || *out[0].DueDate != testNow.Format(dateFormat) {
			t.Errorf("due date not preserved: %v", out[0].DueDate)
		}
	})

	t.Run("Empty Batch Is Rejected", func(t *testing.T) {
		w := postJSON(t, r, "/api/tasks/analyze/", analyzeReq{Strategy: "default"})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != tasks.ErrNoTasks.Error() {
			t.Errorf("expected %q, got %q", tasks.ErrNoTasks.Error(), resp.Message)
		}
	})

	t.Run("Unsupported Strategy Is Rejected", func(t *testing.T) {
		w := postJSON(t, r, "/api/tasks/analyze/", analyzeReq{
			Strategy: "alphabetical",
			Tasks:    []taskReq{{ID: "1", Title: "A", Importance: importancePtr(5)}},
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != tasks.ErrUnsupportedStrategy.Error() {
			t.Errorf("expected %q, got %q", tasks.ErrUnsupportedStrategy.Error(), resp.Message)
		}
	})

	t.Run("Importance Out Of Range Is Rejected", func(t *testing.T) {
		w := postJSON(t, r, "/api/tasks/analyze/", analyzeReq{
			Strategy: "default",
			Tasks:    []taskReq{{ID: "1", Title: "A", Importance: importancePtr(42)}},
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Missing Importance Is Rejected", func(t *testing.T) {
		w := postJSON(t, r, "/api/tasks/analyze/", analyzeReq{
			Strategy: "default",
			Tasks:    []taskReq{{ID: "1", Title: "A"}},
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Malformed Due Date Is Rejected", func(t *testing.T) {
		w := postJSON(t, r, "/api/tasks/analyze/", analyzeReq{
			Strategy: "default",
			Tasks:    []taskReq{{ID: "1", Title: "A", Importance: importancePtr(5), DueDate: "24/08/2026"}},
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Malformed JSON Is Rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tasks/analyze/", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSuggestEndpoint(t *testing.T) {
	r := newTestRouter()

	t.Run("Returns Top Three In Envelope", func(t *testing.T) {
		w := postJSON(t, r, "/api/tasks/suggest/", suggestReq{
			Strategy: "high_impact",
			Tasks: []taskReq{
				{ID: "1", Title: "A", Importance: importancePtr(2)},
				{ID: "2", Title: "B", Importance: importancePtr(9)},
				{ID: "3", Title: "C", Importance: importancePtr(5)},
				{ID: "4", Title: "D", Importance: importancePtr(7)},
			},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			ErrorCode int         `json:"error_code"`
			Data      suggestResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Data.Count != 3 {
			t.Fatalf("expected 3 suggestions, got %d", resp.Data.Count)
		}
		if resp.Data.Tasks[0].ID != "2" {
			t.Errorf("expected id '2' first, got %q", resp.Data.Tasks[0].ID)
		}
		if resp.Data.Strategy != "high_impact" {
			t.Errorf("unexpected strategy: %s", resp.Data.Strategy)
		}
	})

	t.Run("Propagates Validation Errors", func(t *testing.T) {
		w := postJSON(t, r, "/api/tasks/suggest/", suggestReq{Strategy: "default"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
