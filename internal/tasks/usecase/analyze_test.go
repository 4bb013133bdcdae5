package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/tasks"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func newTestUseCase() *implUseCase {
	return New(&mockLogger{}, Config{
		CacheSize:    8,
		SuggestLimit: 3,
		MaxBatchSize: 100,
		Now:          func() time.Time { return testNow },
	})
}

func validTask(id string, importance int) model.Task {
	return model.Task{ID: id, Title: "Task " + id, Importance: importance}
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Batch Error", func(t *testing.T) {
		uc := newTestUseCase()
		_, err := uc.Analyze(ctx, tasks.AnalyzeInput{Strategy: "default"})
		if !errors.Is(err, tasks.ErrNoTasks) {
			t.Errorf("expected ErrNoTasks, got %v", err)
		}
	})

	t.Run("Unsupported Strategy Error", func(t *testing.T) {
		uc := newTestUseCase()
		_, err := uc.Analyze(ctx, tasks.AnalyzeInput{
			Strategy: "alphabetical",
			Tasks:    []model.Task{validTask("1", 5)},
		})
		if !errors.Is(err, tasks.ErrUnsupportedStrategy) {
			t.Errorf("expected ErrUnsupportedStrategy, got %v", err)
		}
	})

	t.Run("Importance Out Of Range Rejects Batch", func(t *testing.T) {
		uc := newTestUseCase()
		_, err := uc.Analyze(ctx, tasks.AnalyzeInput{
			Strategy: "default",
			Tasks:    []model.Task{validTask("1", 5), validTask("2", 11)},
		})
		if !errors.Is(err, tasks.ErrInvalidImportance) {
			t.Errorf("expected ErrInvalidImportance, got %v", err)
		}
	})

	t.Run("Empty Title Rejects Batch", func(t *testing.T) {
		uc := newTestUseCase()
		_, err := uc.Analyze(ctx, tasks.AnalyzeInput{
			Strategy: "default",
			Tasks:    []model.Task{{ID: "1", Importance: 5}},
		})
		if !errors.Is(err, tasks.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Negative Hours Rejects Batch", func(t *testing.T) {
		uc := newTestUseCase()
		h := -1.0
		bad := validTask("1", 5)
		bad.EstimatedHours = &h
		_, err := uc.Analyze(ctx, tasks.AnalyzeInput{Strategy: "default", Tasks: []model.Task{bad}})
		if !errors.Is(err, tasks.ErrInvalidHours) {
			t.Errorf("expected ErrInvalidHours, got %v", err)
		}
	})

	t.Run("Duplicate ID Rejects Batch", func(t *testing.T) {
		uc := newTestUseCase()
		_, err := uc.Analyze(ctx, tasks.AnalyzeInput{
			Strategy: "default",
			Tasks:    []model.Task{validTask("1", 5), validTask("1", 6)},
		})
		if !errors.Is(err, tasks.ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("Batch Too Large", func(t *testing.T) {
		uc := New(&mockLogger{}, Config{MaxBatchSize: 2, Now: func() time.Time { return testNow }})
		batch := []model.Task{validTask("1", 5), validTask("2", 5), validTask("3", 5)}
		_, err := uc.Analyze(ctx, tasks.AnalyzeInput{Strategy: "default", Tasks: batch})
		if !errors.Is(err, tasks.ErrBatchTooLarge) {
			t.Errorf("expected ErrBatchTooLarge, got %v", err)
		}
	})

	t.Run("Documented Example Ranks First", func(t *testing.T) {
		uc := newTestUseCase()
		due := testNow
		out, err := uc.Analyze(ctx, tasks.AnalyzeInput{
			Strategy: "default",
			Tasks: []model.Task{
				{ID: "1", Title: "A", Importance: 10, DueDate: &due},
				{ID: "2", Title: "B", Importance: 1},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Strategy != "smart_balance" {
			t.Errorf("expected resolved strategy smart_balance, got %s", out.Strategy)
		}
		if out.Tasks[0].ID != "1" {
			t.Errorf("expected id '1' first, got %q", out.Tasks[0].ID)
		}
	})

	t.Run("Cache Hit Returns Same Result", func(t *testing.T) {
		uc := newTestUseCase()
		input := tasks.AnalyzeInput{
			Strategy: "fastest_wins",
			Tasks:    []model.Task{validTask("1", 5), validTask("2", 9)},
		}

		first, err := uc.Analyze(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.cache.Len() != 1 {
			t.Fatalf("expected 1 cached entry, got %d", uc.cache.Len())
		}

		second, err := uc.Analyze(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first.Tasks) != len(second.Tasks) {
			t.Fatalf("cached result differs in length")
		}
		for i := range first.Tasks {
			if first.Tasks[i].ID != second.Tasks[i].ID || first.Tasks[i].Score != second.Tasks[i].Score {
				t.Errorf("cached result differs at %d", i)
			}
		}
	})

	t.Run("Strategy Is Part Of Cache Key", func(t *testing.T) {
		uc := newTestUseCase()
		batch := []model.Task{validTask("1", 5)}

		if _, err := uc.Analyze(ctx, tasks.AnalyzeInput{Strategy: "high_impact", Tasks: batch}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Analyze(ctx, tasks.AnalyzeInput{Strategy: "deadline_driven", Tasks: batch}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.cache.Len() != 2 {
			t.Errorf("expected 2 cache entries, got %d", uc.cache.Len())
		}
	})
}
