package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/tasks"
)

// validateBatch rejects the whole batch on the first invalid record, per
// the error handling design: no partial scoring.
func (uc *implUseCase) validateBatch(batch []model.Task) error {
	if len(batch) == 0 {
		return tasks.ErrNoTasks
	}
	if len(batch) > uc.cfg.MaxBatchSize {
		return tasks.ErrBatchTooLarge
	}

	seen := make(map[string]bool, len(batch))
	for _, t := range batch {
		if t.Title == "" {
			return tasks.ErrEmptyTitle
		}
		if t.Importance < 1 || t.Importance > 10 {
			return tasks.ErrInvalidImportance
		}
		if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
			return tasks.ErrInvalidHours
		}
		if t.ID != "" {
			if seen[t.ID] {
				return tasks.ErrDuplicateID
			}
			seen[t.ID] = true
		}
	}
	return nil
}

// cacheKeyTask is the canonical shape hashed for the analyze cache.
type cacheKeyTask struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	DueDate      string   `json:"due_date,omitempty"`
	Hours        *float64 `json:"hours,omitempty"`
	Importance   int      `json:"importance"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// cacheKey derives a stable key from strategy, batch, and the current
// date. The date is part of the key so urgency never goes stale across
// midnight.
func (uc *implUseCase) cacheKey(strategy string, batch []model.Task, now time.Time) string {
	keyTasks := make([]cacheKeyTask, len(batch))
	for i, t := range batch {
		kt := cacheKeyTask{
			ID:           t.ID,
			Title:        t.Title,
			Hours:        t.EstimatedHours,
			Importance:   t.Importance,
			Dependencies: t.Dependencies,
		}
		if t.DueDate != nil {
			kt.DueDate = t.DueDate.Format("2006-01-02")
		}
		keyTasks[i] = kt
	}

	payload, err := json.Marshal(struct {
		Strategy string         `json:"strategy"`
		Day      string         `json:"day"`
		Tasks    []cacheKeyTask `json:"tasks"`
	}{
		Strategy: strategy,
		Day:      now.Format("2006-01-02"),
		Tasks:    keyTasks,
	})
	if err != nil {
		// Marshal of plain structs cannot fail; skip caching if it ever does.
		return ""
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
