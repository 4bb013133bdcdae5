package model

import "time"

// Task is a single unit of work submitted for analysis.
type Task struct {
	ID             string     // unique within a batch; index-based fallback when absent
	Title          string     // non-empty
	DueDate        *time.Time // date precision, optional
	EstimatedHours *float64   // optional, non-negative
	Importance     int        // 1–10, required
	Dependencies   []string   // ids of tasks this one depends on
}

// ScoredTask is a Task augmented with the engine's verdict.
type ScoredTask struct {
	Task

	Score        float64
	StrategyUsed string
	Explanation  string
	HasCycle     bool // part of a circular dependency
	Unblocks     int  // how many tasks in the batch depend on this one
}
