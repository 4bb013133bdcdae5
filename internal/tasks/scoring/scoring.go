// Package scoring implements the task suggestion engine: a pure function
// of a task batch, a strategy, and the current time. No side effects, no
// state between calls.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"smart-task-planner/internal/model"
)

// Analyze scores every task in the batch under the given strategy and
// returns them ordered by descending score. Equal scores keep their input
// order. The batch is assumed validated; tasks without an id get an
// index-based fallback.
func Analyze(batch []model.Task, strategy Strategy, now time.Time) []model.ScoredTask {
	tasks := assignIDs(batch)

	g := buildGraph(tasks)
	cycles := g.cycleNodes()

	scored := make([]model.ScoredTask, len(tasks))
	for i, t := range tasks {
		scored[i] = scoreTask(t, strategy, g, cycles, now)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// scoreTask computes score and explanation for a single task.
func scoreTask(t model.Task, strategy Strategy, g depGraph, cycles map[string]bool, now time.Time) model.ScoredTask {
	importance := float64(t.Importance)
	urgency, urgencyReason := urgencyScore(t.DueDate, now)
	effort, effortReason := effortScore(t.EstimatedHours)
	unblocks := g.dependents[t.ID]
	missing := g.missing[t.ID]

	var score float64
	bits := make([]string, 0, 6)

	switch strategy {
	case StrategyFastestWins:
		score = scoreFastestWins(importance, urgency, effort)
		bits = append(bits, "prioritized quick wins (low effort)")
	case StrategyHighImpact:
		score = scoreHighImpact(importance)
		bits = append(bits, "prioritized high importance")
	case StrategyDeadlineDriven:
		score = scoreDeadlineDriven(importance, urgency)
		bits = append(bits, "prioritized close deadlines")
	default: // smart_balance
		score = scoreSmartBalance(importance, urgency, effort, unblocks)
		bits = append(bits, "balanced importance, urgency, effort, and dependencies")
	}

	bits = append(bits, fmt.Sprintf("importance %g/10", importance))
	bits = append(bits, "urgency because it is "+urgencyReason)
	bits = append(bits, effortReason)
	if unblocks > 0 {
		bits = append(bits, fmt.Sprintf("unblocks %d other task(s)", unblocks))
	}

	// Unmet dependencies gate the score: every strategy ranks a blocked
	// task below its unblocked twin.
	if missing > 0 {
		score -= MissingDependencyPenalty * float64(missing)
		if score < 0 {
			score = 0
		}
		bits = append(bits, fmt.Sprintf("blocked by %d missing dependency(ies)", missing))
	}

	hasCycle := cycles[t.ID]
	if hasCycle {
		bits = append(bits, "involved in a circular dependency")
	}

	return model.ScoredTask{
		Task:         t,
		Score:        round2(score),
		StrategyUsed: string(strategy),
		Explanation:  strings.Join(bits, "; "),
		HasCycle:     hasCycle,
		Unblocks:     unblocks,
	}
}

// assignIDs fills empty task ids with the task's batch index. The input
// slice is not mutated.
func assignIDs(batch []model.Task) []model.Task {
	tasks := make([]model.Task, len(batch))
	copy(tasks, batch)
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = fmt.Sprintf("%d", i)
		}
	}
	return tasks
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
