package usecase

import (
	"context"

	"smart-task-planner/internal/tasks"
	"smart-task-planner/internal/tasks/scoring"
)

// Analyze validates the batch, resolves the strategy, and scores every
// task. Identical requests on the same day are served from the LRU cache;
// the engine itself stays a pure function of its inputs.
func (uc *implUseCase) Analyze(ctx context.Context, input tasks.AnalyzeInput) (tasks.AnalyzeOutput, error) {
	strategy, ok := scoring.ParseStrategy(input.Strategy)
	if !ok {
		uc.l.Warnf(ctx, "uc.Analyze: unsupported strategy %q", input.Strategy)
		return tasks.AnalyzeOutput{}, tasks.ErrUnsupportedStrategy
	}

	if err := uc.validateBatch(input.Tasks); err != nil {
		uc.l.Warnf(ctx, "uc.Analyze: invalid batch: %v", err)
		return tasks.AnalyzeOutput{}, err
	}

	now := uc.now()

	key := uc.cacheKey(string(strategy), input.Tasks, now)
	if key != "" {
		if cached, hit := uc.cache.Get(key); hit {
			uc.l.Debugf(ctx, "uc.Analyze: cache hit for %d tasks", len(cached))
			return tasks.AnalyzeOutput{Strategy: string(strategy), Tasks: cached}, nil
		}
	}

	scored := scoring.Analyze(input.Tasks, strategy, now)

	if key != "" {
		uc.cache.Add(key, scored)
	}

	uc.l.Infof(ctx, "uc.Analyze: scored %d tasks with strategy %s", len(scored), strategy)
	return tasks.AnalyzeOutput{Strategy: string(strategy), Tasks: scored}, nil
}
