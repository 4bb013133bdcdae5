package usecase

import (
	"context"

	"smart-task-planner/internal/tasks"
)

// Suggest analyzes the batch and returns the top-N tasks.
func (uc *implUseCase) Suggest(ctx context.Context, input tasks.SuggestInput) (tasks.SuggestOutput, error) {
	analyzed, err := uc.Analyze(ctx, tasks.AnalyzeInput{
		Strategy: input.Strategy,
		Tasks:    input.Tasks,
	})
	if err != nil {
		return tasks.SuggestOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.SuggestLimit
	}
	if limit > len(analyzed.Tasks) {
		limit = len(analyzed.Tasks)
	}

	top := analyzed.Tasks[:limit]
	return tasks.SuggestOutput{
		Strategy: analyzed.Strategy,
		Count:    len(top),
		Tasks:    top,
	}, nil
}
