package tasks

import "context"

// UseCase defines the business logic interface for the tasks domain.
type UseCase interface {
	// Analyze scores every task in the batch under the requested strategy
	// and returns them ordered by descending score.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Suggest returns the top-N tasks of an analysis (default 3).
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)
}
