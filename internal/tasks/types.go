package tasks

import "smart-task-planner/internal/model"

// --- UseCase Inputs ---

type AnalyzeInput struct {
	Strategy string
	Tasks    []model.Task
}

type SuggestInput struct {
	Strategy string
	Tasks    []model.Task
	Limit    int // 0 means the configured default
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Strategy string // resolved strategy name
	Tasks    []model.ScoredTask
}

type SuggestOutput struct {
	Strategy string
	Count    int
	Tasks    []model.ScoredTask
}
