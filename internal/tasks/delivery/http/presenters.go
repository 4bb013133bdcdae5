package http

import (
	"fmt"
	"time"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/tasks"
)

const dateFormat = "2006-01-02"

// --- Request DTOs ---

type taskReq struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	DueDate        string   `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours"`
	Importance     *int     `json:"importance"`
	Dependencies   []string `json:"dependencies"`
}

func (r taskReq) toModel() (model.Task, error) {
	t := model.Task{
		ID:             r.ID,
		Title:          r.Title,
		EstimatedHours: r.EstimatedHours,
		Dependencies:   r.Dependencies,
	}

	if r.Importance == nil {
		return model.Task{}, fmt.Errorf("task %q: importance is required", r.Title)
	}
	t.Importance = *r.Importance

	if r.DueDate != "" {
		due, err := time.Parse(dateFormat, r.DueDate)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %q: due_date must be YYYY-MM-DD", r.Title)
		}
		t.DueDate = &due
	}

	return t, nil
}

type analyzeReq struct {
	Strategy string    `json:"strategy"`
	Tasks    []taskReq `json:"tasks"`
}

func (r analyzeReq) toInput() (tasks.AnalyzeInput, error) {
	batch, err := toModelBatch(r.Tasks)
	if err != nil {
		return tasks.AnalyzeInput{}, err
	}
	return tasks.AnalyzeInput{
		Strategy: r.Strategy,
		Tasks:    batch,
	}, nil
}

type suggestReq struct {
	Strategy string    `json:"strategy"`
	Tasks    []taskReq `json:"tasks"`
	Limit    int       `json:"limit"`
}

func (r suggestReq) toInput() (tasks.SuggestInput, error) {
	batch, err := toModelBatch(r.Tasks)
	if err != nil {
		return tasks.SuggestInput{}, err
	}
	return tasks.SuggestInput{
		Strategy: r.Strategy,
		Tasks:    batch,
		Limit:    r.Limit,
	}, nil
}

func toModelBatch(reqs []taskReq) ([]model.Task, error) {
	batch := make([]model.Task, len(reqs))
	for i, tr := range reqs {
		t, err := tr.toModel()
		if err != nil {
			return nil, err
		}
		batch[i] = t
	}
	return batch, nil
}

// --- Response DTOs ---

type scoredTaskResp struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	DueDate        *string  `json:"due_date,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	Importance     int      `json:"importance"`
	Dependencies   []string `json:"dependencies,omitempty"`
	Score          float64  `json:"score"`
	StrategyUsed   string   `json:"strategy_used"`
	Explanation    string   `json:"explanation"`
	HasCycle       bool     `json:"has_cycle"`
}

func newScoredTaskResp(st model.ScoredTask) scoredTaskResp {
	resp := scoredTaskResp{
		ID:             st.ID,
		Title:          st.Title,
		EstimatedHours: st.EstimatedHours,
		Importance:     st.Importance,
		Dependencies:   st.Dependencies,
		Score:          st.Score,
		StrategyUsed:   st.StrategyUsed,
		Explanation:    st.Explanation,
		HasCycle:       st.HasCycle,
	}
	if st.DueDate != nil {
		due := st.DueDate.Format(dateFormat)
		resp.DueDate = &due
	}
	return resp
}

// newAnalyzeResp builds the bare ordered array the analyze contract
// promises.
func (h *handler) newAnalyzeResp(out tasks.AnalyzeOutput) []scoredTaskResp {
	resps := make([]scoredTaskResp, len(out.Tasks))
	for i, st := range out.Tasks {
		resps[i] = newScoredTaskResp(st)
	}
	return resps
}

type suggestResp struct {
	Strategy string           `json:"strategy"`
	Count    int              `json:"count"`
	Tasks    []scoredTaskResp `json:"tasks"`
}

func (h *handler) newSuggestResp(out tasks.SuggestOutput) suggestResp {
	resps := make([]scoredTaskResp, len(out.Tasks))
	for i, st := range out.Tasks {
		resps[i] = newScoredTaskResp(st)
	}
	return suggestResp{
		Strategy: out.Strategy,
		Count:    out.Count,
		Tasks:    resps,
	}
}
