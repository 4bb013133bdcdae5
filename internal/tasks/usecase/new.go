package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"smart-task-planner/internal/model"
	"smart-task-planner/pkg/log"
)

// Config tunes the tasks use case.
type Config struct {
	CacheSize    int              // analyze result cache entries
	SuggestLimit int              // default top-N for Suggest
	MaxBatchSize int              // largest accepted batch
	Now          func() time.Time // injectable clock, defaults to time.Now
}

// implUseCase is the private implementation of tasks.UseCase.
type implUseCase struct {
	l     log.Logger
	cfg   Config
	cache *lru.Cache[string, []model.ScoredTask]
	now   func() time.Time
}

// New creates a new tasks UseCase implementation.
func New(l log.Logger, cfg Config) *implUseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 128
	}
	if cfg.SuggestLimit <= 0 {
		cfg.SuggestLimit = 3
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = 500
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	// lru.New only fails on a non-positive size, which is guarded above.
	cache, _ := lru.New[string, []model.ScoredTask](cfg.CacheSize)

	return &implUseCase{
		l:     l,
		cfg:   cfg,
		cache: cache,
		now:   now,
	}
}
