package middleware

import (
	"smart-task-planner/config"
	"smart-task-planner/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l   log.Logger
	cfg *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
