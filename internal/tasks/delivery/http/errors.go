package http

import (
	"net/http"

	"smart-task-planner/internal/tasks"
	pkgErrors "smart-task-planner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors surface as 500 without leaking internals.
func (h *handler) mapError(err error) error {
	switch err {
	case tasks.ErrNoTasks,
		tasks.ErrBatchTooLarge,
		tasks.ErrEmptyTitle,
		tasks.ErrInvalidImportance,
		tasks.ErrInvalidHours,
		tasks.ErrDuplicateID,
		tasks.ErrUnsupportedStrategy:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
