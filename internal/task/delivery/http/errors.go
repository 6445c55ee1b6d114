package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskdates/internal/task"
	"taskdates/pkg/dateparse"
	"taskdates/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
// Validation-shaped errors become 400, missing records 404, and
// everything else a masked 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyText),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrNoDateMatch),
		errors.Is(err, task.ErrInvalidDueDate),
		errors.Is(err, task.ErrInvalidRule),
		errors.Is(err, dateparse.ErrZeroAnchor):
		response.Error(c, err, nil)
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrAlreadyComplete):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
