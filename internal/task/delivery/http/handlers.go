package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdates/pkg/response"
)

// Interpret resolves a natural-language date phrase into candidates.
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Interpret(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Interpret: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newInterpretResp(output))
}

// Next computes the next occurrence of a recurrence rule.
func (h *handler) Next(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.NextOccurrence(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.NextOccurrence: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newNextResp(output))
}

// Create creates a task, optionally resolving a due-date phrase.
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List returns a page of tasks.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail returns a single task by ID.
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Complete marks a task done and, for recurring tasks, returns the
// spawned next occurrence.
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// ExportICS streams the open tasks as an iCalendar document.
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.ExportICS(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tasks.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}
