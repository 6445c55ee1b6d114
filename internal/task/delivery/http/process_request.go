package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errTextRequired = errors.New("text is required")

// processInterpretReq binds and validates the interpret request body.
// A body without a "text" key is rejected; an empty string passes here
// and is rejected by the use case.
func (h *handler) processInterpretReq(c *gin.Context) (interpretReq, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.Text == nil {
		return req, errTextRequired
	}
	return req, nil
}

// processNextReq binds and validates the next-occurrence request body.
func (h *handler) processNextReq(c *gin.Context) (nextReq, error) {
	var req nextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

var errDueConflict = errors.New("due_text and due_date are mutually exclusive")

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.DueText != "" && req.DueDate != "" {
		return req, errDueConflict
	}
	return req, nil
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
