package http

import (
	"github.com/gin-gonic/gin"

	"taskdates/internal/task"
	"taskdates/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Interpret(c *gin.Context)
	Next(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Complete(c *gin.Context)
	ExportICS(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
