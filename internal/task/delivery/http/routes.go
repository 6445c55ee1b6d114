package http

import (
	"github.com/gin-gonic/gin"

	"taskdates/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes share the per-client rate limit middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	dates := rg.Group("/dates")
	{
		dates.POST("/interpret", mw.RateLimit(), h.Interpret)
	}

	rec := rg.Group("/recurrence")
	{
		rec.POST("/next", mw.RateLimit(), h.Next)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.GET("", mw.RateLimit(), h.List)
		tasks.GET("/calendar.ics", mw.RateLimit(), h.ExportICS)
		tasks.GET("/:id", mw.RateLimit(), h.Detail)
		tasks.POST("/:id/complete", mw.RateLimit(), h.Complete)
	}
}
