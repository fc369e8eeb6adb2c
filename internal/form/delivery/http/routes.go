package http

import (
	"github.com/gin-gonic/gin"

	"time-calculator/internal/middleware"
)

// RegisterRoutes maps the form endpoints. Only submission is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", h.View)
	rg.PUT("/fields/:field", h.SetField)
	rg.PUT("/unit", h.SetUnit)
	rg.PUT("/start-date", h.SetUseStartDate)
	rg.POST("/now", h.SetNow)
	rg.POST("/clear", h.Clear)
	rg.POST("/submit", mw.RateLimit(), h.Submit)
	rg.GET("/result", h.Result)
}
