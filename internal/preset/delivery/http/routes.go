package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the preset endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.List)
	rg.POST("", h.Save)
	rg.POST("/:name/load", h.Load)
	rg.DELETE("/:name", h.Delete)
}
