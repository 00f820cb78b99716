package http

import "github.com/gin-gonic/gin"

// Register attaches section routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.catalog)
	rg.GET("/locate", h.locate)
	rg.GET("/target", h.target)
}
