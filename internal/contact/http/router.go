package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the submission route.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
}

// RegisterAdmin attaches the archive listing behind the auth middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/messages", h.recent)
}
