package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches CV resolution and download.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.resolve)
	rg.GET("/download", h.download)
}

// RegisterAdmin attaches the cvLink save behind the auth middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.PUT("/cv-link", h.saveLink)
}
