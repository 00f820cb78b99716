package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read-only project routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/languages", h.languages)
	rg.GET("/stream", h.StreamProjects)
	rg.GET("/:id", h.get)
}

// RegisterAdmin attaches the mutating routes. The caller is expected to have
// wrapped rg in the auth middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
