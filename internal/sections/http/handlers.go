package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/msdharani1/portfolio-api/internal/sections"
)

// Handler serves the canonical section partition to the SPA so that the
// scroll→path and path→scroll directions share one source of truth.
type Handler struct{}

func New() *Handler {
	return &Handler{}
}

type sectionEntry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Index int    `json:"index"`
}

func (h *Handler) catalog(c *gin.Context) {
	out := make([]sectionEntry, 0, 4)
	for _, s := range sections.All() {
		out = append(out, sectionEntry{Name: s.String(), Path: s.Path(), Index: int(s)})
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "sections": out})
}

// locate maps a scroll offset to the current section and its canonical path.
func (h *Handler) locate(c *gin.Context) {
	offset, err := strconv.ParseFloat(c.DefaultQuery("offset", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid offset"})
		return
	}
	viewport, err := strconv.ParseFloat(c.DefaultQuery("viewport", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid viewport"})
		return
	}

	s := sections.ForOffset(offset, viewport)
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"section": s.String(),
		"path":    s.Path(),
		"index":   int(s),
	})
}

// target maps a route to the scroll offset it should land on.
func (h *Handler) target(c *gin.Context) {
	viewport, err := strconv.ParseFloat(c.DefaultQuery("viewport", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid viewport"})
		return
	}
	path := c.DefaultQuery("path", "/")

	s := sections.ForPath(path)
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"section": s.String(),
		"path":    s.Path(),
		"offset":  sections.TargetOffset(path, viewport),
	})
}
