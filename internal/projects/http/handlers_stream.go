package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/msdharani1/portfolio-api/internal/projects/service"
)

// StreamProjects delivers the project push feed over Server-Sent Events.
// Every event carries the full snapshot; clients replace their list
// wholesale on each one, matching the store's delivery model.
func (h *Handler) StreamProjects(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "streaming unsupported"})
		return
	}

	ctx := c.Request.Context()

	// Subscription lives exactly as long as this request; unsubscribe is
	// the teardown.
	updates, unsubscribe := h.cache.Subscribe(ctx)
	defer unsubscribe()

	// Send the current snapshot first so new clients never start empty.
	initial, err := h.svc.List(ctx, "", service.NewestFirst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load projects"})
		return
	}
	initialData, _ := json.Marshal(gin.H{"projects": initial})
	fmt.Fprintf(c.Writer, "event: snapshot\ndata: %s\n\n", initialData)
	flusher.Flush()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case snapshot, open := <-updates:
			if !open {
				return
			}
			data, err := json.Marshal(gin.H{"projects": snapshot})
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: snapshot\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
