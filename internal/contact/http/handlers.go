package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msdharani1/portfolio-api/internal/contact/domain"
	"github.com/msdharani1/portfolio-api/internal/contact/repository"
	"github.com/msdharani1/portfolio-api/internal/contact/service"
)

// Handler accepts contact submissions, relays them, and archives them.
type Handler struct {
	relay   service.Relay
	archive *repository.ArchiveRepository
	limiter *service.IPLimiter
}

func New(relay service.Relay, archive *repository.ArchiveRepository, limiter *service.IPLimiter) *Handler {
	return &Handler{relay: relay, archive: archive, limiter: limiter}
}

func (h *Handler) submit(c *gin.Context) {
	var msg domain.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// Validation runs before any remote call; field errors never reach the
	// relay.
	if errs := msg.Validate(); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "errors": errs})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many submissions, try again later"})
		return
	}

	err := h.relay.Send(c.Request.Context(), msg)

	// Archive regardless of relay outcome; a failed delivery must not lose
	// the entered values.
	if h.archive != nil {
		if _, aerr := h.archive.Save(c.Request.Context(), msg, err == nil); aerr != nil {
			log.Printf("[warn] operation=archive_contact error=%v", aerr)
		}
	}

	if err != nil {
		log.Printf("[error] operation=send_contact error=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "Failed to send message. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Message sent successfully!"})
}

// recent lists archived submissions for the admin screen.
func (h *Handler) recent(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "messages": []repository.ArchivedMessage{}})
		return
	}

	items, err := h.archive.Recent(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "messages": items})
}
