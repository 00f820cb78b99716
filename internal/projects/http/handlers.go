package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msdharani1/portfolio-api/internal/auth"
	"github.com/msdharani1/portfolio-api/internal/projects/domain"
	"github.com/msdharani1/portfolio-api/internal/projects/service"
)

func (h *Handler) list(c *gin.Context) {
	order := service.Order(c.DefaultQuery("order", string(service.NewestFirst)))
	if order != service.NewestFirst && order != service.OldestFirst {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "order must be new or old"})
		return
	}

	items, err := h.svc.List(c.Request.Context(), c.Query("q"), order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// languages exposes the fixed technology tag set the project form renders.
func (h *Handler) languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "languages": domain.LanguageTags})
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.record())
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsValidationError(err) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}

	log.Printf("[info] operation=create_project id=%s uid=%s", p.ID, auth.UserFirebaseUID(c))
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.record())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		case domain.IsValidationError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// delete requires the caller to confirm explicitly. Without confirm=true
// nothing is read or written; the store and the visible list are untouched.
func (h *Handler) delete(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "deletion requires confirm=true"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	log.Printf("[info] operation=delete_project id=%s uid=%s", c.Param("id"), auth.UserFirebaseUID(c))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
