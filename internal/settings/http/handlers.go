package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msdharani1/portfolio-api/internal/settings/service"
)

// Handler exposes the CV endpoints: resolution, download, and the admin
// save.
type Handler struct {
	svc *service.CVService
}

func New(svc *service.CVService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) resolve(c *gin.Context) {
	src, err := h.svc.Resolve(c.Request.Context())
	if err != nil {
		log.Printf("[warn] operation=resolve_cv error=%v", err)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "cv": src})
}

// download is a two-stage strategy: attempt direct byte retrieval and proxy
// the result; on any fetch-level failure substitute a redirect to the URL
// instead of retrying, since the failure mode is not transient.
func (h *Handler) download(c *gin.Context) {
	src, err := h.svc.Resolve(c.Request.Context())
	if err != nil {
		log.Printf("[warn] operation=download_cv error=%v", err)
	}

	if src.Bundled {
		c.FileAttachment(h.svc.DefaultPath(), "resume.pdf")
		return
	}

	resp, err := h.svc.Fetch(c.Request.Context(), src.URL)
	if err != nil {
		log.Printf("[warn] operation=download_cv error=%v", err)
		c.Redirect(http.StatusFound, src.URL)
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, nil)
}

type saveLinkReq struct {
	CVLink string `json:"cvLink"`
}

func (h *Handler) saveLink(c *gin.Context) {
	var req saveLinkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.svc.Save(c.Request.Context(), req.CVLink); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "cvLink": req.CVLink})
}
