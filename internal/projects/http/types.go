package http

import (
	"github.com/msdharani1/portfolio-api/internal/projects/domain"
	"github.com/msdharani1/portfolio-api/internal/projects/repository"
	"github.com/msdharani1/portfolio-api/internal/projects/service"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc   *service.ProjectService
	cache *repository.SnapshotCache
}

func New(svc *service.ProjectService, cache *repository.SnapshotCache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

type projectReq struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Languages   map[string]bool `json:"languages"`
	DemoLink    string          `json:"demoLink"`
}

func (r projectReq) record() domain.Record {
	return domain.Record{
		Title:       r.Title,
		Description: r.Description,
		Images:      r.Images,
		Languages:   r.Languages,
		DemoLink:    r.DemoLink,
	}
}
