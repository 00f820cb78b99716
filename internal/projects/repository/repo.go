package repository

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"github.com/msdharani1/portfolio-api/internal/projects/domain"
)

const projectsPath = "projects"

// ProjectRepository persists projects in the Firebase Realtime Database
// under projects/<push-key>. The store is the sole source of truth; reads
// return full snapshots, never diffs.
type ProjectRepository struct {
	db *db.Client
}

func NewProjectRepository(client *db.Client) *ProjectRepository {
	return &ProjectRepository{db: client}
}

func (r *ProjectRepository) ref() *db.Ref {
	return r.db.NewRef(projectsPath)
}

// List returns every project ordered by creation time ascending. The store
// key becomes the record's ID.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	nodes, err := r.ref().OrderByChild("timestamp").GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]domain.Project, 0, len(nodes))
	for _, node := range nodes {
		var rec domain.Record
		if err := node.Unmarshal(&rec); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", node.Key(), err)
		}
		out = append(out, projectFromRecord(node.Key(), rec))
	}
	return out, nil
}

// Get returns one project by store key.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	var raw map[string]interface{}
	if err := r.ref().Child(id).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	if raw == nil {
		return nil, domain.ErrNotFound
	}

	var rec domain.Record
	if err := r.ref().Child(id).Get(ctx, &rec); err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	p := projectFromRecord(id, rec)
	return &p, nil
}

// Create pushes a new record and returns it with the store-assigned key.
// The whole operation fails if the store write fails; nothing partial is
// ever written.
func (r *ProjectRepository) Create(ctx context.Context, rec domain.Record) (*domain.Project, error) {
	ref, err := r.ref().Push(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	p := projectFromRecord(ref.Key, rec)
	return &p, nil
}

// Update merge-writes every mutable field at id. The store preserves fields
// omitted from the payload, so the caller must supply every field it wants
// kept, including unchanged ones.
func (r *ProjectRepository) Update(ctx context.Context, id string, rec domain.Record) error {
	payload := map[string]interface{}{
		"title":       rec.Title,
		"description": rec.Description,
		"images":      rec.Images,
		"languages":   rec.Languages,
		"demoLink":    rec.DemoLink,
		"timestamp":   rec.Timestamp,
	}
	if err := r.ref().Child(id).Update(ctx, payload); err != nil {
		return fmt.Errorf("update project %s: %w", id, err)
	}
	return nil
}

// Delete removes the record at id. Irreversible; no soft delete.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if err := r.ref().Child(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}

func projectFromRecord(id string, rec domain.Record) domain.Project {
	return domain.Project{
		ID:          id,
		Title:       rec.Title,
		Description: rec.Description,
		Images:      rec.Images,
		Languages:   rec.Languages,
		DemoLink:    rec.DemoLink,
		Timestamp:   rec.Timestamp,
	}
}
