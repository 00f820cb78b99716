package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/msdharani1/portfolio-api/internal/projects/domain"
)

// Order controls list ordering by creation time.
type Order string

const (
	NewestFirst Order = "new"
	OldestFirst Order = "old"
)

// Store is the persistence surface the service needs. Satisfied by the
// Realtime Database repository in production and by an in-memory store in
// tests.
type Store interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, rec domain.Record) (*domain.Project, error)
	Update(ctx context.Context, id string, rec domain.Record) error
	Delete(ctx context.Context, id string) error
}

// Cache is the snapshot cache surface. Nil-able: a service without a cache
// reads straight from the store.
type Cache interface {
	Replace(ctx context.Context, projects []domain.Project) error
	Latest(ctx context.Context) ([]domain.Project, bool, error)
}

// ProjectService maintains the live project view and issues mutations.
// Mutations are eventually consistent: the visible list catches up when the
// watcher delivers the next snapshot, never synchronously.
type ProjectService struct {
	store Store
	cache Cache
}

func NewProjectService(store Store, cache Cache) *ProjectService {
	return &ProjectService{store: store, cache: cache}
}

// List returns the visible project list: case-insensitive substring filter
// against the title, then ordering by timestamp. Non-matching projects stay
// in the store and the underlying snapshot untouched.
func (s *ProjectService) List(ctx context.Context, search string, order Order) ([]domain.Project, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Arrange(all, search, order), nil
}

// Arrange applies the filter and ordering to a snapshot. Filter runs before
// order; applying the same arguments twice yields the same list.
func Arrange(all []domain.Project, search string, order Order) []domain.Project {
	needle := strings.ToLower(search)

	out := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if needle == "" || strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == OldestFirst {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// Get returns one project straight from the store.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.store.Get(ctx, id)
}

// Create validates and persists a new project. The timestamp is assigned
// here, exactly once; the store assigns the id.
func (s *ProjectService) Create(ctx context.Context, rec domain.Record) (*domain.Project, error) {
	if err := validate(&rec); err != nil {
		return nil, err
	}
	rec.Timestamp = domain.NowMillis()

	p, err := s.store.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return p, nil
}

// Update overwrites all mutable fields of the record at id. The original
// timestamp is preserved regardless of what the caller sent: the store's
// merge semantics would happily overwrite it otherwise.
func (s *ProjectService) Update(ctx context.Context, id string, rec domain.Record) (*domain.Project, error) {
	if err := validate(&rec); err != nil {
		return nil, err
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Timestamp = existing.Timestamp

	if err := s.store.Update(ctx, id, rec); err != nil {
		return nil, err
	}
	s.refresh(ctx)

	return &domain.Project{
		ID:          id,
		Title:       rec.Title,
		Description: rec.Description,
		Images:      rec.Images,
		Languages:   rec.Languages,
		DemoLink:    rec.DemoLink,
		Timestamp:   rec.Timestamp,
	}, nil
}

// Delete removes the record at id. Confirmation is enforced at the HTTP
// boundary; by the time this runs the deletion is committed to.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

// Refresh re-reads the store and replaces the cached snapshot wholesale.
func (s *ProjectService) Refresh(ctx context.Context) ([]domain.Project, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh snapshot: %w", err)
	}
	if s.cache != nil {
		// A cache failure must not corrupt or hide the list; the store
		// already answered.
		if err := s.cache.Replace(ctx, all); err != nil {
			log.Printf("[warn] operation=refresh_snapshot error=%v", err)
		}
	}
	return all, nil
}

// validate enforces pre-persistence rules: required title and description,
// no blank image entries, languages merged over the fixed tag set.
func validate(rec *domain.Record) error {
	rec.Title = strings.TrimSpace(rec.Title)
	rec.Description = strings.TrimSpace(rec.Description)

	if rec.Title == "" {
		return domain.ErrTitleRequired
	}
	if rec.Description == "" {
		return domain.ErrDescriptionRequired
	}

	rec.Images = domain.FilterImages(rec.Images)
	rec.Languages = domain.MergeLanguages(rec.Languages)
	return nil
}

func (s *ProjectService) snapshot(ctx context.Context) ([]domain.Project, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.Latest(ctx); err == nil && ok {
			return cached, nil
		}
	}
	return s.Refresh(ctx)
}

// refresh is the post-mutation variant: a failure here only delays the next
// snapshot, it must not fail the mutation that already succeeded.
func (s *ProjectService) refresh(ctx context.Context) {
	_, _ = s.Refresh(ctx)
}
