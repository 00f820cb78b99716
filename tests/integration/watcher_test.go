package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msdharani1/portfolio-api/internal/projects/domain"
	"github.com/msdharani1/portfolio-api/internal/projects/repository"
	"github.com/msdharani1/portfolio-api/internal/projects/service"
)

// stubStore is a mutable in-memory stand-in for the remote document store.
type stubStore struct {
	mu       sync.Mutex
	projects []domain.Project
}

func (s *stubStore) set(projects []domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = projects
}

func (s *stubStore) List(ctx context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out, nil
}

func (s *stubStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubStore) Create(ctx context.Context, rec domain.Record) (*domain.Project, error) {
	return nil, nil
}

func (s *stubStore) Update(ctx context.Context, id string, rec domain.Record) error {
	return nil
}

func (s *stubStore) Delete(ctx context.Context, id string) error {
	return nil
}

func TestWatcher_PublishesOnChange(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := repository.NewSnapshotCache(client)

	store := &stubStore{}
	store.set([]domain.Project{{ID: "a", Title: "First", Timestamp: 100}})

	svc := service.NewProjectService(store, cache)
	watcher := service.NewWatcher(svc, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	// The watcher primes the cache on startup.
	require.Eventually(t, func() bool {
		got, ok, err := cache.Latest(ctx)
		return err == nil && ok && len(got) == 1
	}, 2*time.Second, 20*time.Millisecond)

	// A store change shows up as a wholesale snapshot replacement after
	// one poll round-trip, never synchronously.
	store.set([]domain.Project{
		{ID: "a", Title: "First", Timestamp: 100},
		{ID: "b", Title: "Second", Timestamp: 200},
	})

	require.Eventually(t, func() bool {
		got, ok, err := cache.Latest(ctx)
		return err == nil && ok && len(got) == 2
	}, 2*time.Second, 20*time.Millisecond)

	got, ok, err := cache.Latest(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", got[1].ID)
}

func TestWatcher_ListReflectsCachedSnapshot(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := repository.NewSnapshotCache(client)

	store := &stubStore{}
	store.set([]domain.Project{
		{ID: "a", Title: "Portfolio", Timestamp: 100},
		{ID: "b", Title: "Chat App", Timestamp: 200},
	})

	svc := service.NewProjectService(store, cache)

	// First List falls through to the store and warms the cache.
	items, err := svc.List(context.Background(), "portfolio", service.NewestFirst)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)

	_, ok, err := cache.Latest(context.Background())
	require.NoError(t, err)
	assert.True(t, ok, "List should have warmed the cache")
}
