package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msdharani1/portfolio-api/internal/projects/domain"
	"github.com/msdharani1/portfolio-api/internal/projects/service"
)

type memStore struct {
	seq     int
	records map[string]domain.Record
}

func (m *memStore) List(ctx context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(m.records))
	for id, rec := range m.records {
		out = append(out, domain.Project{ID: id, Title: rec.Title, Description: rec.Description,
			Images: rec.Images, Languages: rec.Languages, DemoLink: rec.DemoLink, Timestamp: rec.Timestamp})
	}
	return out, nil
}

func (m *memStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Project{ID: id, Title: rec.Title, Description: rec.Description,
		Images: rec.Images, Languages: rec.Languages, DemoLink: rec.DemoLink, Timestamp: rec.Timestamp}, nil
}

func (m *memStore) Create(ctx context.Context, rec domain.Record) (*domain.Project, error) {
	m.seq++
	id := fmt.Sprintf("-push%03d", m.seq)
	m.records[id] = rec
	return m.Get(ctx, id)
}

func (m *memStore) Update(ctx context.Context, id string, rec domain.Record) error {
	m.records[id] = rec
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	delete(m.records, id)
	return nil
}

func newTestRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewProjectService(store, nil)
	h := New(svc, nil)

	r := gin.New()
	h.RegisterPublic(r.Group("/api/v1/projects"))
	h.RegisterAdmin(r.Group("/api/v1/admin/projects"))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCreate_ValidationStatus(t *testing.T) {
	store := &memStore{records: map[string]domain.Record{}}
	r := newTestRouter(store)

	w := do(r, http.MethodPost, "/api/v1/admin/projects", `{"title":"","description":"B"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, store.records)

	w = do(r, http.MethodPost, "/api/v1/admin/projects", `{"title":"A","description":"B","images":["x"]}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, store.records, 1)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	store := &memStore{records: map[string]domain.Record{
		"p1": {Title: "A", Description: "B", Timestamp: 100},
	}}
	r := newTestRouter(store)

	// Unconfirmed: nothing changes.
	w := do(r, http.MethodDelete, "/api/v1/admin/projects/p1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, store.records, 1)

	w = do(r, http.MethodDelete, "/api/v1/admin/projects/p1?confirm=false", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, store.records, 1)

	// Confirmed: removed.
	w = do(r, http.MethodDelete, "/api/v1/admin/projects/p1?confirm=true", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.records)
}

func TestList_FilterAndOrderParams(t *testing.T) {
	store := &memStore{records: map[string]domain.Record{
		"p1": {Title: "Portfolio Site", Description: "d", Timestamp: 100},
		"p2": {Title: "Chat App", Description: "d", Timestamp: 200},
	}}
	r := newTestRouter(store)

	w := do(r, http.MethodGet, "/api/v1/projects?q=portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio Site")
	assert.NotContains(t, w.Body.String(), "Chat App")

	w = do(r, http.MethodGet, "/api/v1/projects?order=sideways", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet_NotFound(t *testing.T) {
	store := &memStore{records: map[string]domain.Record{}}
	r := newTestRouter(store)

	w := do(r, http.MethodGet, "/api/v1/projects/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdate_PreservesTimestamp(t *testing.T) {
	store := &memStore{records: map[string]domain.Record{
		"p1": {Title: "A", Description: "B", Timestamp: 4242},
	}}
	r := newTestRouter(store)

	w := do(r, http.MethodPut, "/api/v1/admin/projects/p1",
		`{"title":"A2","description":"B2","timestamp":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, int64(4242), store.records["p1"].Timestamp)
	assert.Equal(t, "A2", store.records["p1"].Title)
}
