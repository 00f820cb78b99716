package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLinkStore struct {
	link string
	err  error
}

func (f *fakeLinkStore) CVLink(ctx context.Context) (string, error) {
	return f.link, f.err
}

func (f *fakeLinkStore) SetCVLink(ctx context.Context, link string) error {
	f.link = link
	return f.err
}

func TestResolve_PrefersStoredLink(t *testing.T) {
	svc := NewCVService(&fakeLinkStore{link: "https://cdn.example.com/cv.pdf"}, "assets/resume.pdf")

	src, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.False(t, src.Bundled)
	assert.Equal(t, "https://cdn.example.com/cv.pdf", src.URL)
}

func TestResolve_EmptyLinkFallsBackToBundled(t *testing.T) {
	svc := NewCVService(&fakeLinkStore{}, "assets/resume.pdf")

	src, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, src.Bundled)
	assert.Empty(t, src.URL)
}

func TestResolve_StoreFailureFallsBackToBundled(t *testing.T) {
	svc := NewCVService(&fakeLinkStore{err: errors.New("store down")}, "assets/resume.pdf")

	src, err := svc.Resolve(context.Background())
	assert.Error(t, err)
	assert.True(t, src.Bundled)
}

func TestSave_Overwrites(t *testing.T) {
	store := &fakeLinkStore{link: "https://old.example.com/cv.pdf"}
	svc := NewCVService(store, "assets/resume.pdf")

	require.NoError(t, svc.Save(context.Background(), "https://new.example.com/cv.pdf"))
	assert.Equal(t, "https://new.example.com/cv.pdf", store.link)
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-fake"))
	}))
	defer srv.Close()

	svc := NewCVService(&fakeLinkStore{}, "assets/resume.pdf")
	resp, err := svc.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(body))
}

func TestFetch_ErrorStatusIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	svc := NewCVService(&fakeLinkStore{}, "assets/resume.pdf")
	_, err := svc.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}
