package service

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// LinkStore is the settings persistence surface.
type LinkStore interface {
	CVLink(ctx context.Context) (string, error)
	SetCVLink(ctx context.Context, link string) error
}

// Source describes where the CV currently comes from.
type Source struct {
	URL string `json:"url,omitempty"`
	// Bundled is true when no link is configured and the bundled default
	// asset serves instead.
	Bundled bool `json:"bundled"`
}

// CVService resolves the effective CV source: the stored link when
// non-empty, else the bundled default.
type CVService struct {
	store       LinkStore
	defaultPath string
	client      *http.Client
}

func NewCVService(store LinkStore, defaultPath string) *CVService {
	return &CVService{
		store:       store,
		defaultPath: defaultPath,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// DefaultPath is the bundled asset served when no link is configured.
func (s *CVService) DefaultPath() string {
	return s.defaultPath
}

// Resolve prefers the stored link; a store read failure falls back to the
// bundled default rather than failing the download.
func (s *CVService) Resolve(ctx context.Context) (Source, error) {
	link, err := s.store.CVLink(ctx)
	if err != nil {
		return Source{Bundled: true}, err
	}
	if link == "" {
		return Source{Bundled: true}, nil
	}
	return Source{URL: link}, nil
}

// Save overwrites the stored link.
func (s *CVService) Save(ctx context.Context, link string) error {
	return s.store.SetCVLink(ctx, link)
}

// Fetch attempts direct byte retrieval of a remote CV. Callers substitute a
// redirect on any failure here: the usual cause is a policy refusal, which
// will not succeed on retry.
func (s *CVService) Fetch(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create cv request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cv fetch failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("cv fetch returned status %d", resp.StatusCode)
	}
	return resp, nil
}

// Probe checks that the configured link still answers. Used by the nightly
// job; never mutates anything.
func (s *CVService) Probe(ctx context.Context) error {
	src, err := s.Resolve(ctx)
	if err != nil {
		return err
	}
	if src.Bundled {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, src.URL, nil)
	if err != nil {
		return fmt.Errorf("create probe request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("cv probe failed: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("cv probe returned status %d", resp.StatusCode)
	}
	return nil
}
