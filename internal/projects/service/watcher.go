package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"log"
	"time"
)

// Watcher turns the store into a push feed: it polls the collection and
// replaces the cached snapshot wholesale whenever the content changes, which
// also publishes the snapshot to stream subscribers. Consumers treat every
// emission as a total replacement, never a diff.
type Watcher struct {
	svc      *ProjectService
	interval time.Duration
}

func NewWatcher(svc *ProjectService, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Watcher{svc: svc, interval: interval}
}

// Run polls until ctx is cancelled. It belongs in its own goroutine for the
// lifetime of the process; cancelling ctx is the teardown.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var last [sha256.Size]byte

	// Prime the cache so the first subscriber sees a snapshot immediately.
	if all, err := w.svc.Refresh(ctx); err == nil {
		last = fingerprint(all)
	} else {
		log.Printf("[warn] operation=watch_projects error=%v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			all, err := w.svc.store.List(ctx)
			if err != nil {
				log.Printf("[warn] operation=watch_projects error=%v", err)
				continue
			}

			fp := fingerprint(all)
			if fp == last {
				continue
			}
			last = fp

			if w.svc.cache != nil {
				if err := w.svc.cache.Replace(ctx, all); err != nil {
					log.Printf("[warn] operation=watch_projects error=%v", err)
				}
			}
		}
	}
}

func fingerprint(v interface{}) [sha256.Size]byte {
	data, err := json.Marshal(v)
	if err != nil {
		return [sha256.Size]byte{}
	}
	return sha256.Sum256(data)
}
