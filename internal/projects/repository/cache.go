package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/msdharani1/portfolio-api/internal/projects/domain"
)

const (
	snapshotKey     = "portfolio:projects:snapshot" // latest full snapshot, JSON array
	snapshotChannel = "portfolio:projects:events"   // pub/sub channel carrying snapshots
	snapshotTTL     = 24 * time.Hour
)

// SnapshotCache fronts the store with the latest full project snapshot and
// fans snapshots out to stream subscribers through pub/sub. Every write
// replaces the snapshot wholesale; the cache never patches.
type SnapshotCache struct {
	client *redis.Client
}

func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	return &SnapshotCache{client: client}
}

// Replace stores the snapshot and publishes it to stream subscribers.
func (c *SnapshotCache) Replace(ctx context.Context, projects []domain.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, snapshotKey, data, snapshotTTL)
	pipe.Publish(ctx, snapshotChannel, data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Latest returns the cached snapshot, or (nil, false, nil) on a miss.
func (c *SnapshotCache) Latest(ctx context.Context) ([]domain.Project, bool, error) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get snapshot: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return projects, true, nil
}

// Invalidate drops the cached snapshot so the next read falls through to
// the store.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("invalidate snapshot: %w", err)
	}
	return nil
}

// Subscribe returns a channel of full snapshots and a teardown func. The
// subscription must be torn down when the consumer goes away; leaking it
// means callbacks against dead consumers.
func (c *SnapshotCache) Subscribe(ctx context.Context) (<-chan []domain.Project, func()) {
	sub := c.client.Subscribe(ctx, snapshotChannel)
	out := make(chan []domain.Project, 1)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var projects []domain.Project
			if err := json.Unmarshal([]byte(msg.Payload), &projects); err != nil {
				continue
			}
			select {
			case out <- projects:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }
}
