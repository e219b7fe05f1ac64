package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
	"github.com/rl1809/kiosk-checkout/internal/port"
)

const (
	itemKeyPrefix   = "item:"
	itemSnapshotTTL = 5 * time.Minute
)

// CachedCatalog is a read-through cache in front of another catalog. A cache
// outage degrades to the source; it never fails an order on its own.
type CachedCatalog struct {
	client *redis.Client
	source port.Catalog
}

func NewCachedCatalog(client *redis.Client, source port.Catalog) *CachedCatalog {
	return &CachedCatalog{client: client, source: source}
}

func (c *CachedCatalog) FindItem(ctx context.Context, itemID int64) (*domain.ItemSnapshot, error) {
	key := itemKey(itemID)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var snap domain.ItemSnapshot
		if jsonErr := json.Unmarshal(raw, &snap); jsonErr == nil {
			return &snap, nil
		}
		// Corrupt entry: drop it and fall through to the source.
		c.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "catalog cache read failed", "item_id", itemID, "error", err)
	}

	snap, err := c.source.FindItem(ctx, itemID)
	if err != nil || snap == nil {
		return snap, err
	}

	if buf, err := json.Marshal(snap); err == nil {
		if err := c.client.Set(ctx, key, buf, itemSnapshotTTL).Err(); err != nil {
			slog.WarnContext(ctx, "catalog cache write failed", "item_id", itemID, "error", err)
		}
	}
	return snap, nil
}

// Invalidate drops a cached snapshot, e.g. after an admin price change.
func (c *CachedCatalog) Invalidate(ctx context.Context, itemID int64) error {
	return c.client.Del(ctx, itemKey(itemID)).Err()
}

func itemKey(itemID int64) string {
	return fmt.Sprintf("%s%d", itemKeyPrefix, itemID)
}
