package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Deduper struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDeduper(rdb *redis.Client, ttl time.Duration) *Deduper {
	return &Deduper{rdb: rdb, ttl: ttl}
}

// AcquireOnce tries to acquire a dedup lock for a given handler + record ID.
// Returns true if this is the FIRST time processing, false on a redelivery.
// If redis is unavailable the event is processed anyway rather than dropped.
func (d *Deduper) AcquireOnce(ctx context.Context, handler string, recordID int) bool {
	key := fmt.Sprintf("dedup:%s:%d", handler, recordID)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		return true
	}
	return ok
}
