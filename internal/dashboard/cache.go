package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	summaryKey = "dashboard:summary"
	summaryTTL = 5 * time.Minute
)

var errCacheMiss = errors.New("dashboard: summary cache miss")

// Cache menyimpan ringkasan dashboard di Redis supaya query agregat tidak
// dijalankan pada setiap request. Invalidate dipanggil consumer Kafka saat
// status payroll run berubah.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) Get(ctx context.Context) (*SummaryResponse, error) {
	raw, err := c.rdb.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var summary SummaryResponse
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Cache) Set(ctx context.Context, summary *SummaryResponse) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, summaryKey, raw, summaryTTL).Err()
}

func (c *Cache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, summaryKey).Err()
}
