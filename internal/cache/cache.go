// Package cache memoizes curated listings in Redis. A listing is fully
// determined by (contextType, contextKey, product set version); the
// version is part of the key, so stale entries are never served and
// simply expire.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/placidasia/catalog-backend/internal/product"
)

const defaultTTL = 10 * time.Minute

type Listings struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis when a URL is configured. An empty URL returns a nil
// *Listings, which is a valid no-op cache: every method is nil-safe.
func New(redisURL string) (*Listings, error) {
	if redisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Listings{client: redis.NewClient(opts), ttl: defaultTTL}, nil
}

func key(contextType, contextKey string, version int64) string {
	return fmt.Sprintf("listing:%s:%s:v%d", contextType, contextKey, version)
}

func (l *Listings) Get(ctx context.Context, contextType, contextKey string, version int64) ([]product.Product, bool) {
	if l == nil {
		return nil, false
	}
	raw, err := l.client.Get(ctx, key(contextType, contextKey, version)).Bytes()
	if err != nil {
		return nil, false
	}
	var products []product.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (l *Listings) Set(ctx context.Context, contextType, contextKey string, version int64, products []product.Product) {
	if l == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := l.client.Set(ctx, key(contextType, contextKey, version), raw, l.ttl).Err(); err != nil {
		log.Printf("listing cache set failed: %v", err)
	}
}
