package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/Domenick1991/fastflight/internal/ai"
	"github.com/Domenick1991/fastflight/internal/domain"
	"github.com/redis/go-redis/v9"
)

// SearchCache stores AI search results keyed by a hash of the criteria, so
// repeating a search does not burn another provider call.
type SearchCache interface {
	Get(ctx context.Context, criteria ai.SearchCriteria) ([]domain.Flight, bool)
	Set(ctx context.Context, criteria ai.SearchCriteria, flights []domain.Flight) error
	Close() error
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, criteria ai.SearchCriteria) ([]domain.Flight, bool) {
	data, err := c.client.Get(ctx, searchKey(criteria)).Bytes()
	if err != nil {
		return nil, false
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, false
	}
	return flights, true
}

func (c *RedisCache) Set(ctx context.Context, criteria ai.SearchCriteria, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(criteria), payload, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func searchKey(criteria ai.SearchCriteria) string {
	data, _ := json.Marshal(criteria)
	hash := sha256.Sum256(data)
	return "search:" + hex.EncodeToString(hash[:])
}

// NoOpCache disables caching; every search goes to the provider.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (NoOpCache) Get(ctx context.Context, criteria ai.SearchCriteria) ([]domain.Flight, bool) {
	return nil, false
}

func (NoOpCache) Set(ctx context.Context, criteria ai.SearchCriteria, flights []domain.Flight) error {
	return nil
}

func (NoOpCache) Close() error {
	return nil
}

var (
	_ SearchCache = (*RedisCache)(nil)
	_ SearchCache = (*NoOpCache)(nil)
)
