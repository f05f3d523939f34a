package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safeguard_backend/internal/models"
)

// RouteCache кеширует маршруты в Redis. Маршруты не меняются после
// создания, поэтому инвалидация не нужна.
type RouteCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRouteCache(redisClient *redis.Client, ttl time.Duration) *RouteCache {
	return &RouteCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func routeCacheKey(id string) string {
	return fmt.Sprintf("route:%s", id)
}

// GetRoute пытается получить маршрут из Redis, промах - (nil, nil)
func (c *RouteCache) GetRoute(ctx context.Context, id string) (*models.RouteData, error) {
	val, err := c.redisClient.Get(ctx, routeCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get route from cache: %w", err)
	}

	route := &models.RouteData{}
	if err := json.Unmarshal(val, route); err != nil {
		return nil, fmt.Errorf("failed to unmarshal route from cache: %w", err)
	}
	return route, nil
}

// SetRoute сохраняет маршрут в Redis
func (c *RouteCache) SetRoute(ctx context.Context, route *models.RouteData) error {
	val, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to marshal route for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, routeCacheKey(route.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set route in cache: %w", err)
	}
	return nil
}
