package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/outage_reporting_system/internal/models"
	"github.com/shenikar/outage_reporting_system/internal/service"
)

// OutageCache кеширует отдельные отчеты в Redis
type OutageCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewOutageCache(redisClient *redis.Client, ttl time.Duration) service.OutageCache {
	return &OutageCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func outageCacheKey(id string) string {
	return fmt.Sprintf("outage:%s", id)
}

// Get пытается получить отчет из Redis, nil, nil при промахе
func (c *OutageCache) Get(ctx context.Context, id string) (*models.OutageReport, error) {
	val, err := c.redisClient.Get(ctx, outageCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get outage from cache: %w", err)
	}

	report := &models.OutageReport{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outage from cache: %w", err)
	}
	return report, nil
}

// Set сохраняет отчет в Redis
func (c *OutageCache) Set(ctx context.Context, report *models.OutageReport) error {
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal outage for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, outageCacheKey(report.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set outage in cache: %w", err)
	}
	return nil
}

// Invalidate удаляет отчет из кеша
func (c *OutageCache) Invalidate(ctx context.Context, id string) error {
	if err := c.redisClient.Del(ctx, outageCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate outage cache: %w", err)
	}
	return nil
}
