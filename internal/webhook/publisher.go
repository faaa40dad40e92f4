package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/outage_reporting_system/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

// OutageEvent - событие о новом отчете об отключении
type OutageEvent struct {
	OutageID   string           `json:"outage_id"`
	Type       string           `json:"type"`
	Severity   string           `json:"severity,omitempty"`
	Location   *models.GeoPoint `json:"location,omitempty"`
	Address    string           `json:"address,omitempty"`
	ReportedAt time.Time        `json:"reported_at"`
}

// NewOutageEvent собирает событие из сохраненного отчета
func NewOutageEvent(report *models.OutageReport) OutageEvent {
	return OutageEvent{
		OutageID:   report.ID,
		Type:       report.Type,
		Severity:   report.Severity,
		Location:   report.Location,
		Address:    report.Address,
		ReportedAt: report.ReportedAt,
	}
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event OutageEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event OutageEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
