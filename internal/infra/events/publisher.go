// Package events публикация событий переходов статусов бронирований
//
// События уходят во внешний сервис уведомлений fire-and-forget: доставка
// уведомлений вне зоны ответственности движка, поэтому ошибка публикации
// логируется, но никогда не откатывает сам переход
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

// TransitionEvent событие перехода статуса бронирования
type TransitionEvent struct {
	BookingID  int64                `json:"bookingId"`
	TenantID   int64                `json:"tenantId"`
	OldStatus  domain.BookingStatus `json:"oldStatus,omitempty"`
	NewStatus  domain.BookingStatus `json:"newStatus"`
	OccurredAt time.Time            `json:"occurredAt"`
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события переходов в Kafka
type Publisher struct {
	writer *kafka.Writer
	logger Logger
}

// NewPublisher создает публикатор событий
func NewPublisher(brokers []string, topic string, logger Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
		logger: logger,
	}
}

// PublishTransition публикует событие перехода статуса
// Ключ сообщения - tenant_id, чтобы события одного арендатора шли в одну партицию
func (p *Publisher) PublishTransition(ctx context.Context, event TransitionEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("events: failed to marshal transition event booking_id=%d: %v", event.BookingID, err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.TenantID, 10)),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		// Переход уже зафиксирован в БД, событие теряем осознанно
		p.logger.Warn("events: failed to publish transition booking_id=%d %s->%s: %v",
			event.BookingID, event.OldStatus, event.NewStatus, err)
	}
}

// Close закрывает Kafka writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher заглушка на случай отключенной публикации событий
type NopPublisher struct{}

// PublishTransition ничего не делает
func (NopPublisher) PublishTransition(ctx context.Context, event TransitionEvent) {}
