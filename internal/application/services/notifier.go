package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/infrastructure/mq"
)

// notifier bundles the post-mutation side effects shared by every content
// service: publish the event, count it, invalidate the kind's cached lists.
type notifier struct {
	mq       ports.RabbitMQ
	mCounter *prometheus.CounterVec
	cache    ports.ListCache
}

func (n notifier) notify(ctx context.Context, kind, action, resourceID string, payload any) {
	n.mq.GetInputChan() <- mq.Event{
		Id:         uuid.New(),
		TS:         time.Now(),
		Action:     action,
		Kind:       kind,
		ResourceID: resourceID,
		Payload:    payload,
	}

	n.mCounter.WithLabelValues(kind + "_" + action + "_total").Inc()
	n.cache.Bump(ctx, kind)
}
