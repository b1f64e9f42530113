package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/contact"
	"content-manager-api/internal/infrastructure/mq"
)

const kindContact = "contact"

type ContactService struct {
	repo   domain.Repository
	mailer ports.Mailer
	log    *zap.Logger
	to     string
	notifier
}

func NewContactService(
	repo domain.Repository,
	mailer ports.Mailer,
	logger *zap.Logger,
	recipient string,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	cache ports.ListCache,
) ports.ContactService {
	return &ContactService{
		repo:     repo,
		mailer:   mailer,
		log:      logger,
		to:       recipient,
		notifier: notifier{mq: rabbit, mCounter: mCounter, cache: cache},
	}
}

func (s *ContactService) Find(ctx context.Context, page, limit int) (domain.Messages, int, error) {
	return s.repo.Fetch(ctx, page, limit)
}

// Submit persists the message first, then forwards it by mail. A failed
// forward is logged, the submission itself already succeeded.
func (s *ContactService) Submit(ctx context.Context, m domain.Message) (*domain.Message, error) {
	ret, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	if s.to != "" {
		body := fmt.Sprintf(
			"Name: %s\nEmail: %s\nPhone: %s\n\n%s\n",
			ret.Name, ret.Email, ret.Phone, ret.Message,
		)
		if err = s.mailer.Send(ctx, s.to, "New contact form message", body); err != nil {
			s.log.Error("contact mail forward failed", zap.Error(err))
		}
	}

	s.notify(ctx, kindContact, mq.ActionCreated, ret.UUID.String(), ret)

	return ret, nil
}
