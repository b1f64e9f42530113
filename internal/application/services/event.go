package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"content-manager-api/internal/application/attachments"
	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/event"
	"content-manager-api/internal/infrastructure/mq"
)

const kindEvent = "event"

type EventService struct {
	repo domain.Repository
	atts *attachments.Manager
	notifier
}

func NewEventService(
	repo domain.Repository,
	atts *attachments.Manager,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	cache ports.ListCache,
) ports.EventService {
	return &EventService{
		repo:     repo,
		atts:     atts,
		notifier: notifier{mq: rabbit, mCounter: mCounter, cache: cache},
	}
}

func (s *EventService) Find(ctx context.Context, f domain.Filter, page, limit int) (domain.Events, int, error) {
	return s.repo.Fetch(ctx, f, page, limit)
}

func (s *EventService) FindByID(ctx context.Context, uuid domain.UUID) (*domain.Event, error) {
	return s.repo.FetchByID(ctx, uuid)
}

func (s *EventService) Create(ctx context.Context, e domain.Event, files ports.UploadPayload) (*domain.Event, error) {
	resolved, err := s.atts.Resolve(ctx, files, domain.SlotPolicy())
	if err != nil {
		return nil, err
	}
	e.Attachments = attachments.Merge(nil, resolved)

	ret, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, kindEvent, mq.ActionCreated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *EventService) Update(ctx context.Context, uuid domain.UUID, upd domain.Update, files ports.UploadPayload) (*domain.Event, error) {
	existing, err := s.repo.FetchByID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	existing.Apply(upd)

	resolved, err := s.atts.Resolve(ctx, files, domain.SlotPolicy())
	if err != nil {
		return nil, err
	}
	plan := attachments.Plan(existing.Attachments, resolved)
	existing.Attachments = attachments.Merge(existing.Attachments, resolved)

	ret, err := s.repo.Update(ctx, *existing)
	if err != nil {
		return nil, err
	}

	s.atts.Reclaim(ctx, plan)
	s.notify(ctx, kindEvent, mq.ActionUpdated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *EventService) Delete(ctx context.Context, uuid domain.UUID) (bool, error) {
	ret, err := s.repo.Delete(ctx, uuid)
	if err != nil {
		return false, err
	}
	if ret == nil {
		return false, nil
	}

	s.atts.ReclaimAll(ctx, ret.Attachments)
	s.notify(ctx, kindEvent, mq.ActionDeleted, ret.UUID.String(), ret)

	return true, nil
}
