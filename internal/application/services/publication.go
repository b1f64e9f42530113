package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"content-manager-api/internal/application/attachments"
	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/publication"
	"content-manager-api/internal/infrastructure/mq"
)

const kindPublication = "publication"

type PublicationService struct {
	repo domain.Repository
	atts *attachments.Manager
	notifier
}

func NewPublicationService(
	repo domain.Repository,
	atts *attachments.Manager,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	cache ports.ListCache,
) ports.PublicationService {
	return &PublicationService{
		repo:     repo,
		atts:     atts,
		notifier: notifier{mq: rabbit, mCounter: mCounter, cache: cache},
	}
}

func (s *PublicationService) Find(ctx context.Context, f domain.Filter, page, limit int) (domain.Publications, int, error) {
	return s.repo.Fetch(ctx, f, page, limit)
}

func (s *PublicationService) FindByID(ctx context.Context, uuid domain.UUID) (*domain.Publication, error) {
	return s.repo.FetchByID(ctx, uuid)
}

func (s *PublicationService) Create(ctx context.Context, p domain.Publication, files ports.UploadPayload) (*domain.Publication, error) {
	resolved, err := s.atts.Resolve(ctx, files, domain.SlotPolicy())
	if err != nil {
		return nil, err
	}
	p.Attachments = attachments.Merge(nil, resolved)

	ret, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, kindPublication, mq.ActionCreated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *PublicationService) Update(ctx context.Context, uuid domain.UUID, upd domain.Update, files ports.UploadPayload) (*domain.Publication, error) {
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
	s.notify(ctx, kindPublication, mq.ActionUpdated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *PublicationService) Delete(ctx context.Context, uuid domain.UUID) (bool, error) {
	ret, err := s.repo.Delete(ctx, uuid)
	if err != nil {
		return false, err
	}
	if ret == nil {
		return false, nil
	}

	s.atts.ReclaimAll(ctx, ret.Attachments)
	s.notify(ctx, kindPublication, mq.ActionDeleted, ret.UUID.String(), ret)

	return true, nil
}
