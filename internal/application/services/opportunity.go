package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"content-manager-api/internal/application/attachments"
	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/opportunity"
	"content-manager-api/internal/infrastructure/mq"
)

const kindOpportunity = "opportunity"

type OpportunityService struct {
	repo domain.Repository
	atts *attachments.Manager
	notifier
}

func NewOpportunityService(
	repo domain.Repository,
	atts *attachments.Manager,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	cache ports.ListCache,
) ports.OpportunityService {
	return &OpportunityService{
		repo:     repo,
		atts:     atts,
		notifier: notifier{mq: rabbit, mCounter: mCounter, cache: cache},
	}
}

func (s *OpportunityService) Find(ctx context.Context, page, limit int) (domain.Opportunities, int, error) {
	return s.repo.Fetch(ctx, page, limit)
}

func (s *OpportunityService) FindByID(ctx context.Context, uuid domain.UUID) (*domain.Opportunity, error) {
	return s.repo.FetchByID(ctx, uuid)
}

func (s *OpportunityService) Create(ctx context.Context, o domain.Opportunity, files ports.UploadPayload) (*domain.Opportunity, error) {
	resolved, err := s.atts.Resolve(ctx, files, domain.SlotPolicy())
	if err != nil {
		return nil, err
	}
	o.Attachments = attachments.Merge(nil, resolved)

	ret, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, kindOpportunity, mq.ActionCreated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *OpportunityService) Update(ctx context.Context, uuid domain.UUID, upd domain.Update, files ports.UploadPayload) (*domain.Opportunity, error) {
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
	s.notify(ctx, kindOpportunity, mq.ActionUpdated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *OpportunityService) Delete(ctx context.Context, uuid domain.UUID) (bool, error) {
	ret, err := s.repo.Delete(ctx, uuid)
	if err != nil {
		return false, err
	}
	if ret == nil {
		return false, nil
	}

	s.atts.ReclaimAll(ctx, ret.Attachments)
	s.notify(ctx, kindOpportunity, mq.ActionDeleted, ret.UUID.String(), ret)

	return true, nil
}
