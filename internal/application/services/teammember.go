package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"content-manager-api/internal/application/attachments"
	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/teammember"
	"content-manager-api/internal/infrastructure/mq"
)

const kindTeamMember = "teammember"

type TeamMemberService struct {
	repo domain.Repository
	atts *attachments.Manager
	notifier
}

func NewTeamMemberService(
	repo domain.Repository,
	atts *attachments.Manager,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	cache ports.ListCache,
) ports.TeamMemberService {
	return &TeamMemberService{
		repo:     repo,
		atts:     atts,
		notifier: notifier{mq: rabbit, mCounter: mCounter, cache: cache},
	}
}

func (s *TeamMemberService) Find(ctx context.Context, f domain.Filter, page, limit int) (domain.TeamMembers, int, error) {
	return s.repo.Fetch(ctx, f, page, limit)
}

func (s *TeamMemberService) FindByID(ctx context.Context, uuid domain.UUID) (*domain.TeamMember, error) {
	return s.repo.FetchByID(ctx, uuid)
}

func (s *TeamMemberService) Create(ctx context.Context, m domain.TeamMember, files ports.UploadPayload) (*domain.TeamMember, error) {
	resolved, err := s.atts.Resolve(ctx, files, domain.SlotPolicy())
	if err != nil {
		return nil, err
	}
	m.Attachments = attachments.Merge(nil, resolved)

	ret, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, kindTeamMember, mq.ActionCreated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *TeamMemberService) Update(ctx context.Context, uuid domain.UUID, upd domain.Update, files ports.UploadPayload) (*domain.TeamMember, error) {
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
	s.notify(ctx, kindTeamMember, mq.ActionUpdated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *TeamMemberService) Delete(ctx context.Context, uuid domain.UUID) (bool, error) {
	ret, err := s.repo.Delete(ctx, uuid)
	if err != nil {
		return false, err
	}
	if ret == nil {
		return false, nil
	}

	s.atts.ReclaimAll(ctx, ret.Attachments)
	s.notify(ctx, kindTeamMember, mq.ActionDeleted, ret.UUID.String(), ret)

	return true, nil
}
