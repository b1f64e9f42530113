package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"content-manager-api/internal/application/attachments"
	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/announcement"
	"content-manager-api/internal/infrastructure/mq"
)

const kindAnnouncement = "announcement"

type AnnouncementService struct {
	repo domain.Repository
	atts *attachments.Manager
	notifier
}

func NewAnnouncementService(
	repo domain.Repository,
	atts *attachments.Manager,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	cache ports.ListCache,
) ports.AnnouncementService {
	return &AnnouncementService{
		repo:     repo,
		atts:     atts,
		notifier: notifier{mq: rabbit, mCounter: mCounter, cache: cache},
	}
}

func (s *AnnouncementService) Find(ctx context.Context, f domain.Filter, page, limit int) (domain.Announcements, int, error) {
	return s.repo.Fetch(ctx, f, page, limit)
}

func (s *AnnouncementService) FindByID(ctx context.Context, uuid domain.UUID) (*domain.Announcement, error) {
	return s.repo.FetchByID(ctx, uuid)
}

func (s *AnnouncementService) Create(ctx context.Context, a domain.Announcement, files ports.UploadPayload) (*domain.Announcement, error) {
	resolved, err := s.atts.Resolve(ctx, files, domain.SlotPolicy())
	if err != nil {
		return nil, err
	}
	a.Attachments = attachments.Merge(nil, resolved)

	ret, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, kindAnnouncement, mq.ActionCreated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *AnnouncementService) Update(ctx context.Context, uuid domain.UUID, upd domain.Update, files ports.UploadPayload) (*domain.Announcement, error) {
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

	// row is committed, superseded remote objects can go
	s.atts.Reclaim(ctx, plan)
	s.notify(ctx, kindAnnouncement, mq.ActionUpdated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, uuid domain.UUID) (bool, error) {
	ret, err := s.repo.Delete(ctx, uuid)
	if err != nil {
		return false, err
	}
	if ret == nil {
		return false, nil
	}

	s.atts.ReclaimAll(ctx, ret.Attachments)
	s.notify(ctx, kindAnnouncement, mq.ActionDeleted, ret.UUID.String(), ret)

	return true, nil
}
