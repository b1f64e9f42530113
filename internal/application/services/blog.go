package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"content-manager-api/internal/application/attachments"
	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/blog"
	"content-manager-api/internal/infrastructure/mq"
)

const kindBlog = "blog"

type BlogService struct {
	repo domain.Repository
	atts *attachments.Manager
	notifier
}

func NewBlogService(
	repo domain.Repository,
	atts *attachments.Manager,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	cache ports.ListCache,
) ports.BlogService {
	return &BlogService{
		repo:     repo,
		atts:     atts,
		notifier: notifier{mq: rabbit, mCounter: mCounter, cache: cache},
	}
}

func (s *BlogService) Find(ctx context.Context, page, limit int) (domain.Blogs, int, error) {
	return s.repo.Fetch(ctx, page, limit)
}

func (s *BlogService) FindByID(ctx context.Context, uuid domain.UUID) (*domain.Blog, error) {
	return s.repo.FetchByID(ctx, uuid)
}

func (s *BlogService) Create(ctx context.Context, b domain.Blog, files ports.UploadPayload) (*domain.Blog, error) {
	resolved, err := s.atts.Resolve(ctx, files, domain.SlotPolicy())
	if err != nil {
		return nil, err
	}
	b.Attachments = attachments.Merge(nil, resolved)

	ret, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, kindBlog, mq.ActionCreated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *BlogService) Update(ctx context.Context, uuid domain.UUID, upd domain.Update, files ports.UploadPayload) (*domain.Blog, error) {
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
	s.notify(ctx, kindBlog, mq.ActionUpdated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *BlogService) Delete(ctx context.Context, uuid domain.UUID) (bool, error) {
	ret, err := s.repo.Delete(ctx, uuid)
	if err != nil {
		return false, err
	}
	if ret == nil {
		return false, nil
	}

	s.atts.ReclaimAll(ctx, ret.Attachments)
	s.notify(ctx, kindBlog, mq.ActionDeleted, ret.UUID.String(), ret)

	return true, nil
}
