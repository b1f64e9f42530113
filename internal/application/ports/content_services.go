package ports

import (
	"context"
	"mime/multipart"

	"content-manager-api/internal/domain/announcement"
	"content-manager-api/internal/domain/blog"
	"content-manager-api/internal/domain/event"
	"content-manager-api/internal/domain/opportunity"
	"content-manager-api/internal/domain/publication"
	"content-manager-api/internal/domain/teammember"
)

// UploadPayload is the parsed multipart file section of a request: slot name
// to uploaded files. Only the first file per slot is honored.
type UploadPayload = map[string][]*multipart.FileHeader

type AnnouncementService interface {
	Find(ctx context.Context, f announcement.Filter, page, limit int) (announcement.Announcements, int, error)
	FindByID(ctx context.Context, uuid announcement.UUID) (*announcement.Announcement, error)
	Create(ctx context.Context, a announcement.Announcement, files UploadPayload) (*announcement.Announcement, error)
	Update(ctx context.Context, uuid announcement.UUID, upd announcement.Update, files UploadPayload) (*announcement.Announcement, error)
	Delete(ctx context.Context, uuid announcement.UUID) (bool, error)
}

type BlogService interface {
	Find(ctx context.Context, page, limit int) (blog.Blogs, int, error)
	FindByID(ctx context.Context, uuid blog.UUID) (*blog.Blog, error)
	Create(ctx context.Context, b blog.Blog, files UploadPayload) (*blog.Blog, error)
	Update(ctx context.Context, uuid blog.UUID, upd blog.Update, files UploadPayload) (*blog.Blog, error)
	Delete(ctx context.Context, uuid blog.UUID) (bool, error)
}

type PublicationService interface {
	Find(ctx context.Context, f publication.Filter, page, limit int) (publication.Publications, int, error)
	FindByID(ctx context.Context, uuid publication.UUID) (*publication.Publication, error)
	Create(ctx context.Context, p publication.Publication, files UploadPayload) (*publication.Publication, error)
	Update(ctx context.Context, uuid publication.UUID, upd publication.Update, files UploadPayload) (*publication.Publication, error)
	Delete(ctx context.Context, uuid publication.UUID) (bool, error)
}

type TeamMemberService interface {
	Find(ctx context.Context, f teammember.Filter, page, limit int) (teammember.TeamMembers, int, error)
	FindByID(ctx context.Context, uuid teammember.UUID) (*teammember.TeamMember, error)
	Create(ctx context.Context, m teammember.TeamMember, files UploadPayload) (*teammember.TeamMember, error)
	Update(ctx context.Context, uuid teammember.UUID, upd teammember.Update, files UploadPayload) (*teammember.TeamMember, error)
	Delete(ctx context.Context, uuid teammember.UUID) (bool, error)
}

type OpportunityService interface {
	Find(ctx context.Context, page, limit int) (opportunity.Opportunities, int, error)
	FindByID(ctx context.Context, uuid opportunity.UUID) (*opportunity.Opportunity, error)
	Create(ctx context.Context, o opportunity.Opportunity, files UploadPayload) (*opportunity.Opportunity, error)
	Update(ctx context.Context, uuid opportunity.UUID, upd opportunity.Update, files UploadPayload) (*opportunity.Opportunity, error)
	Delete(ctx context.Context, uuid opportunity.UUID) (bool, error)
}

type EventService interface {
	Find(ctx context.Context, f event.Filter, page, limit int) (event.Events, int, error)
	FindByID(ctx context.Context, uuid event.UUID) (*event.Event, error)
	Create(ctx context.Context, e event.Event, files UploadPayload) (*event.Event, error)
	Update(ctx context.Context, uuid event.UUID, upd event.Update, files UploadPayload) (*event.Event, error)
	Delete(ctx context.Context, uuid event.UUID) (bool, error)
}
