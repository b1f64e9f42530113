package announcement

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"content-manager-api/internal/domain/announcement"
	"content-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) announcement.Repository {
	return &Repository{db: db}
}

func (r *Repository) Fetch(ctx context.Context, f announcement.Filter, page, limit int) (announcement.Announcements, int, error) {
	rows, err := r.db.Query(ctx, SelectAnnouncements, f.Category, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var as Announcements
	for rows.Next() {
		a := new(Announcement)

		if err = rows.Scan(
			&a.ID,
			&a.UUID,
			&a.Title,
			&a.ShortDescription,
			&a.Link,
			&a.Category,
			&a.Attachments,

			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		as = append(as, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRow(ctx, CountAnnouncements, f.Category).Scan(&total); err != nil {
		return nil, 0, err
	}

	out, err := fromDBModels(as)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *Repository) FetchByID(ctx context.Context, uuid announcement.UUID) (*announcement.Announcement, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectAnnouncementByID, uuid.String()))
}

func (r *Repository) Create(ctx context.Context, req announcement.Announcement) (*announcement.Announcement, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		InsertAnnouncement,
		req.Title, req.ShortDescription, req.Link, req.Category, atts,
	))
}

func (r *Repository) Update(ctx context.Context, req announcement.Announcement) (*announcement.Announcement, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		UpdateAnnouncementByUUID,
		req.Title, req.ShortDescription, req.Link, req.Category, atts, req.UUID,
	))
}

func (r *Repository) Delete(ctx context.Context, uuid announcement.UUID) (*announcement.Announcement, error) {
	return r.scanRow(r.db.QueryRow(ctx, DeleteAnnouncementByUUID, uuid.String()))
}

func (r *Repository) scanRow(row pgx.Row) (*announcement.Announcement, error) {
	a := new(Announcement)
	err := row.Scan(
		&a.ID,
		&a.UUID,
		&a.Title,
		&a.ShortDescription,
		&a.Link,
		&a.Category,
		&a.Attachments,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a)
}
