package publication

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"content-manager-api/internal/domain/publication"
	"content-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) publication.Repository {
	return &Repository{db: db}
}

func (r *Repository) Fetch(ctx context.Context, f publication.Filter, page, limit int) (publication.Publications, int, error) {
	rows, err := r.db.Query(ctx, SelectPublications, f.Category, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var ps Publications
	for rows.Next() {
		p := new(Publication)

		if err = rows.Scan(
			&p.ID,
			&p.UUID,
			&p.Title,
			&p.ShortDescription,
			&p.Category,
			&p.IsOngoing,
			&p.Disclaimer,
			&p.Attachments,

			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRow(ctx, CountPublications, f.Category).Scan(&total); err != nil {
		return nil, 0, err
	}

	out, err := fromDBModels(ps)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *Repository) FetchByID(ctx context.Context, uuid publication.UUID) (*publication.Publication, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectPublicationByID, uuid.String()))
}

func (r *Repository) Create(ctx context.Context, req publication.Publication) (*publication.Publication, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		InsertPublication,
		req.Title, req.ShortDescription, req.Category, req.IsOngoing, req.Disclaimer, atts,
	))
}

func (r *Repository) Update(ctx context.Context, req publication.Publication) (*publication.Publication, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		UpdatePublicationByUUID,
		req.Title, req.ShortDescription, req.Category, req.IsOngoing, req.Disclaimer, atts, req.UUID,
	))
}

func (r *Repository) Delete(ctx context.Context, uuid publication.UUID) (*publication.Publication, error) {
	return r.scanRow(r.db.QueryRow(ctx, DeletePublicationByUUID, uuid.String()))
}

func (r *Repository) scanRow(row pgx.Row) (*publication.Publication, error) {
	p := new(Publication)
	err := row.Scan(
		&p.ID,
		&p.UUID,
		&p.Title,
		&p.ShortDescription,
		&p.Category,
		&p.IsOngoing,
		&p.Disclaimer,
		&p.Attachments,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p)
}
