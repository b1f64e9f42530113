package opportunity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"content-manager-api/internal/domain/opportunity"
	"content-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) opportunity.Repository {
	return &Repository{db: db}
}

func (r *Repository) Fetch(ctx context.Context, page, limit int) (opportunity.Opportunities, int, error) {
	rows, err := r.db.Query(ctx, SelectOpportunities, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var os Opportunities
	for rows.Next() {
		o := new(Opportunity)

		if err = rows.Scan(
			&o.ID,
			&o.UUID,
			&o.Title,
			&o.ShortDescription,
			&o.Link,
			&o.Attachments,

			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		os = append(os, o)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRow(ctx, CountOpportunities).Scan(&total); err != nil {
		return nil, 0, err
	}

	out, err := fromDBModels(os)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *Repository) FetchByID(ctx context.Context, uuid opportunity.UUID) (*opportunity.Opportunity, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectOpportunityByID, uuid.String()))
}

func (r *Repository) Create(ctx context.Context, req opportunity.Opportunity) (*opportunity.Opportunity, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		InsertOpportunity,
		req.Title, req.ShortDescription, req.Link, atts,
	))
}

func (r *Repository) Update(ctx context.Context, req opportunity.Opportunity) (*opportunity.Opportunity, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		UpdateOpportunityByUUID,
		req.Title, req.ShortDescription, req.Link, atts, req.UUID,
	))
}

func (r *Repository) Delete(ctx context.Context, uuid opportunity.UUID) (*opportunity.Opportunity, error) {
	return r.scanRow(r.db.QueryRow(ctx, DeleteOpportunityByUUID, uuid.String()))
}

func (r *Repository) scanRow(row pgx.Row) (*opportunity.Opportunity, error) {
	o := new(Opportunity)
	err := row.Scan(
		&o.ID,
		&o.UUID,
		&o.Title,
		&o.ShortDescription,
		&o.Link,
		&o.Attachments,

		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(o)
}
