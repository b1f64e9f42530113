package event

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"content-manager-api/internal/domain/event"
	"content-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) event.Repository {
	return &Repository{db: db}
}

func (r *Repository) Fetch(ctx context.Context, f event.Filter, page, limit int) (event.Events, int, error) {
	rows, err := r.db.Query(ctx, SelectEvents, f.Start, f.End, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var es Events
	for rows.Next() {
		e := new(Event)

		if err = rows.Scan(
			&e.ID,
			&e.UUID,
			&e.Title,
			&e.ShortDescription,
			&e.Link,
			&e.EventDate,
			&e.Attachments,

			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		es = append(es, e)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRow(ctx, CountEvents, f.Start, f.End).Scan(&total); err != nil {
		return nil, 0, err
	}

	out, err := fromDBModels(es)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *Repository) FetchByID(ctx context.Context, uuid event.UUID) (*event.Event, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectEventByID, uuid.String()))
}

func (r *Repository) Create(ctx context.Context, req event.Event) (*event.Event, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		InsertEvent,
		req.Title, req.ShortDescription, req.Link, req.EventDate, atts,
	))
}

func (r *Repository) Update(ctx context.Context, req event.Event) (*event.Event, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		UpdateEventByUUID,
		req.Title, req.ShortDescription, req.Link, req.EventDate, atts, req.UUID,
	))
}

func (r *Repository) Delete(ctx context.Context, uuid event.UUID) (*event.Event, error) {
	return r.scanRow(r.db.QueryRow(ctx, DeleteEventByUUID, uuid.String()))
}

func (r *Repository) scanRow(row pgx.Row) (*event.Event, error) {
	e := new(Event)
	err := row.Scan(
		&e.ID,
		&e.UUID,
		&e.Title,
		&e.ShortDescription,
		&e.Link,
		&e.EventDate,
		&e.Attachments,

		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(e)
}
