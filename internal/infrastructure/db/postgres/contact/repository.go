package contact

import (
	"context"

	"content-manager-api/internal/domain/contact"
	"content-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) contact.Repository {
	return &Repository{db: db}
}

func (r *Repository) Fetch(ctx context.Context, page, limit int) (contact.Messages, int, error) {
	rows, err := r.db.Query(ctx, SelectMessages, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var ms Messages
	for rows.Next() {
		m := new(Message)

		if err = rows.Scan(
			&m.ID,
			&m.UUID,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.Message,

			&m.CreatedAt,
		); err != nil {
			return nil, 0, err
		}

		ms = append(ms, m)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRow(ctx, CountMessages).Scan(&total); err != nil {
		return nil, 0, err
	}

	return fromDBModels(ms), total, nil
}

func (r *Repository) Create(ctx context.Context, req contact.Message) (*contact.Message, error) {
	m := new(Message)
	err := r.db.QueryRow(
		ctx,
		InsertMessage,
		req.Name, req.Email, req.Phone, req.Message,
	).Scan(
		&m.ID,
		&m.UUID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Message,

		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(m), nil
}
