package teammember

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"content-manager-api/internal/domain/teammember"
	"content-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) teammember.Repository {
	return &Repository{db: db}
}

func (r *Repository) Fetch(ctx context.Context, f teammember.Filter, page, limit int) (teammember.TeamMembers, int, error) {
	rows, err := r.db.Query(ctx, SelectTeamMembers, f.Category, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var ms TeamMembers
	for rows.Next() {
		m := new(TeamMember)

		if err = rows.Scan(
			&m.ID,
			&m.UUID,
			&m.Name,
			&m.Role,
			&m.ShortDescription,
			&m.Category,
			&m.Year,
			&m.Attachments,

			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		ms = append(ms, m)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRow(ctx, CountTeamMembers, f.Category).Scan(&total); err != nil {
		return nil, 0, err
	}

	out, err := fromDBModels(ms)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *Repository) FetchByID(ctx context.Context, uuid teammember.UUID) (*teammember.TeamMember, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectTeamMemberByID, uuid.String()))
}

func (r *Repository) Create(ctx context.Context, req teammember.TeamMember) (*teammember.TeamMember, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		InsertTeamMember,
		req.Name, req.Role, req.ShortDescription, req.Category, req.Year, atts,
	))
}

func (r *Repository) Update(ctx context.Context, req teammember.TeamMember) (*teammember.TeamMember, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(
		ctx,
		UpdateTeamMemberByUUID,
		req.Name, req.Role, req.ShortDescription, req.Category, req.Year, atts, req.UUID,
	))
}

func (r *Repository) Delete(ctx context.Context, uuid teammember.UUID) (*teammember.TeamMember, error) {
	return r.scanRow(r.db.QueryRow(ctx, DeleteTeamMemberByUUID, uuid.String()))
}

func (r *Repository) scanRow(row pgx.Row) (*teammember.TeamMember, error) {
	m := new(TeamMember)
	err := row.Scan(
		&m.ID,
		&m.UUID,
		&m.Name,
		&m.Role,
		&m.ShortDescription,
		&m.Category,
		&m.Year,
		&m.Attachments,

		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(m)
}
