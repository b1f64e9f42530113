package blog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"content-manager-api/internal/domain/blog"
	"content-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) blog.Repository {
	return &Repository{db: db}
}

func (r *Repository) Fetch(ctx context.Context, page, limit int) (blog.Blogs, int, error) {
	rows, err := r.db.Query(ctx, SelectBlogs, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bs Blogs
	for rows.Next() {
		b := new(Blog)

		if err = rows.Scan(
			&b.ID,
			&b.UUID,
			&b.Title,
			&b.Content,
			&b.Attachments,

			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		bs = append(bs, b)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRow(ctx, CountBlogs).Scan(&total); err != nil {
		return nil, 0, err
	}

	out, err := fromDBModels(bs)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *Repository) FetchByID(ctx context.Context, uuid blog.UUID) (*blog.Blog, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectBlogByID, uuid.String()))
}

func (r *Repository) Create(ctx context.Context, req blog.Blog) (*blog.Blog, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(ctx, InsertBlog, req.Title, req.Content, atts))
}

func (r *Repository) Update(ctx context.Context, req blog.Blog) (*blog.Blog, error) {
	atts, err := postgres.MarshalAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}

	return r.scanRow(r.db.QueryRow(ctx, UpdateBlogByUUID, req.Title, req.Content, atts, req.UUID))
}

func (r *Repository) Delete(ctx context.Context, uuid blog.UUID) (*blog.Blog, error) {
	return r.scanRow(r.db.QueryRow(ctx, DeleteBlogByUUID, uuid.String()))
}

func (r *Repository) scanRow(row pgx.Row) (*blog.Blog, error) {
	b := new(Blog)
	err := row.Scan(
		&b.ID,
		&b.UUID,
		&b.Title,
		&b.Content,
		&b.Attachments,

		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(b)
}
