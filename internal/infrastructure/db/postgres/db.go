package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"content-manager-api/internal/domain/attachment"
)

// DB is the slice of pgxpool.Pool the repositories use. Narrowed to an
// interface so repository tests can run against pgxmock.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Attachment slot state is stored as one jsonb column per resource row, so a
// single-row write atomically persists text fields and slot references
// together.
func MarshalAttachments(a attachment.Attachments) ([]byte, error) {
	if a == nil {
		a = attachment.Attachments{}
	}
	return json.Marshal(a)
}

func UnmarshalAttachments(b []byte) (attachment.Attachments, error) {
	if len(b) == 0 {
		return attachment.Attachments{}, nil
	}
	var a attachment.Attachments
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, err
	}
	return a, nil
}
