package announcement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "content-manager-api/internal/domain/announcement"
	"content-manager-api/internal/domain/attachment"
)

var rowColumns = []string{
	"id", "uuid", "title", "short_description", "link", "category", "attachments",
	"created_at", "updated_at",
}

func attachmentsJSON(t *testing.T) []byte {
	t.Helper()
	return []byte(`{"image":{"slot":"image","external_ref":"https://cdn.example.org/a.png","external_id":"a","resource_kind":"image"}}`)
}

func TestFetch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM announcements").
		WithArgs("announcement", 10, 10).
		WillReturnRows(pgxmock.NewRows(rowColumns).AddRow(
			uint64(1), id, "Grant window open", "desc", "", "announcement", attachmentsJSON(t), now, now,
		))
	mock.ExpectQuery(`SELECT count\(\*\) FROM announcements`).
		WithArgs("announcement").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(21))

	repo := NewRepository(mock)
	as, total, err := repo.Fetch(context.Background(), domain.Filter{Category: "announcement"}, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 21, total)
	require.Len(t, as, 1)
	assert.Equal(t, id, as[0].UUID)
	assert.Equal(t, "https://cdn.example.org/a.png", as[0].Attachments.URL(attachment.SlotImage))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM announcements").
		WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows(rowColumns))

	repo := NewRepository(mock)
	a, err := repo.FetchByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, a, "missing row maps to nil, not error")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_PersistsAttachmentsJSON(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO announcements").
		WithArgs("Grant window open", "desc", "", "announcement", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(rowColumns).AddRow(
			uint64(1), id, "Grant window open", "desc", "", "announcement", attachmentsJSON(t), now, now,
		))

	repo := NewRepository(mock)
	a, err := repo.Create(context.Background(), domain.Announcement{
		Title:            "Grant window open",
		ShortDescription: "desc",
		Category:         "announcement",
		Attachments: attachment.Attachments{
			attachment.SlotImage: {
				Slot:         attachment.SlotImage,
				ExternalRef:  "https://cdn.example.org/a.png",
				ExternalID:   "a",
				ResourceKind: attachment.KindImage,
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, id, a.UUID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ReturnsDeletedRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("DELETE FROM announcements").
		WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows(rowColumns).AddRow(
			uint64(1), id, "gone", "", "", "announcement", attachmentsJSON(t), now, now,
		))

	repo := NewRepository(mock)
	a, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "gone", a.Title)
	assert.NotEmpty(t, a.Attachments)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery("DELETE FROM announcements").
		WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows(rowColumns))

	repo := NewRepository(mock)
	a, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, a)

	require.NoError(t, mock.ExpectationsWereMet())
}
