package drafts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRepoSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	updated := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	draft := Draft{
		OwnerID:   "guest:a",
		Fields:    map[string]string{"productName": "Lamp"},
		UpdatedAt: updated,
	}

	mock.ExpectExec("INSERT INTO form_drafts").
		WithArgs("guest:a", []byte(`{"productName":"Lamp"}`), updated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), draft))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetDecodesFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	updated := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"fields", "updated_at"}).
		AddRow([]byte(`{"productName":"Lamp","toneOfVoice":"Friendly"}`), updated)
	mock.ExpectQuery("SELECT fields, updated_at").
		WithArgs("guest:a").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "guest:a")
	require.NoError(t, err)
	assert.Equal(t, "guest:a", got.OwnerID)
	assert.Equal(t, map[string]string{"productName": "Lamp", "toneOfVoice": "Friendly"}, got.Fields)
	assert.True(t, updated.Equal(got.UpdatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT fields, updated_at").
		WithArgs("guest:none").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.Get(context.Background(), "guest:none")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM form_drafts").
		WithArgs("guest:a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "guest:a"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
