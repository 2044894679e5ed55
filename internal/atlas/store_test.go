package atlas

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/FamilyAtlas/FA-Backend/internal/ingest"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewStore(gdb), mock
}

func TestStoreCreateMember(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO "atlas"\."members"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.CreateMember(context.Background(), ingest.Member{
		ID:       "m1",
		ImportID: "I1",
		Name:     "John Smith",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCreateLocationAndEvent(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO "atlas"\."locations"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "atlas"\."events"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.CreateLocation(context.Background(), ingest.Location{
		ID: "l1", Name: "Boston", Lat: 42.36, Lng: -71.06, LocationType: "birth", MemberCount: 1,
	})
	require.NoError(t, err)

	err = store.CreateEvent(context.Background(), ingest.LifeEvent{
		ID: "e1", MemberID: "m1", LocationID: "l1", EventType: "birth", Description: "Born in Boston",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreMapsUniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO "atlas"\."members"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := store.CreateMember(context.Background(), ingest.Member{ID: "m1", Name: "Dup"})
	assert.ErrorIs(t, err, ErrDuplicate)
}
