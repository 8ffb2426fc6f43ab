package useritems

import (
	"context"
	"errors"
	"testing"
	"time"

	"grail-tracker/core/database"
	"grail-tracker/feature/progress"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *time.Time) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	svc := NewService(db, zap.NewNop())
	require.NoError(t, svc.Migrate())

	clock := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }
	return svc, &clock
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestService_Set(t *testing.T) {
	svc, clock := setupService(t)
	ctx := context.Background()
	first := *clock

	item, err := svc.Set(ctx, "u1", "Windforce", true)
	require.NoError(t, err)
	assert.True(t, item.Found)
	assert.Len(t, item.ID, 36)
	require.NotNil(t, item.FoundAt)
	assert.True(t, first.Equal(*item.FoundAt))

	*clock = clock.Add(time.Hour)
	again, err := svc.Set(ctx, "u1", "Windforce", true)
	require.NoError(t, err)
	assert.Equal(t, item.ID, again.ID)
	assert.True(t, first.Equal(*again.FoundAt), "found_at is kept on repeated sets")

	cleared, err := svc.Set(ctx, "u1", "Windforce", false)
	require.NoError(t, err)
	assert.False(t, cleared.Found)
	assert.Nil(t, cleared.FoundAt)

	rows, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1, "un-marking keeps the row")
	assert.False(t, rows[0].Found)

	refound, err := svc.Set(ctx, "u1", "Windforce", true)
	require.NoError(t, err)
	assert.True(t, clock.Equal(*refound.FoundAt))
}

func TestService_Validation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Set(ctx, "", "Windforce", true)
	assert.ErrorIs(t, err, ErrMissingUser)
	_, err = svc.Set(ctx, "u1", "", true)
	assert.ErrorIs(t, err, ErrMissingItemKey)
	_, err = svc.List(ctx, "")
	assert.ErrorIs(t, err, ErrMissingUser)
	_, err = svc.SetBulk(ctx, "u1", []progress.BulkItem{{ItemKey: ""}})
	assert.ErrorIs(t, err, ErrMissingItemKey)
	_, err = svc.Clear(ctx, "")
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestService_SetBulkAndClear(t *testing.T) {
	svc, clock := setupService(t)
	ctx := context.Background()

	_, err := svc.Set(ctx, "u1", "Ber", true)
	require.NoError(t, err)
	_, err = svc.Set(ctx, "u2", "Ber", true)
	require.NoError(t, err)

	restored := time.Date(2023, 12, 24, 8, 0, 0, 0, time.UTC)
	no := false
	n, err := svc.SetBulk(ctx, "u1", []progress.BulkItem{
		{ItemKey: "Ber", FoundAt: &restored},
		{ItemKey: "Jah"},
		{ItemKey: "El", Found: &no},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rows, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Ber", "El", "Jah"}, []string{rows[0].ItemKey, rows[1].ItemKey, rows[2].ItemKey})
	assert.True(t, restored.Equal(*rows[0].FoundAt), "explicit foundAt overwrites")
	assert.False(t, rows[1].Found)
	assert.Nil(t, rows[1].FoundAt)
	assert.True(t, clock.Equal(*rows[2].FoundAt))

	deleted, err := svc.Clear(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	rows, err = svc.List(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "other users are untouched")
}

func TestService_CheckSchema(t *testing.T) {
	svc, _ := setupService(t)
	missing, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestService_DatabaseErrors(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())
		mock.ExpectQuery("SELECT \\* FROM `user_items`").WillReturnError(errors.New("db down"))

		_, err := svc.List(context.Background(), "u1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Set Rolls Back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT \\* FROM `user_items`").WillReturnError(errors.New("deadlock"))
		mock.ExpectRollback()

		_, err := svc.Set(context.Background(), "u1", "Ber", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load user item Ber")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Clear", func(t *testing.T) {
		db, mock := setupMockDB(t)
		svc := NewService(db, zap.NewNop())
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `user_items`").WillReturnError(errors.New("read only"))
		mock.ExpectRollback()

		_, err := svc.Clear(context.Background(), "u1")
		assert.ErrorContains(t, err, "read only")
	})
}

func TestUserRemote(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	r := NewUserRemote(svc, "u1")

	require.NoError(t, r.SetFound(ctx, "Tir", true))
	require.NoError(t, r.SetBulk(ctx, []progress.BulkItem{{ItemKey: "El"}}))

	items, err := r.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "El", items[0].ItemKey)
	assert.Equal(t, "u1", items[0].UserID)
	assert.True(t, items[1].Found)

	require.NoError(t, r.Clear(ctx))
	items, err = r.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
