package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT UNIQUE,
  first_name TEXT,
  last_name TEXT,
  profile_image_url TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func strPtr(s string) *string { return &s }

func TestRepositoryUpsertInsertsThenUpdates(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, UpsertUserDTO{
		ID:        "idp-123",
		Email:     strPtr("a@example.com"),
		FirstName: strPtr("Ada"),
	})
	require.NoError(t, err)

	// The provider's claims refresh the profile on a later login.
	_, err = repo.Upsert(ctx, UpsertUserDTO{
		ID:        "idp-123",
		Email:     strPtr("a@example.com"),
		FirstName: strPtr("Adaline"),
		LastName:  strPtr("L"),
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, "idp-123")
	require.NoError(t, err)
	require.Equal(t, "Adaline", *stored.FirstName)
	require.Equal(t, "L", *stored.LastName)

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), "nope")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
