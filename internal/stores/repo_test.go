package stores

import (
	"context"
	"testing"

	"github.com/bhamfoods/invoicetrack-backend/pkg/db/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStoresTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS stores (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  location TEXT,
  address_patterns TEXT
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func TestRepositoryInsertIfAbsent(t *testing.T) {
	db := setupStoresTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	original := &models.Store{ID: "homewood", Name: "Homewood Store", Location: "Homewood"}
	require.NoError(t, repo.InsertIfAbsent(ctx, original))

	// A second insert with different fields must not overwrite the row.
	edited := &models.Store{ID: "homewood", Name: "Renamed", Location: "Elsewhere"}
	require.NoError(t, repo.InsertIfAbsent(ctx, edited))

	var stored models.Store
	require.NoError(t, db.First(&stored, "id = ?", "homewood").Error)
	require.Equal(t, "Homewood Store", stored.Name)
	require.Equal(t, "Homewood", stored.Location)
}

func TestRepositoryListOrdered(t *testing.T) {
	db := setupStoresTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertIfAbsent(ctx, &models.Store{ID: "trussville", Name: "Trussville Store"}))
	require.NoError(t, repo.InsertIfAbsent(ctx, &models.Store{ID: "280", Name: "280 Store"}))

	stores, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	require.Equal(t, "280", stores[0].ID)
	require.Equal(t, "trussville", stores[1].ID)
}

func TestRepositoryExists(t *testing.T) {
	db := setupStoresTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertIfAbsent(ctx, &models.Store{ID: "chelsea", Name: "Chelsea Store"}))

	ok, err := repo.Exists(ctx, "chelsea")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Exists(ctx, "nowhere")
	require.NoError(t, err)
	require.False(t, ok)
}
