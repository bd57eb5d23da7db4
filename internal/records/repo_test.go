package records

import (
	"context"
	"testing"

	"github.com/bhamfoods/invoicetrack-backend/pkg/db/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRecordsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS invoice_records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  upload_id INTEGER NOT NULL,
  store_id TEXT NOT NULL,
  invoice_number TEXT,
  invoice_date TEXT,
  customer_name TEXT,
  address TEXT,
  city TEXT,
  state TEXT,
  zip_code TEXT,
  product_code TEXT,
  product_description TEXT,
  brand TEXT,
  category TEXT,
  pack_size TEXT,
  quantity REAL NOT NULL DEFAULT 0,
  unit_price REAL NOT NULL DEFAULT 0,
  extended_price REAL NOT NULL DEFAULT 0,
  vendor TEXT,
  vendor_code TEXT
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func seedRecord(t *testing.T, db *gorm.DB, userID, storeID, invoiceNumber string) {
	t.Helper()
	rec := models.InvoiceRecord{
		UserID:        userID,
		UploadID:      1,
		StoreID:       storeID,
		InvoiceNumber: &invoiceNumber,
	}
	require.NoError(t, db.Create(&rec).Error)
}

func TestRepositoryListScopedToUser(t *testing.T) {
	db := setupRecordsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedRecord(t, db, "user-1", "homewood", "INV-1")
	seedRecord(t, db, "user-1", "chelsea", "INV-2")
	seedRecord(t, db, "user-2", "homewood", "INV-3")

	rows, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Equal(t, "user-1", row.UserID)
	}
}

func TestRepositoryListByUserAndStore(t *testing.T) {
	db := setupRecordsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedRecord(t, db, "user-1", "homewood", "INV-1")
	seedRecord(t, db, "user-1", "chelsea", "INV-2")

	rows, err := repo.ListByUserAndStore(ctx, "user-1", "chelsea")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "INV-2", *rows[0].InvoiceNumber)
}

func TestRepositoryListEmptyResult(t *testing.T) {
	db := setupRecordsTestDB(t)
	repo := NewRepository(db)

	rows, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, rows)
}
