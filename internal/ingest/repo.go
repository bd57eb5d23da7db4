package ingest

import (
	"context"

	"github.com/bhamfoods/invoicetrack-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the persistence operations the ingestion pipeline needs.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateUpload(ctx context.Context, upload *models.Upload) (*models.Upload, error)
	NaturalKeyExists(ctx context.Context, userID string, key naturalKey) (bool, error)
	InsertRecord(ctx context.Context, record *models.InvoiceRecord) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an ingest repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateUpload(ctx context.Context, upload *models.Upload) (*models.Upload, error) {
	if err := r.db.WithContext(ctx).Create(upload).Error; err != nil {
		return nil, err
	}
	return upload, nil
}

// NaturalKeyExists reports whether the user already holds a record with this
// natural key. Nil key fields match stored NULLs, not "anything".
func (r *repository) NaturalKeyExists(ctx context.Context, userID string, key naturalKey) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.InvoiceRecord{}).
		Where("user_id = ?", userID).
		Where("store_id = ?", key.StoreID)

	query = whereNullable(query, "invoice_number", key.InvoiceNumber)
	query = whereNullable(query, "invoice_date", key.InvoiceDate)
	query = whereNullable(query, "product_code", key.ProductCode)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func whereNullable(query *gorm.DB, column string, value *string) *gorm.DB {
	if value == nil {
		return query.Where(column + " IS NULL")
	}
	return query.Where(column+" = ?", *value)
}

// InsertRecord writes one invoice line. The unique natural-key index backs
// the lookup in NaturalKeyExists against concurrent writers: a conflicting
// insert is dropped and reported as not-inserted rather than failing.
func (r *repository) InsertRecord(ctx context.Context, record *models.InvoiceRecord) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
