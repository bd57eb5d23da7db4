package records

import (
	"context"

	"github.com/bhamfoods/invoicetrack-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes read access to stored invoice records.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a records repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns every record owned by the user, oldest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]models.InvoiceRecord, error) {
	var rows []models.InvoiceRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByUserAndStore returns the user's records for one store, oldest first.
func (r *Repository) ListByUserAndStore(ctx context.Context, userID, storeID string) ([]models.InvoiceRecord, error) {
	var rows []models.InvoiceRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
