package users

import (
	"context"

	"github.com/bhamfoods/invoicetrack-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository exposes user persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert writes the principal's current profile, refreshing the mutable
// fields when the row already exists. The identity provider owns profile
// data, so its claims always win.
func (r *Repository) Upsert(ctx context.Context, dto UpsertUserDTO) (*models.User, error) {
	user := dto.toModel()
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "first_name", "last_name", "profile_image_url", "updated_at",
			}),
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID loads a user by the identity provider's subject.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
