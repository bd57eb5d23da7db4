package models

import "time"

// User mirrors the principal supplied by the external identity provider. The
// id is the provider's subject and is never generated locally; rows are only
// written by the auth collaborator when a session is established.
type User struct {
	ID              string    `gorm:"column:id;type:text;primaryKey"`
	Email           *string   `gorm:"column:email;uniqueIndex"`
	FirstName       *string   `gorm:"column:first_name"`
	LastName        *string   `gorm:"column:last_name"`
	ProfileImageURL *string   `gorm:"column:profile_image_url"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }
