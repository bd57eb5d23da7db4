package users

import "github.com/bhamfoods/invoicetrack-backend/pkg/db/models"

// UserDTO is the public shape of a user profile.
type UserDTO struct {
	ID              string  `json:"id"`
	Email           *string `json:"email"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// UpsertUserDTO carries the identity provider's claims for one principal.
type UpsertUserDTO struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// FromModel maps a user row to its public shape.
func FromModel(user *models.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
	}
}

func (d UpsertUserDTO) toModel() *models.User {
	return &models.User{
		ID:              d.ID,
		Email:           d.Email,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		ProfileImageURL: d.ProfileImageURL,
	}
}
