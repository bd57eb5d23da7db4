package stores

import "github.com/bhamfoods/invoicetrack-backend/pkg/db/models"

// StoreDTO is the public shape of a store. Address patterns are withheld;
// they are operational data for the upload classifier, not display data.
type StoreDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// FromModel projects a store row into its public shape.
func FromModel(store *models.Store) *StoreDTO {
	if store == nil {
		return nil
	}
	return &StoreDTO{
		ID:       store.ID,
		Name:     store.Name,
		Location: store.Location,
	}
}
