package models

// Store is a reference entity for a physical location. AddressPatterns is a
// comma-separated list of address substrings consumed by the client-side
// classifier; the backend stores it opaquely and never matches against it.
type Store struct {
	ID              string `gorm:"column:id;type:varchar(50);primaryKey"`
	Name            string `gorm:"column:name;type:varchar(100);not null"`
	Location        string `gorm:"column:location;type:varchar(200)"`
	AddressPatterns string `gorm:"column:address_patterns;type:text"`
}

func (Store) TableName() string { return "stores" }
