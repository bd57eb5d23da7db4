package stores

import "github.com/bhamfoods/invoicetrack-backend/pkg/db/models"

// Catalog returns the fixed reference list of store locations. Seeding is
// insert-if-absent, so edits made to a live row are never overwritten by a
// restart.
func Catalog() []models.Store {
	return []models.Store{
		{ID: "trussville", Name: "Trussville Store", Location: "Trussville", AddressPatterns: "7270 GADSDEN HWY,GADSDEN HWY"},
		{ID: "chelsea", Name: "Chelsea Store", Location: "Chelsea", AddressPatterns: "50 CHELSEA RD,CHELSEA RD"},
		{ID: "5points", Name: "5 Points Store", Location: "Five Points South", AddressPatterns: "1024 20TH ST S,20TH ST S"},
		{ID: "valleydale", Name: "Valleydale Store", Location: "Valleydale", AddressPatterns: "2657 VALLEYDALE RD,VALLEYDALE RD"},
		{ID: "homewood", Name: "Homewood Store", Location: "Homewood", AddressPatterns: "803 GREEN SPRINGS HWY,GREEN SPRINGS HWY"},
		{ID: "280", Name: "280 Store", Location: "Highway 280 Corridor", AddressPatterns: "1401 DOUG BAKER BLVD,DOUG BAKER BLVD"},
	}
}
