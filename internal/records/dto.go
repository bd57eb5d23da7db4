package records

import "github.com/bhamfoods/invoicetrack-backend/pkg/db/models"

// ExternalRecord is the wire shape consumed by the existing client. The JSON
// keys are display names with spaces and are load-bearing; do not rename.
type ExternalRecord struct {
	StoreID            string   `json:"Store ID"`
	InvoiceNumber      *string  `json:"Invoice Number"`
	InvoiceDate        *string  `json:"Invoice Date"`
	CustomerName       *string  `json:"Customer Name"`
	Address            *string  `json:"Address"`
	City               *string  `json:"City"`
	State              *string  `json:"State"`
	Zip                *string  `json:"Zip"`
	ProductCode        *string  `json:"Product Code"`
	ProductDescription *string  `json:"Product Description"`
	Brand              *string  `json:"Brand"`
	Category           *string  `json:"Category"`
	PackSize           *string  `json:"Pack Size"`
	Quantity           float64  `json:"Quantity"`
	UnitPrice          float64  `json:"Unit Price"`
	ExtendedPrice      float64  `json:"Extended Price"`
	Vendor             *string  `json:"Vendor"`
	VendorCode         *string  `json:"Vendor Code"`
}

// ToExternal projects a stored record into the external display shape. Pure
// mapping, no business logic.
func ToExternal(rec *models.InvoiceRecord) ExternalRecord {
	return ExternalRecord{
		StoreID:            rec.StoreID,
		InvoiceNumber:      rec.InvoiceNumber,
		InvoiceDate:        rec.InvoiceDate,
		CustomerName:       rec.CustomerName,
		Address:            rec.Address,
		City:               rec.City,
		State:              rec.State,
		Zip:                rec.ZipCode,
		ProductCode:        rec.ProductCode,
		ProductDescription: rec.ProductDescription,
		Brand:              rec.Brand,
		Category:           rec.Category,
		PackSize:           rec.PackSize,
		Quantity:           rec.Quantity,
		UnitPrice:          rec.UnitPrice,
		ExtendedPrice:      rec.ExtendedPrice,
		Vendor:             rec.Vendor,
		VendorCode:         rec.VendorCode,
	}
}
