package ingest

import (
	"math"
	"strconv"
	"strings"

	"github.com/bhamfoods/invoicetrack-backend/pkg/db/models"
)

// Source files arrive with two header dialects: the distributor export uses
// names like "Qty Shipped", "Ext. Price", and "Manufacturer Name", the
// cleaned-up generic export uses "Quantity", "Extended Price", and "Vendor".
// Each chain lists accepted input keys in preference order, distributor name
// first, and is applied per field, so a single row may mix dialects.
var (
	invoiceNumberKeys      = []string{"Invoice Number", "Invoice #"}
	invoiceDateKeys        = []string{"Invoice Date"}
	customerNameKeys       = []string{"Customer Name"}
	addressKeys            = []string{"Address"}
	cityKeys               = []string{"City"}
	stateKeys              = []string{"State"}
	zipKeys                = []string{"Zip"}
	productCodeKeys        = []string{"Product Code"}
	productDescriptionKeys = []string{"Product Description"}
	brandKeys              = []string{"Brand"}
	categoryKeys           = []string{"Product Class Description", "Category/Class", "Category"}
	packSizeKeys           = []string{"Pack Size"}
	quantityKeys           = []string{"Qty Shipped", "Quantity"}
	unitPriceKeys          = []string{"Unit Price"}
	extendedPriceKeys      = []string{"Ext. Price", "Extended Price"}
	vendorKeys             = []string{"Manufacturer Name", "Vendor"}
	vendorCodeKeys         = []string{"Vendor Code"}
)

// safeFloat coerces any source value to a finite float64. Missing, empty,
// and non-numeric values all become 0.0; a bad cell never fails the batch.
// ParseFloat accepts "NaN" and "Inf" spellings, and a non-finite value would
// break JSON encoding on the read path, so those also fold to zero.
func safeFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	default:
		return 0
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// stringValue renders a source cell as a string. JSON decodes bare numeric
// cells to float64, so an invoice number typed as 12345 in the source file
// is formatted back without a trailing fraction to match its string form.
func stringValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func stringField(raw RawRecord, keys []string) *string {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		s, ok := stringValue(value)
		if !ok {
			continue
		}
		return &s
	}
	return nil
}

func floatField(raw RawRecord, keys []string) float64 {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		return safeFloat(value)
	}
	return 0
}

// keyField folds an empty cell into the absent case. The duplicate lookup
// treats nil as IS NULL while the unique index coalesces NULL to '', so a
// stored empty string and a missing field must be the same value or the two
// checks disagree on what a duplicate is.
func keyField(raw RawRecord, keys []string) *string {
	s := stringField(raw, keys)
	if s != nil && *s == "" {
		return nil
	}
	return s
}

func extractNaturalKey(storeID string, raw RawRecord) naturalKey {
	return naturalKey{
		StoreID:       storeID,
		InvoiceNumber: keyField(raw, invoiceNumberKeys),
		InvoiceDate:   keyField(raw, invoiceDateKeys),
		ProductCode:   keyField(raw, productCodeKeys),
	}
}

// mapRecord projects one raw row into the storage schema. Descriptive fields
// stay nullable; numerics go through safeFloat and are always set.
func mapRecord(userID string, uploadID int64, key naturalKey, raw RawRecord) *models.InvoiceRecord {
	return &models.InvoiceRecord{
		UserID:   userID,
		UploadID: uploadID,
		StoreID:  key.StoreID,

		InvoiceNumber: key.InvoiceNumber,
		InvoiceDate:   key.InvoiceDate,
		CustomerName:  stringField(raw, customerNameKeys),
		Address:       stringField(raw, addressKeys),
		City:          stringField(raw, cityKeys),
		State:         stringField(raw, stateKeys),
		ZipCode:       stringField(raw, zipKeys),

		ProductCode:        key.ProductCode,
		ProductDescription: stringField(raw, productDescriptionKeys),
		Brand:              stringField(raw, brandKeys),
		Category:           stringField(raw, categoryKeys),
		PackSize:           stringField(raw, packSizeKeys),

		Quantity:      floatField(raw, quantityKeys),
		UnitPrice:     floatField(raw, unitPriceKeys),
		ExtendedPrice: floatField(raw, extendedPriceKeys),

		Vendor:     stringField(raw, vendorKeys),
		VendorCode: stringField(raw, vendorCodeKeys),
	}
}
