package ingest

import (
	"math"
	"testing"
)

func TestSafeFloat(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  float64
	}{
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "3.25", 3.25},
		{"padded numeric string", "  42 ", 42},
		{"empty string", "", 0},
		{"non-numeric string", "N/A", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"negative string", "-1.5", -1.5},
		{"nan string", "NaN", 0},
		{"inf string", "Inf", 0},
		{"negative inf string", "-Inf", 0},
		{"lowercase inf string", "inf", 0},
		{"nan float", math.NaN(), 0},
		{"inf float", math.Inf(1), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := safeFloat(tc.input); got != tc.want {
				t.Fatalf("safeFloat(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFloatFieldFallbackOrder(t *testing.T) {
	raw := RawRecord{
		"Qty Shipped": "8",
		"Quantity":    "99",
	}
	if got := floatField(raw, quantityKeys); got != 8 {
		t.Fatalf("expected Qty Shipped to win, got %v", got)
	}

	generic := RawRecord{"Quantity": 4.0}
	if got := floatField(generic, quantityKeys); got != 4 {
		t.Fatalf("expected Quantity fallback, got %v", got)
	}
}

func TestFloatFieldMixedDialects(t *testing.T) {
	// Fallback is per field: a row may carry the distributor quantity name
	// alongside the generic extended price name.
	raw := RawRecord{
		"Qty Shipped":    "2",
		"Extended Price": "10.50",
	}
	if got := floatField(raw, quantityKeys); got != 2 {
		t.Fatalf("quantity = %v, want 2", got)
	}
	if got := floatField(raw, extendedPriceKeys); got != 10.5 {
		t.Fatalf("extended price = %v, want 10.5", got)
	}
}

func TestStringFieldDistributorDialect(t *testing.T) {
	raw := RawRecord{
		"Product Class Description": "Poultry",
		"Category":                  "Frozen",
		"Manufacturer Name":         "Tyson",
		"Invoice #":                 "104233",
	}
	if got := stringField(raw, categoryKeys); got == nil || *got != "Poultry" {
		t.Fatalf("category = %v, want Poultry", got)
	}
	if got := stringField(raw, vendorKeys); got == nil || *got != "Tyson" {
		t.Fatalf("vendor = %v, want Tyson", got)
	}
	if got := stringField(raw, invoiceNumberKeys); got == nil || *got != "104233" {
		t.Fatalf("invoice number = %v, want 104233", got)
	}

	middle := RawRecord{"Category/Class": "Dry Goods", "Category": "Frozen"}
	if got := stringField(middle, categoryKeys); got == nil || *got != "Dry Goods" {
		t.Fatalf("category = %v, want Dry Goods", got)
	}

	generic := RawRecord{"Category": "Frozen", "Vendor": "Acme"}
	if got := stringField(generic, categoryKeys); got == nil || *got != "Frozen" {
		t.Fatalf("category fallback = %v, want Frozen", got)
	}
	if got := stringField(generic, vendorKeys); got == nil || *got != "Acme" {
		t.Fatalf("vendor fallback = %v, want Acme", got)
	}
}

func TestStringFieldNumericInvoiceNumber(t *testing.T) {
	// JSON decodes a bare numeric cell to float64.
	raw := RawRecord{"Invoice Number": 104233.0}
	got := stringField(raw, invoiceNumberKeys)
	if got == nil || *got != "104233" {
		t.Fatalf("invoice number = %v, want 104233", got)
	}
}

func TestStringFieldMissingStaysNil(t *testing.T) {
	raw := RawRecord{"Invoice Number": nil}
	if got := stringField(raw, invoiceNumberKeys); got != nil {
		t.Fatalf("expected nil for nil cell, got %q", *got)
	}
	if got := stringField(RawRecord{}, invoiceDateKeys); got != nil {
		t.Fatalf("expected nil for absent key, got %q", *got)
	}
}

func TestExtractNaturalKeyFoldsEmptyToNil(t *testing.T) {
	// An empty key cell and an absent one must produce the same key, or the
	// in-tx lookup and the coalesce-based unique index disagree.
	withEmpty := extractNaturalKey("chelsea", RawRecord{
		"Invoice Number": "",
		"Invoice Date":   "01/15/2025",
		"Product Code":   "SKU-1",
	})
	withAbsent := extractNaturalKey("chelsea", RawRecord{
		"Invoice Date": "01/15/2025",
		"Product Code": "SKU-1",
	})

	if withEmpty.InvoiceNumber != nil {
		t.Fatalf("empty invoice number should fold to nil, got %q", *withEmpty.InvoiceNumber)
	}
	if withAbsent.InvoiceNumber != nil {
		t.Fatalf("absent invoice number should be nil, got %q", *withAbsent.InvoiceNumber)
	}
	if *withEmpty.InvoiceDate != *withAbsent.InvoiceDate || *withEmpty.ProductCode != *withAbsent.ProductCode {
		t.Fatalf("remaining key fields diverge: %+v vs %+v", withEmpty, withAbsent)
	}
}

func TestMapRecord(t *testing.T) {
	raw := RawRecord{
		"Invoice Number":      "INV-1",
		"Invoice Date":        "01/15/2025",
		"Customer Name":       "Homewood Store",
		"Address":             "803 GREEN SPRINGS HWY",
		"City":                "Homewood",
		"State":               "AL",
		"Zip":                 "35209",
		"Product Code":        "SKU-9",
		"Product Description": "Chicken tenders",
		"Brand":               "Acme",
		"Category":            "Frozen",
		"Pack Size":           "4/10LB",
		"Qty Shipped":         "3",
		"Unit Price":          "21.10",
		"Ext. Price":          "63.30",
		"Vendor":              "Wood Fruitticher",
		"Vendor Code":         "WF-1",
	}

	key := extractNaturalKey("homewood", raw)
	rec := mapRecord("user-1", 42, key, raw)

	if rec.UserID != "user-1" || rec.UploadID != 42 || rec.StoreID != "homewood" {
		t.Fatalf("ownership fields wrong: %+v", rec)
	}
	if rec.InvoiceNumber == nil || *rec.InvoiceNumber != "INV-1" {
		t.Fatalf("invoice number = %v", rec.InvoiceNumber)
	}
	if rec.Quantity != 3 || rec.UnitPrice != 21.10 || rec.ExtendedPrice != 63.30 {
		t.Fatalf("numerics wrong: qty=%v unit=%v ext=%v", rec.Quantity, rec.UnitPrice, rec.ExtendedPrice)
	}
	if rec.ZipCode == nil || *rec.ZipCode != "35209" {
		t.Fatalf("zip = %v", rec.ZipCode)
	}
	if rec.VendorCode == nil || *rec.VendorCode != "WF-1" {
		t.Fatalf("vendor code = %v", rec.VendorCode)
	}
}

func TestMapRecordNonNumericNumericsDefaultZero(t *testing.T) {
	raw := RawRecord{
		"Product Code": "SKU-1",
		"Qty Shipped":  "N/A",
		"Unit Price":   "",
		"Ext. Price":   nil,
	}
	key := extractNaturalKey("chelsea", raw)
	rec := mapRecord("user-1", 1, key, raw)

	if rec.Quantity != 0 || rec.UnitPrice != 0 || rec.ExtendedPrice != 0 {
		t.Fatalf("expected zero numerics, got qty=%v unit=%v ext=%v", rec.Quantity, rec.UnitPrice, rec.ExtendedPrice)
	}
	if rec.InvoiceNumber != nil {
		t.Fatalf("expected nil invoice number")
	}
}
