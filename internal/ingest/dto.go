package ingest

// RawRecord is one source row as decoded from the upload payload. Keys are
// the source file's column headers; values are whatever the JSON decoder
// produced (string, float64, bool, nil).
type RawRecord map[string]any

// IngestInput carries one upload batch.
type IngestInput struct {
	StoreID  string
	Filename string
	FileSize int64
	Records  []RawRecord
}

// IngestResult summarizes what a batch ingestion did.
type IngestResult struct {
	UploadID         int64
	NewRecords       int
	DuplicateRecords int
}

// naturalKey identifies an invoice line within one user's data. Nil fields
// are part of the key: two records both missing an invoice number still
// collide when the rest of the key matches.
type naturalKey struct {
	StoreID       string
	InvoiceNumber *string
	InvoiceDate   *string
	ProductCode   *string
}
