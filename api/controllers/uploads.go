package controllers

import (
	"fmt"
	"net/http"

	"github.com/bhamfoods/invoicetrack-backend/api/middleware"
	"github.com/bhamfoods/invoicetrack-backend/api/responses"
	"github.com/bhamfoods/invoicetrack-backend/api/validators"
	"github.com/bhamfoods/invoicetrack-backend/internal/ingest"
	pkgerrors "github.com/bhamfoods/invoicetrack-backend/pkg/errors"
	"github.com/bhamfoods/invoicetrack-backend/pkg/logger"
)

type uploadRequest struct {
	StoreID  string             `json:"store_id" validate:"required"`
	Filename string             `json:"filename" validate:"required"`
	FileSize int64              `json:"file_size" validate:"gte=0"`
	Records  []ingest.RawRecord `json:"records"`
}

// uploadResponse is the legacy flat shape the shipped client consumes.
type uploadResponse struct {
	Success          bool   `json:"success"`
	UploadID         int64  `json:"upload_id"`
	NewRecords       int    `json:"new_records"`
	DuplicateRecords int    `json:"duplicate_records"`
	Message          string `json:"message"`
}

// Upload ingests a batch of parsed invoice records for the caller.
func Upload(svc ingest.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var body uploadRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Ingest(r.Context(), userID, ingest.IngestInput{
			StoreID:  body.StoreID,
			Filename: body.Filename,
			FileSize: body.FileSize,
			Records:  body.Records,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteLegacy(w, http.StatusOK, uploadResponse{
			Success:          true,
			UploadID:         result.UploadID,
			NewRecords:       result.NewRecords,
			DuplicateRecords: result.DuplicateRecords,
			Message: fmt.Sprintf("Successfully uploaded %d new records (%d duplicates skipped)",
				result.NewRecords, result.DuplicateRecords),
		})
	}
}
