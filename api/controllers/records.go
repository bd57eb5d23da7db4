package controllers

import (
	"net/http"

	"github.com/bhamfoods/invoicetrack-backend/api/middleware"
	"github.com/bhamfoods/invoicetrack-backend/api/responses"
	"github.com/bhamfoods/invoicetrack-backend/internal/records"
	pkgerrors "github.com/bhamfoods/invoicetrack-backend/pkg/errors"
	"github.com/bhamfoods/invoicetrack-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// ListRecords returns the caller's invoice records as a bare array in the
// external display shape. The path parameter is a store id or "all".
func ListRecords(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		storeID := chi.URLParam(r, "storeID")
		list, err := svc.List(r.Context(), userID, storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteLegacy(w, http.StatusOK, list)
	}
}
