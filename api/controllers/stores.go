package controllers

import (
	"net/http"

	"github.com/bhamfoods/invoicetrack-backend/api/responses"
	"github.com/bhamfoods/invoicetrack-backend/internal/stores"
	"github.com/bhamfoods/invoicetrack-backend/pkg/logger"
)

// ListStores returns the store catalog as a bare array, the shape the
// shipped client expects.
func ListStores(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteLegacy(w, http.StatusOK, list)
	}
}
