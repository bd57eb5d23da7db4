package records

import (
	"context"
	"fmt"

	"github.com/bhamfoods/invoicetrack-backend/pkg/db/models"
	pkgerrors "github.com/bhamfoods/invoicetrack-backend/pkg/errors"
)

// AllStores selects every store in a listing call.
const AllStores = "all"

type recordsRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.InvoiceRecord, error)
	ListByUserAndStore(ctx context.Context, userID, storeID string) ([]models.InvoiceRecord, error)
}

// Service exposes scoped reads over invoice records.
type Service interface {
	List(ctx context.Context, userID, storeID string) ([]ExternalRecord, error)
}

type service struct {
	repo recordsRepository
}

// NewService builds a records service with the provided repository.
func NewService(repo recordsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("records repository required")
	}
	return &service{repo: repo}, nil
}

// List returns the user's records in external shape. storeID may be a store
// id or AllStores. Every query is scoped to the calling user; there is no
// cross-user read path.
func (s *service) List(ctx context.Context, userID, storeID string) ([]ExternalRecord, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id required")
	}
	if storeID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}

	var rows []models.InvoiceRecord
	var err error
	if storeID == AllStores {
		rows, err = s.repo.ListByUser(ctx, userID)
	} else {
		rows, err = s.repo.ListByUserAndStore(ctx, userID, storeID)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list records")
	}

	// Empty result marshals as [] rather than null.
	out := make([]ExternalRecord, 0, len(rows))
	for i := range rows {
		out = append(out, ToExternal(&rows[i]))
	}
	return out, nil
}
