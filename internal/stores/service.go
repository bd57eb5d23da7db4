package stores

import (
	"context"
	"fmt"

	"github.com/bhamfoods/invoicetrack-backend/pkg/db/models"
	pkgerrors "github.com/bhamfoods/invoicetrack-backend/pkg/errors"
	"go.uber.org/multierr"
)

type storeRepository interface {
	List(ctx context.Context) ([]models.Store, error)
	Exists(ctx context.Context, id string) (bool, error)
	InsertIfAbsent(ctx context.Context, store *models.Store) error
}

// Service exposes store operations.
type Service interface {
	List(ctx context.Context) ([]StoreDTO, error)
	Exists(ctx context.Context, id string) (bool, error)
	EnsureSeeded(ctx context.Context) error
}

type service struct {
	repo storeRepository
}

// NewService builds a store service with the provided repository.
func NewService(repo storeRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("store repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]StoreDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stores")
	}
	result := make([]StoreDTO, 0, len(rows))
	for i := range rows {
		result = append(result, *FromModel(&rows[i]))
	}
	return result, nil
}

func (s *service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// EnsureSeeded inserts every catalog store that is absent. Safe to call on
// every startup and concurrently with traffic; each insert is independent,
// so one bad row does not block the rest.
func (s *service) EnsureSeeded(ctx context.Context) error {
	var errs error
	for _, store := range Catalog() {
		store := store
		if err := s.repo.InsertIfAbsent(ctx, &store); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("seed store %s: %w", store.ID, err))
		}
	}
	if errs != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "seed stores")
	}
	return nil
}
