package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bhamfoods/invoicetrack-backend/pkg/db/models"
	pkgerrors "github.com/bhamfoods/invoicetrack-backend/pkg/errors"
	"github.com/bhamfoods/invoicetrack-backend/pkg/metrics"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type storeChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service runs batch ingestion of invoice records.
type Service interface {
	Ingest(ctx context.Context, userID string, input IngestInput) (*IngestResult, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	stores  storeChecker
	metrics *metrics.IngestMetrics
}

// NewService builds an ingestion service. Metrics may be nil in tests.
func NewService(repo Repository, tx txRunner, stores storeChecker, m *metrics.IngestMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ingest repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if stores == nil {
		return nil, fmt.Errorf("store checker required")
	}
	return &service{repo: repo, tx: tx, stores: stores, metrics: m}, nil
}

// Ingest creates an Upload, then walks the batch inserting each row unless
// the user already holds a record with the same natural key. The whole batch
// commits or rolls back as one transaction; a storage error midway leaves
// nothing behind.
func (s *service) Ingest(ctx context.Context, userID string, input IngestInput) (*IngestResult, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id required")
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	known, err := s.stores.Exists(ctx, input.StoreID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check store")
	}
	if !known {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown store id")
	}

	started := time.Now()
	result := &IngestResult{}
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		upload, err := repo.CreateUpload(ctx, &models.Upload{
			UserID:       userID,
			StoreID:      input.StoreID,
			Filename:     input.Filename,
			FileSize:     input.FileSize,
			TotalRecords: len(input.Records),
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create upload")
		}
		result.UploadID = upload.ID

		for _, raw := range input.Records {
			key := extractNaturalKey(input.StoreID, raw)

			exists, err := repo.NaturalKeyExists(ctx, userID, key)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check duplicate")
			}
			if exists {
				result.DuplicateRecords++
				continue
			}

			inserted, err := repo.InsertRecord(ctx, mapRecord(userID, upload.ID, key, raw))
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert record")
			}
			if !inserted {
				// Lost the race to a concurrent writer with the same key.
				result.DuplicateRecords++
				continue
			}
			result.NewRecords++
		}
		return nil
	})
	if err != nil {
		s.metrics.IncFailure(input.StoreID)
		return nil, err
	}

	s.metrics.ObserveDuration(input.StoreID, time.Since(started))
	s.metrics.AddNew(input.StoreID, result.NewRecords)
	s.metrics.AddDuplicates(input.StoreID, result.DuplicateRecords)
	return result, nil
}

func (s *service) validate(input IngestInput) error {
	if strings.TrimSpace(input.StoreID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "store_id is required")
	}
	if strings.TrimSpace(input.Filename) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "filename is required")
	}
	if input.FileSize < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "file_size cannot be negative")
	}
	return nil
}
