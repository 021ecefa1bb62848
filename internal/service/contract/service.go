package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/pkg/database"
	"github.com/turniapp/turni-backend-go/internal/repository/postgresql"
)

type contractServiceImpl struct {
	repo contract.Repository
	db   *database.DB
}

func NewContractService(repo contract.Repository, db *database.DB) contract.Service {
	return &contractServiceImpl{repo: repo, db: db}
}

// Get returns the stored settings. A worker who has never saved a contract
// gets the CCNL defaults, not an error.
func (s *contractServiceImpl) Get(ctx context.Context) (contract.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, contract.ErrSettingsNotFound) {
			return contract.DefaultSettings(), nil
		}
		return contract.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Update merges the request into the current settings. Read and write run in
// one transaction so two concurrent updates cannot drop each other's sections.
func (s *contractServiceImpl) Update(ctx context.Context, req contract.UpdateSettingsRequest) (contract.Settings, error) {
	if err := req.Validate(); err != nil {
		return contract.Settings{}, err
	}

	var saved contract.Settings
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.Get(txCtx)
		if err != nil {
			return err
		}

		saved, err = s.repo.Save(txCtx, req.ApplyTo(current))
		if err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return contract.Settings{}, err
	}

	return saved, nil
}
