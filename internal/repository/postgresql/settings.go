package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

// NewSettingsRepository creates a new contract settings repository
func NewSettingsRepository(db *database.DB) contract.Repository {
	return &settingsRepository{db: db}
}

// Get retrieves the current contract settings document. The table holds at
// most one row per installation.
func (r *settingsRepository) Get(ctx context.Context) (contract.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payload, updated_at
		FROM contract_settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var (
		id        string
		payload   []byte
		updatedAt time.Time
	)

	err := q.QueryRow(ctx, query).Scan(&id, &payload, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract.Settings{}, contract.ErrSettingsNotFound
		}
		return contract.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	var settings contract.Settings
	if err := json.Unmarshal(payload, &settings); err != nil {
		return contract.Settings{}, fmt.Errorf("failed to unmarshal settings payload: %w", err)
	}

	settings.ID = id
	settings.UpdatedAt = updatedAt

	return settings, nil
}

// Save replaces the settings document
func (r *settingsRepository) Save(ctx context.Context, settings contract.Settings) (contract.Settings, error) {
	q := GetQuerier(ctx, r.db)

	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	settings.UpdatedAt = time.Now()

	payload, err := json.Marshal(settings)
	if err != nil {
		return contract.Settings{}, fmt.Errorf("failed to marshal settings: %w", err)
	}

	query := `
		INSERT INTO contract_settings (id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET payload = $2, updated_at = $3
	`

	if _, err := q.Exec(ctx, query, settings.ID, payload, settings.UpdatedAt); err != nil {
		return contract.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}
