package contract

import "context"

type Service interface {
	// Get returns the stored settings, or DefaultSettings when none exist.
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}
