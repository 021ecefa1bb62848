package contract

import "context"

type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) (Settings, error)
}
