package store

import (
	"context"

	"github.com/me/schedsim/pkg/model"
)

// Store defines the persistence layer for the simulation run history.
type Store interface {
	CreateRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, id string) (*model.Run, error)
	ListRuns(ctx context.Context, opts model.ListOptions) ([]*model.Run, int, error)
	DeleteRun(ctx context.Context, id string) error

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
