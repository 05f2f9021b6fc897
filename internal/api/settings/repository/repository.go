package settingsRepository

import (
	"StudentPlanner/pkg/kv"
	"context"

	"github.com/sirupsen/logrus"
)

// Repository stores the two auxiliary flags next to the planner collections.
type Repository interface {
	DarkMode(ctx context.Context) bool
	SetDarkMode(ctx context.Context, enabled bool) error
	HasVisited(ctx context.Context) bool
	SetHasVisited(ctx context.Context) error
}

func New(store kv.Store, log *logrus.Logger) Repository {
	return &preferenceRepository{
		store: store,
		log:   log,
	}
}

type preferenceRepository struct {
	store kv.Store
	log   *logrus.Logger
}
