package plannerRepository

import (
	"StudentPlanner/internal/entity"
	"StudentPlanner/pkg/kv"
	"context"

	"github.com/sirupsen/logrus"
)

// Repository is the write-through gateway for the course collection. Loads
// never fail on a missing or corrupt record; they degrade to an empty
// collection so a broken store never takes the planner down.
type Repository interface {
	LoadCourses(ctx context.Context) ([]entity.Course, error)
	SaveCourses(ctx context.Context, courses []entity.Course) error
}

func New(store kv.Store, log *logrus.Logger) Repository {
	return &courseRepository{
		store: store,
		log:   log,
	}
}

type courseRepository struct {
	store kv.Store
	log   *logrus.Logger
}
