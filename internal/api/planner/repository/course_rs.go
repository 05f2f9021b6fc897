package plannerRepository

import (
	"StudentPlanner/internal/entity"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/kv"
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

const keyCourses = "courses"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (r *courseRepository) LoadCourses(ctx context.Context) ([]entity.Course, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	data, err := r.store.Get(ctx, keyCourses)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []entity.Course{}, nil
		}
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to read courses record")
		return nil, err
	}

	var courses []entity.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Courses record unparseable, starting with empty collection")
		return []entity.Course{}, nil
	}

	normalizeCourses(courses)

	return courses, nil
}

func (r *courseRepository) SaveCourses(ctx context.Context, courses []entity.Course) error {
	sessionID := contextPkg.GetSessionID(ctx)

	if courses == nil {
		courses = []entity.Course{}
	}

	data, err := json.Marshal(courses)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to serialize courses record")
		return err
	}

	if err := r.store.Set(ctx, keyCourses, data); err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to write courses record")
		return err
	}

	return nil
}

// normalizeCourses patches records written by older planner versions: missing
// ids get backfilled, Indonesian day keys become canonical, absent priorities
// default to medium.
func normalizeCourses(courses []entity.Course) {
	for i := range courses {
		if courses[i].ID == "" {
			courses[i].ID = ulid.Make().String()
		}

		if day, err := entity.ParseWeekday(string(courses[i].Day)); err == nil {
			courses[i].Day = day
		}

		for j := range courses[i].Tasks {
			task := &courses[i].Tasks[j]
			if task.ID == "" {
				task.ID = ulid.Make().String()
			}
			if task.Priority == "" {
				task.Priority = entity.PriorityMedium
			}
		}
	}
}
