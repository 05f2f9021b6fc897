package settingsRepository

import (
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/kv"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

const (
	keyDarkMode   = "darkMode"
	keyHasVisited = "hasVisited"
)

func (r *preferenceRepository) DarkMode(ctx context.Context) bool {
	return r.flag(ctx, keyDarkMode)
}

func (r *preferenceRepository) SetDarkMode(ctx context.Context, enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}

	return r.setFlag(ctx, keyDarkMode, value)
}

func (r *preferenceRepository) HasVisited(ctx context.Context) bool {
	return r.flag(ctx, keyHasVisited)
}

func (r *preferenceRepository) SetHasVisited(ctx context.Context) error {
	return r.setFlag(ctx, keyHasVisited, "true")
}

// flag reads a boolean preference; anything but the literal "true" counts as
// unset, matching how the flags were stored originally.
func (r *preferenceRepository) flag(ctx context.Context, key string) bool {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			r.log.WithFields(logrus.Fields{
				"session_id": contextPkg.GetSessionID(ctx),
				"key":        key,
				"error":      err.Error(),
			}).Warn("Failed to read preference flag")
		}
		return false
	}

	return string(data) == "true"
}

func (r *preferenceRepository) setFlag(ctx context.Context, key string, value string) error {
	if err := r.store.Set(ctx, key, []byte(value)); err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": contextPkg.GetSessionID(ctx),
			"key":        key,
			"error":      err.Error(),
		}).Error("Failed to write preference flag")
		return err
	}

	return nil
}
