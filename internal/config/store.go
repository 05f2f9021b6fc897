package config

import (
	"StudentPlanner/pkg/kv"
	"StudentPlanner/pkg/kv/filekv"
	"StudentPlanner/pkg/redis"
	"os"

	"github.com/sirupsen/logrus"
)

const defaultStorageDir = "./storage/data"

// NewStore picks the persistence driver from the environment. The file store
// is the default; redis is opt-in for setups that want the data elsewhere.
func NewStore(log *logrus.Logger) (kv.Store, error) {
	if os.Getenv("STORAGE_DRIVER") == "redis" {
		return redis.New(), nil
	}

	dir := os.Getenv("STORAGE_DIR")
	if dir == "" {
		dir = defaultStorageDir
	}

	return filekv.New(dir, log)
}
