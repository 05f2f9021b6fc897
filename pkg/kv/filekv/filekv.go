package filekv

import (
	"StudentPlanner/pkg/kv"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Store keeps one JSON document per key inside a single directory. Writes go
// through a temp file plus rename so a crash never leaves a half-written record.
type Store struct {
	dir string
	log *logrus.Logger
}

func New(dir string, log *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.WithFields(logrus.Fields{
			"dir":   dir,
			"error": err.Error(),
		}).Error("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Store{dir: dir, log: log}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, kv.ErrKeyNotFound
		}
		s.log.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Error("Failed to read record")
		return nil, err
	}

	return data, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	target := s.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		s.log.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Error("Failed to write record")
		return err
	}

	if err := os.Rename(tmp, target); err != nil {
		s.log.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Error("Failed to commit record")
		return err
	}

	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.log.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Error("Failed to delete record")
		return err
	}

	return nil
}

func (s *Store) path(key string) string {
	// Keys are fixed record names, but never trust them as raw paths.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)

	return filepath.Join(s.dir, safe+".json")
}
