package kv

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is the durable key-value contract every persistence driver satisfies.
// Values are opaque documents; callers own the (de)serialization.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
