package metadata

import (
	"context"
)

// Repository is a small durable key/value store. Get returns (nil, nil) for
// an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Update atomically replaces the value of key with fn(current). current
	// is nil when the key is absent. When fn returns an error nothing is
	// written and the error is returned unchanged.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}
