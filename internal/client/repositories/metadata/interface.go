package metadata

import (
	"context"
)

// Repository is a flat key/value store. It plays the role the browser's
// local storage plays for a web client: a handful of named entries, each
// overwritten as a whole.
type Repository interface {
	// Get returns (nil, nil) when key is absent and a non-nil empty slice
	// for a key stored with an empty value.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or overwrites key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
