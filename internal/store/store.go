package store

import "context"

// Store is the key-value collaborator the equipment tracker persists
// through. Values are opaque serialized documents; the tracker keeps the
// whole equipment collection under a single key.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
