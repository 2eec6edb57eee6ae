package out

import "context"

// KVStore is the string key-value collaborator the score persists through.
// Get reports found=false for a missing key without an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
