package store

import "errors"

// The whole persistence surface is three keys in an opaque key-value store.
// The schedule document is JSON-serialized wholesale; the other two keys are
// plain strings.
const (
	KeySchedule = "schedule"
	KeyUser     = "user"
	KeyCurrency = "currency"
)

// ErrNotFound is returned by KV.Get when a key has never been written or was
// deleted.
var ErrNotFound = errors.New("key not found")

// KV is the persistence collaborator. Writes are fire-and-forget from the
// caller's point of view: a failed write surfaces as an error but there is no
// retry or acknowledgement protocol.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
