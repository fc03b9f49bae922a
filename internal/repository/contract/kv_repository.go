package contract

import "context"

// IKeyValueRepository is the persistence collaborator: a process-wide
// string-keyed store holding serialized sequences. Read reports absence via
// the bool, Write reports failure via the error; callers treat both as
// non-fatal.
type IKeyValueRepository interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key string, value string) error
}
