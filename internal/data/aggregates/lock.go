package aggregates

import (
	"context"

	"github.com/google/uuid"
)

// Locker serializes writes that touch one professional. Implementations
// must release the lock when the returned unlock func is called.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(context.Context) error, err error)
}

type noopLocker struct{}

func (noopLocker) Lock(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

func professionalLockKey(professionalID uuid.UUID) string {
	return "professional:" + professionalID.String() + ":write"
}
