package interfaces

import "context"

//go:generate mockgen -source=submission_locker_interface.go -destination=mocks/mock_submission_locker_interface.go -package=mock_interfaces

// ISubmissionLocker guards against double submission of the same action.
//
// Acquire returns ok=false when the key is already held. The returned token must be passed
// back to Release so that an expired-and-reacquired lock is never released by its old holder.
type ISubmissionLocker interface {
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}
