package lock

import (
	"context"
	"sync"
	"time"

	"ordenes_campo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type heldLock struct {
	token   string
	expires time.Time
}

// MemoryLocker is the single-process fallback used when no Redis is configured.
type MemoryLocker struct {
	mu    sync.Mutex
	ttl   time.Duration
	held  map[string]heldLock
	clock func() time.Time
}

var _ interfaces.ISubmissionLocker = (*MemoryLocker)(nil)

func NewMemoryLocker(ttl time.Duration) *MemoryLocker {
	return &MemoryLocker{ttl: ttl, held: make(map[string]heldLock), clock: time.Now}
}

func (l *MemoryLocker) Acquire(_ context.Context, key string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if h, ok := l.held[key]; ok && now.Before(h.expires) {
		return "", false, nil
	}
	token := uuid.NewString()
	l.held[key] = heldLock{token: token, expires: now.Add(l.ttl)}
	return token, true, nil
}

func (l *MemoryLocker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.held[key]; ok && h.token == token {
		delete(l.held, key)
	}
	return nil
}
