package ledger

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "carteras/internal/errors"

	"golang.org/x/sync/semaphore"
)

// Guard serializes mutating operations per wallet. Transfers lock both
// wallets in ascending ID order regardless of direction, so two transfers
// running in opposite directions cannot deadlock. Acquisition is bounded:
// waiting longer than the configured timeout fails with a conflict instead
// of blocking.
type Guard struct {
	mu    sync.Mutex
	locks map[uint]*semaphore.Weighted
	wait  time.Duration
}

func NewGuard(wait time.Duration) *Guard {
	if wait <= 0 {
		wait = DefaultLockWait
	}
	return &Guard{
		locks: make(map[uint]*semaphore.Weighted),
		wait:  wait,
	}
}

func (g *Guard) lockFor(id uint) *semaphore.Weighted {
	g.mu.Lock()
	defer g.mu.Unlock()
	sem, ok := g.locks[id]
	if !ok {
		sem = semaphore.NewWeighted(1)
		g.locks[id] = sem
	}
	return sem
}

// Lock acquires the locks for the given wallets in canonical order and
// returns a release function. On timeout it releases everything it already
// holds and reports ErrConflict.
func (g *Guard) Lock(ctx context.Context, ids ...uint) (func(), error) {
	ordered := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			ordered = append(ordered, id)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	lockCtx, cancel := context.WithTimeout(ctx, g.wait)
	defer cancel()

	held := make([]*semaphore.Weighted, 0, len(ordered))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Release(1)
		}
	}

	for _, id := range ordered {
		sem := g.lockFor(id)
		if err := sem.Acquire(lockCtx, 1); err != nil {
			release()
			return nil, apperrors.ErrConflict
		}
		held = append(held, sem)
	}
	return release, nil
}
