package ledger

import "context"

type heldLocksKey struct{}

// held - множество аккаунтов, заблокированных выше по стеку вызовов
type held map[int64]struct{}

func (s *serv) WithAccountLock(ctx context.Context, accountID int64, fn func(ctx context.Context) error) error {
	if holds(ctx, accountID) {
		return fn(ctx)
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	return fn(withHeld(ctx, accountID))
}

func holds(ctx context.Context, accountID int64) bool {
	h, _ := ctx.Value(heldLocksKey{}).(held)
	_, ok := h[accountID]
	return ok
}

func withHeld(ctx context.Context, accountID int64) context.Context {
	prev, _ := ctx.Value(heldLocksKey{}).(held)
	next := make(held, len(prev)+1)
	for id := range prev {
		next[id] = struct{}{}
	}
	next[accountID] = struct{}{}
	return context.WithValue(ctx, heldLocksKey{}, next)
}
