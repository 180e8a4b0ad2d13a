package testutil

import (
	"context"
	"sync"

	"github.com/yungbote/professionals-backend/internal/data/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
)

// Snapshotter lets an in-memory store take part in InjectedTxRunner
// rollbacks. Restore receives the value returned by the matching Snapshot.
type Snapshotter interface {
	Snapshot() any
	Restore(snapshot any)
}

// InjectedTxRunner runs aggregate bodies without a database. Failures can be
// injected at begin, before the body, or at commit. When Store is set its
// state is restored on every rollback, so fakes observe all-or-nothing writes.
type InjectedTxRunner struct {
	mu sync.Mutex

	Store Snapshotter

	FailBegin      error
	FailBeforeBody error
	FailCommit     error

	BeginCalls    int
	CommitCalls   int
	RollbackCalls int

	// LastCtx is the context the most recent body ran with.
	LastCtx context.Context
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.BeginCalls++
	r.LastCtx = ctx
	failBegin := r.FailBegin
	failBeforeBody := r.FailBeforeBody
	failCommit := r.FailCommit
	store := r.Store
	r.mu.Unlock()

	if failBegin != nil {
		return failBegin
	}
	if failBeforeBody != nil {
		r.rollback(nil, nil)
		return failBeforeBody
	}
	if fn == nil {
		r.commit()
		return nil
	}

	var snap any
	if store != nil {
		snap = store.Snapshot()
	}
	if err := fn(dbctx.Context{Ctx: ctx}); err != nil {
		r.rollback(store, snap)
		return err
	}
	if failCommit != nil {
		r.rollback(store, snap)
		return failCommit
	}
	r.commit()
	return nil
}

func (r *InjectedTxRunner) commit() {
	r.mu.Lock()
	r.CommitCalls++
	r.mu.Unlock()
}

func (r *InjectedTxRunner) rollback(store Snapshotter, snap any) {
	if store != nil {
		store.Restore(snap)
	}
	r.mu.Lock()
	r.RollbackCalls++
	r.mu.Unlock()
}
