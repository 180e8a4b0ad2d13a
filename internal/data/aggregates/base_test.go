package aggregates

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
)

func TestExecuteWriteObservesSuccessStatus(t *testing.T) {
	hooks := &spyHooks{}
	err := executeWrite(context.Background(), BaseDeps{
		Runner: spyTxRunner{},
		Hooks:  hooks,
	}, "aggregate.test.success", func(_ dbctx.Context) error { return nil })
	require.NoError(t, err)
	require.Len(t, hooks.Operations, 1)
	assert.Equal(t, "success", hooks.Operations[0].Status)
}

func TestExecuteWriteCountsConflicts(t *testing.T) {
	t.Run("duplicate association", func(t *testing.T) {
		hooks := &spyHooks{}
		err := executeWrite(context.Background(), BaseDeps{Runner: spyTxRunner{}, Hooks: hooks}, "aggregate.test.dup",
			func(_ dbctx.Context) error {
				return domainagg.DuplicateAssociation("aggregate.test.dup", "service")
			})
		assert.True(t, domainagg.IsCode(err, domainagg.CodeDuplicateAssociation))
		assert.Equal(t, []string{"aggregate.test.dup"}, hooks.Conflicts)
		assert.Empty(t, hooks.Limits)
	})

	t.Run("unique violation", func(t *testing.T) {
		hooks := &spyHooks{}
		err := executeWrite(context.Background(), BaseDeps{Runner: spyTxRunner{}, Hooks: hooks}, "aggregate.test.unique",
			func(_ dbctx.Context) error {
				return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
			})
		assert.True(t, domainagg.IsCode(err, domainagg.CodeStorageConstraint))
		assert.Equal(t, []string{"aggregate.test.unique"}, hooks.Conflicts)
		require.Len(t, hooks.Operations, 1)
		assert.Equal(t, string(domainagg.CodeStorageConstraint), hooks.Operations[0].Status)
	})

	t.Run("limit", func(t *testing.T) {
		hooks := &spyHooks{}
		err := executeWrite(context.Background(), BaseDeps{Runner: spyTxRunner{}, Hooks: hooks}, "aggregate.test.limit",
			func(_ dbctx.Context) error {
				return domainagg.LimitExceeded("aggregate.test.limit", "profession", 3)
			})
		assert.True(t, domainagg.IsCode(err, domainagg.CodeLimitExceeded))
		assert.Equal(t, []string{"aggregate.test.limit"}, hooks.Limits)
		assert.Empty(t, hooks.Conflicts)
	})
}

func TestExecuteWriteRefusesCallerOwnedContract(t *testing.T) {
	hooks := &spyHooks{}
	runner := &countingTxRunner{}
	called := false
	err := executeWrite(context.Background(), BaseDeps{
		Runner:   runner,
		Hooks:    hooks,
		Contract: domainagg.Contract{Name: "Borrowed", TxOwnership: domainagg.TxOwnedByCaller},
	}, "aggregate.test.borrowed", func(_ dbctx.Context) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeInternal))
	assert.Contains(t, err.Error(), "Borrowed")
	assert.Zero(t, runner.calls)
	assert.False(t, called)
	require.Len(t, hooks.Operations, 1)
	assert.Equal(t, string(domainagg.CodeInternal), hooks.Operations[0].Status)
}

func TestExecuteWriteOpensTxForAggregateOwnedContract(t *testing.T) {
	for _, contract := range []domainagg.Contract{
		{},
		domainagg.ProfessionalAggregateContract,
	} {
		runner := &countingTxRunner{}
		err := executeWrite(context.Background(), BaseDeps{Runner: runner, Contract: contract}, "aggregate.test.owned",
			func(_ dbctx.Context) error { return nil })
		require.NoError(t, err)
		assert.Equal(t, 1, runner.calls, contract.Name)
	}
}

func TestAggregateErrorStatus(t *testing.T) {
	assert.Equal(t, "success", aggregateErrorStatus(nil))
	assert.Equal(t, string(domainagg.CodeNotFound), aggregateErrorStatus(domainagg.NotFound("op", "country")))
	assert.Equal(t, string(domainagg.CodeInternal), aggregateErrorStatus(context.DeadlineExceeded))
}

type spyTxRunner struct{}

func (spyTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(dbctx.Context{Ctx: ctx})
}

type countingTxRunner struct {
	calls int
}

func (r *countingTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.calls++
	return fn(dbctx.Context{Ctx: ctx})
}

type spyHooks struct {
	Operations []spyOperation
	Conflicts  []string
	Limits     []string
}

type spyOperation struct {
	Name   string
	Status string
}

func (h *spyHooks) ObserveOperation(name, status string, _ time.Duration) {
	h.Operations = append(h.Operations, spyOperation{Name: name, Status: status})
}

func (h *spyHooks) IncConflict(name string) {
	h.Conflicts = append(h.Conflicts, name)
}

func (h *spyHooks) IncLimitExceeded(name string) {
	h.Limits = append(h.Limits, name)
}
