package aggregates

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/professionals-backend/internal/data/repos"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
)

// RowChecker is the existence probe the aggregate needs from a table repo.
type RowChecker interface {
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

type ProfessionalAggregateDeps struct {
	Base BaseDeps

	Professionals RowChecker
	Countries     RowChecker
	Professions   RowChecker
	Services      RowChecker
	Addresses     repos.AddressRepo
	Associations  repos.AssociationRepo
}

type professionalAggregate struct {
	deps ProfessionalAggregateDeps
}

func NewProfessionalAggregate(deps ProfessionalAggregateDeps) domainagg.ProfessionalAggregate {
	deps.Base = deps.Base.withDefaults()
	deps.Base.Contract = domainagg.ProfessionalAggregateContract
	return &professionalAggregate{deps: deps}
}

func (a *professionalAggregate) Contract() domainagg.Contract {
	return a.deps.Base.Contract
}

func (a *professionalAggregate) requireProfessional(ctx context.Context, op string, id uuid.UUID) error {
	return requireRow(ctx, op, a.deps.Professionals, id, "professional")
}

func requireRow(ctx context.Context, op string, repo RowChecker, id uuid.UUID, entity string) error {
	if repo == nil {
		return domainagg.NewError(domainagg.CodeInternal, op, entity+" repo not configured", nil)
	}
	ok, err := repo.Exists(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return MapError(op, err)
	}
	if !ok {
		return domainagg.NotFound(op, entity)
	}
	return nil
}

// beginWrite is the last point where cancellation is honored. The returned
// context survives request cancellation so a started swap commits or rolls
// back as a unit.
func (a *professionalAggregate) beginWrite(ctx context.Context, op string, professionalID uuid.UUID) (context.Context, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, MapError(op, err)
	}
	unlock, err := a.deps.Base.Locker.Lock(ctx, professionalLockKey(professionalID))
	if err != nil {
		return nil, nil, MapError(op, err)
	}
	writeCtx := context.WithoutCancel(ctx)
	release := func() {
		if err := unlock(writeCtx); err != nil {
			a.deps.Base.Log.Warn("release professional lock failed", "op", op, "professional_id", professionalID, "error", err)
		}
	}
	return writeCtx, release, nil
}
