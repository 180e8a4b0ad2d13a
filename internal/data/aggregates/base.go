package aggregates

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

const tracerName = "github.com/yungbote/professionals-backend/internal/data/aggregates"

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
	Locker Locker

	// Contract is the write boundary of the aggregate using these deps.
	Contract domainagg.Contract
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	if d.Locker == nil {
		d.Locker = noopLocker{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return d
}

// executeWrite runs fn in one transaction and normalizes its failure. It
// refuses to open a transaction for a contract whose writes are caller-owned.
// ctx must already be detached from request cancellation when the caller
// needs the write to finish once started.
func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate.write"
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	if name := deps.Contract.Name; name != "" {
		span.SetAttributes(attribute.String("aggregate.name", name))
	}
	if len(deps.Contract.Invariants) > 0 {
		span.SetAttributes(attribute.StringSlice("aggregate.invariants", deps.Contract.Invariants))
	}

	var err error
	if deps.Contract.RequiresAggregateOwnedTx() {
		err = deps.Runner.InTx(ctx, fn)
	} else {
		// Caller-owned writes must come through the caller's tx, never here.
		err = domainagg.NewError(domainagg.CodeInternal, op, "aggregate "+deps.Contract.Name+" does not own its write transaction", nil)
	}
	mapped := MapError(op, err)

	status := "success"
	if mapped != nil {
		status = aggregateErrorStatus(mapped)
		if isConflict(mapped) {
			deps.Hooks.IncConflict(op)
		}
		if domainagg.IsCode(mapped, domainagg.CodeLimitExceeded) {
			deps.Hooks.IncLimitExceeded(op)
		}
		span.SetStatus(codes.Error, status)
	}
	span.SetAttributes(attribute.String("aggregate.status", status))
	deps.Hooks.ObserveOperation(op, status, time.Since(start))
	return mapped
}

func aggregateErrorStatus(err error) string {
	if err == nil {
		return "success"
	}
	code := strings.TrimSpace(string(domainagg.CodeOf(err)))
	if code == "" {
		code = strings.TrimSpace(string(domainagg.CodeOf(MapError("aggregate.status", err))))
	}
	if code == "" {
		return "failure"
	}
	return code
}

func isConflict(err error) bool {
	if domainagg.IsCode(err, domainagg.CodeDuplicateAssociation) {
		return true
	}
	fault := StorageFaultOf(err)
	return fault != nil && fault.Kind == domainagg.StorageUnique
}
