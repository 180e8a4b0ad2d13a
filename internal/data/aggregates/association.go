package aggregates

import (
	"context"

	"github.com/google/uuid"

	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/pagination"
)

func (a *professionalAggregate) catalogFor(kind types.AssociationKind) RowChecker {
	switch kind {
	case types.KindProfession:
		return a.deps.Professions
	case types.KindService:
		return a.deps.Services
	default:
		return nil
	}
}

func (a *professionalAggregate) AddAssociation(ctx context.Context, in domainagg.AddAssociationInput) (domainagg.AddAssociationResult, error) {
	const op = "Professional.AddAssociation"
	var out domainagg.AddAssociationResult
	if !in.Kind.Valid() {
		return out, domainagg.Validation(op, map[string][]string{"kind": {"kind must be profession or service"}})
	}
	if a.deps.Associations == nil {
		return out, domainagg.NewError(domainagg.CodeInternal, op, "association repo not configured", nil)
	}
	if err := a.requireProfessional(ctx, op, in.ProfessionalID); err != nil {
		return out, err
	}
	if err := requireRow(ctx, op, a.catalogFor(in.Kind), in.TargetID, string(in.Kind)); err != nil {
		return out, err
	}

	writeCtx, release, err := a.beginWrite(ctx, op, in.ProfessionalID)
	if err != nil {
		return out, err
	}
	defer release()

	err = executeWrite(writeCtx, a.deps.Base, op, func(dbc dbctx.Context) error {
		linked, err := a.deps.Associations.Exists(dbc, in.Kind, in.ProfessionalID, in.TargetID)
		if err != nil {
			return err
		}
		if linked {
			return domainagg.DuplicateAssociation(op, string(in.Kind))
		}
		count, err := a.deps.Associations.Count(dbc, in.Kind, in.ProfessionalID)
		if err != nil {
			return err
		}
		limit := in.Kind.Cap()
		if count >= int64(limit) {
			return domainagg.LimitExceeded(op, string(in.Kind), limit)
		}
		linkID, err := a.deps.Associations.Create(dbc, in.Kind, in.ProfessionalID, in.TargetID)
		if err != nil {
			return err
		}
		out = domainagg.AddAssociationResult{
			LinkID:       linkID,
			Target:       domainagg.AssociationTarget{ID: in.TargetID},
			CurrentCount: int(count) + 1,
		}
		return nil
	})
	if err != nil {
		return domainagg.AddAssociationResult{}, err
	}
	return out, nil
}

func (a *professionalAggregate) RemoveAssociation(ctx context.Context, in domainagg.RemoveAssociationInput) error {
	const op = "Professional.RemoveAssociation"
	if !in.Kind.Valid() {
		return domainagg.Validation(op, map[string][]string{"kind": {"kind must be profession or service"}})
	}
	if a.deps.Associations == nil {
		return domainagg.NewError(domainagg.CodeInternal, op, "association repo not configured", nil)
	}
	if err := a.requireProfessional(ctx, op, in.ProfessionalID); err != nil {
		return err
	}

	writeCtx, release, err := a.beginWrite(ctx, op, in.ProfessionalID)
	if err != nil {
		return err
	}
	defer release()

	return executeWrite(writeCtx, a.deps.Base, op, func(dbc dbctx.Context) error {
		removed, err := a.deps.Associations.Delete(dbc, in.Kind, in.ProfessionalID, in.TargetID)
		if err != nil {
			return err
		}
		if !removed {
			return domainagg.NotFound(op, string(in.Kind)+" association")
		}
		return nil
	})
}

func (a *professionalAggregate) ListAssociations(ctx context.Context, professionalID uuid.UUID, kind types.AssociationKind) ([]domainagg.AssociationTarget, error) {
	const op = "Professional.ListAssociations"
	if !kind.Valid() {
		return nil, domainagg.Validation(op, map[string][]string{"kind": {"kind must be profession or service"}})
	}
	if a.deps.Associations == nil {
		return nil, domainagg.NewError(domainagg.CodeInternal, op, "association repo not configured", nil)
	}
	if err := a.requireProfessional(ctx, op, professionalID); err != nil {
		return nil, err
	}
	rows, err := a.deps.Associations.ListTargets(dbctx.Context{Ctx: ctx}, kind, professionalID)
	if err != nil {
		return nil, MapError(op, err)
	}
	out := make([]domainagg.AssociationTarget, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainagg.AssociationTarget{
			ID:           r.ID,
			Name:         r.Name,
			Description:  r.Description,
			AssociatedAt: r.LinkedAt,
		})
	}
	pagination.SortPage(out, func(t domainagg.AssociationTarget) string { return t.Name })
	return out, nil
}
