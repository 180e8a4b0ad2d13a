package aggregates

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/professionals-backend/internal/data/repos"
	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
)

func (a *professionalAggregate) SaveAddress(ctx context.Context, in domainagg.SaveAddressInput) (domainagg.SaveAddressResult, error) {
	const op = "Professional.SaveAddress"
	var out domainagg.SaveAddressResult
	if a.deps.Addresses == nil {
		return out, domainagg.NewError(domainagg.CodeInternal, op, "address repo not configured", nil)
	}

	// Reads first: nothing is written unless every reference resolves.
	if err := a.requireProfessional(ctx, op, in.ProfessionalID); err != nil {
		return out, err
	}
	if err := requireRow(ctx, op, a.deps.Countries, in.CountryID, "country"); err != nil {
		return out, err
	}
	var existing *types.ProfessionalAddress
	if in.AddressID != nil {
		row, err := a.deps.Addresses.GetForProfessional(dbctx.Context{Ctx: ctx}, in.ProfessionalID, *in.AddressID)
		if err != nil {
			return out, MapError(op, err)
		}
		if row == nil {
			return out, domainagg.NotFound(op, "address")
		}
		existing = row
	}

	writeCtx, release, err := a.beginWrite(ctx, op, in.ProfessionalID)
	if err != nil {
		return out, err
	}
	defer release()

	err = executeWrite(writeCtx, a.deps.Base, op, func(dbc dbctx.Context) error {
		row := existing
		if row == nil {
			row = &types.ProfessionalAddress{ProfessionalID: in.ProfessionalID}
		}
		row.Street = strings.TrimSpace(in.Street)
		row.City = strings.TrimSpace(in.City)
		row.State = strings.TrimSpace(in.State)
		row.PostalCode = strings.TrimSpace(in.PostalCode)
		row.Latitude = in.Latitude
		row.Longitude = in.Longitude
		row.CountryID = in.CountryID
		row.IsDefault = in.IsDefault

		var excludeID *uuid.UUID
		if existing != nil {
			excludeID = &existing.ID
		}
		cleared, err := ApplyDefault(dbc, a.deps.Addresses, in.ProfessionalID, excludeID, row.IsDefault)
		if err != nil {
			return err
		}

		if existing == nil {
			if _, err := a.deps.Addresses.Create(dbc, row); err != nil {
				return err
			}
		} else {
			row.UpdatedAt = time.Now().UTC()
			if err := a.deps.Addresses.Update(dbc, row); err != nil {
				return err
			}
		}

		out = domainagg.SaveAddressResult{
			Address:          row,
			Created:          existing == nil,
			ClearedDefaultID: cleared,
		}
		return nil
	})
	if err != nil {
		return domainagg.SaveAddressResult{}, err
	}
	return out, nil
}

// ApplyDefault clears the professional's current default (other than
// excludeID) when the address being saved becomes the default. It must run
// in the same transaction as, and before, the write that sets the new
// default. Returns the id of the address that lost the flag.
func ApplyDefault(dbc dbctx.Context, addresses repos.AddressRepo, professionalID uuid.UUID, excludeID *uuid.UUID, isDefault bool) (*uuid.UUID, error) {
	if !isDefault {
		return nil, nil
	}
	current, err := addresses.GetDefault(dbc, professionalID, excludeID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	if err := addresses.SetDefault(dbc, current.ID, false); err != nil {
		return nil, err
	}
	id := current.ID
	return &id, nil
}

func (a *professionalAggregate) DeleteAddress(ctx context.Context, in domainagg.DeleteAddressInput) error {
	const op = "Professional.DeleteAddress"
	if a.deps.Addresses == nil {
		return domainagg.NewError(domainagg.CodeInternal, op, "address repo not configured", nil)
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
		deleted, err := a.deps.Addresses.Delete(dbc, in.ProfessionalID, in.AddressID)
		if err != nil {
			return err
		}
		if !deleted {
			return domainagg.NotFound(op, "address")
		}
		return nil
	})
}
