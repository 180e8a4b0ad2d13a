package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/professionals-backend/internal/data/aggregates"
	"github.com/yungbote/professionals-backend/internal/data/repos"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

type AddressService interface {
	CreateAddress(ctx context.Context, cmd SaveAddressCommand) (*AddressResponse, error)
	UpdateAddress(ctx context.Context, cmd SaveAddressCommand) (*AddressResponse, error)
	GetAddress(ctx context.Context, professionalID, addressID uuid.UUID) (*AddressResponse, error)
	ListAddresses(ctx context.Context, professionalID uuid.UUID) ([]AddressResponse, error)
	DeleteAddress(ctx context.Context, professionalID, addressID uuid.UUID) error
}

type addressService struct {
	log           *logger.Logger
	aggregate     domainagg.ProfessionalAggregate
	professionals aggregates.RowChecker
	addresses     repos.AddressRepo
}

func NewAddressService(log *logger.Logger, aggregate domainagg.ProfessionalAggregate, professionals repos.ProfessionalRepo, addresses repos.AddressRepo) AddressService {
	return &addressService{
		log:           log.With("service", "AddressService"),
		aggregate:     aggregate,
		professionals: professionals,
		addresses:     addresses,
	}
}

func (s *addressService) CreateAddress(ctx context.Context, cmd SaveAddressCommand) (*AddressResponse, error) {
	cmd.AddressID = nil
	return s.save(ctx, "Address.Create", cmd)
}

func (s *addressService) UpdateAddress(ctx context.Context, cmd SaveAddressCommand) (*AddressResponse, error) {
	if cmd.AddressID == nil {
		return nil, domainagg.Validation("Address.Update", map[string][]string{"addressId": {"addressId is required"}})
	}
	return s.save(ctx, "Address.Update", cmd)
}

func (s *addressService) save(ctx context.Context, op string, cmd SaveAddressCommand) (*AddressResponse, error) {
	if err := domainagg.Validation(op, cmd.Validate()); err != nil {
		return nil, err
	}
	res, err := s.aggregate.SaveAddress(ctx, domainagg.SaveAddressInput{
		ProfessionalID: cmd.ProfessionalID,
		AddressID:      cmd.AddressID,
		Street:         cmd.Street,
		City:           cmd.City,
		State:          cmd.State,
		PostalCode:     cmd.PostalCode,
		Latitude:       cmd.Latitude,
		Longitude:      cmd.Longitude,
		IsDefault:      cmd.IsDefault,
		CountryID:      cmd.CountryID,
	})
	if err != nil {
		return nil, err
	}
	if res.ClearedDefaultID != nil {
		s.log.Debug("default address moved",
			"professional_id", cmd.ProfessionalID,
			"from", *res.ClearedDefaultID,
			"to", res.Address.ID,
		)
	}
	out := toAddressResponse(res.Address)
	return &out, nil
}

func (s *addressService) GetAddress(ctx context.Context, professionalID, addressID uuid.UUID) (*AddressResponse, error) {
	const op = "Address.Get"
	if err := s.requireProfessional(ctx, op, professionalID); err != nil {
		return nil, err
	}
	row, err := s.addresses.GetForProfessional(dbctx.Context{Ctx: ctx}, professionalID, addressID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, domainagg.NotFound(op, "address")
	}
	out := toAddressResponse(row)
	return &out, nil
}

func (s *addressService) ListAddresses(ctx context.Context, professionalID uuid.UUID) ([]AddressResponse, error) {
	const op = "Address.List"
	if err := s.requireProfessional(ctx, op, professionalID); err != nil {
		return nil, err
	}
	rows, err := s.addresses.ListByProfessional(dbctx.Context{Ctx: ctx}, professionalID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	out := make([]AddressResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAddressResponse(r))
	}
	return out, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, professionalID, addressID uuid.UUID) error {
	return s.aggregate.DeleteAddress(ctx, domainagg.DeleteAddressInput{
		ProfessionalID: professionalID,
		AddressID:      addressID,
	})
}

func (s *addressService) requireProfessional(ctx context.Context, op string, id uuid.UUID) error {
	ok, err := s.professionals.Exists(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return aggregates.MapError(op, err)
	}
	if !ok {
		return domainagg.NotFound(op, "professional")
	}
	return nil
}
