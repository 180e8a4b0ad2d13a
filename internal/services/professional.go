package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/professionals-backend/internal/data/aggregates"
	"github.com/yungbote/professionals-backend/internal/data/repos"
	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/platform/pagination"
)

type ProfessionalService interface {
	CreateProfessional(ctx context.Context, cmd CreateProfessionalCommand) (*ProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, cmd UpdateProfessionalCommand) (*ProfessionalResponse, error)
	GetProfessional(ctx context.Context, id uuid.UUID) (*ProfessionalResponse, error)
	ListProfessionals(ctx context.Context, q PageQuery) (pagination.Result[ProfessionalResponse], error)
}

type professionalService struct {
	log           *logger.Logger
	professionals repos.ProfessionalRepo
	currencies    aggregates.RowChecker
	countryCodes  aggregates.RowChecker
	languages     aggregates.RowChecker
	timeZones     aggregates.RowChecker
}

func NewProfessionalService(
	log *logger.Logger,
	professionals repos.ProfessionalRepo,
	currencies repos.CurrencyRepo,
	countryCodes repos.CountryCodeRepo,
	languages repos.LanguageRepo,
	timeZones repos.TimeZoneRepo,
) ProfessionalService {
	return &professionalService{
		log:           log.With("service", "ProfessionalService"),
		professionals: professionals,
		currencies:    currencies,
		countryCodes:  countryCodes,
		languages:     languages,
		timeZones:     timeZones,
	}
}

func (s *professionalService) CreateProfessional(ctx context.Context, cmd CreateProfessionalCommand) (*ProfessionalResponse, error) {
	const op = "Professional.Create"
	cmd.normalize()
	if err := domainagg.Validation(op, cmd.Validate()); err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, op, cmd); err != nil {
		return nil, err
	}

	row := &types.Professional{
		Name:                cmd.Name,
		DocumentID:          cmd.DocumentID,
		PhoneNumber:         cmd.PhoneNumber,
		Email:               cmd.Email,
		CurrencyID:          cmd.CurrencyID,
		PhoneCountryCodeID:  cmd.PhoneCountryCodeID,
		PreferredLanguageID: cmd.PreferredLanguageID,
		TimeZoneID:          cmd.TimeZoneID,
	}
	created, err := s.professionals.Create(dbctx.Context{Ctx: context.WithoutCancel(ctx)}, row)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	s.log.Info("professional created", "professional_id", created.ID)
	out := toProfessionalResponse(created)
	return &out, nil
}

func (s *professionalService) UpdateProfessional(ctx context.Context, cmd UpdateProfessionalCommand) (*ProfessionalResponse, error) {
	const op = "Professional.Update"
	cmd.normalize()
	if err := domainagg.Validation(op, cmd.Validate()); err != nil {
		return nil, err
	}
	dbc := dbctx.Context{Ctx: ctx}
	existing, err := s.professionals.GetByID(dbc, cmd.ID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if existing == nil {
		return nil, domainagg.NotFound(op, "professional")
	}
	if err := s.resolveReferences(ctx, op, cmd.CreateProfessionalCommand); err != nil {
		return nil, err
	}

	existing.Name = cmd.Name
	existing.DocumentID = cmd.DocumentID
	existing.PhoneNumber = cmd.PhoneNumber
	existing.Email = cmd.Email
	existing.CurrencyID = cmd.CurrencyID
	existing.PhoneCountryCodeID = cmd.PhoneCountryCodeID
	existing.PreferredLanguageID = cmd.PreferredLanguageID
	existing.TimeZoneID = cmd.TimeZoneID

	writeCtx := dbctx.Context{Ctx: context.WithoutCancel(ctx)}
	if err := s.professionals.Update(writeCtx, existing); err != nil {
		return nil, aggregates.MapError(op, err)
	}
	updated, err := s.professionals.GetByID(writeCtx, cmd.ID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if updated == nil {
		return nil, domainagg.NotFound(op, "professional")
	}
	out := toProfessionalResponse(updated)
	return &out, nil
}

func (s *professionalService) GetProfessional(ctx context.Context, id uuid.UUID) (*ProfessionalResponse, error) {
	const op = "Professional.Get"
	row, err := s.professionals.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, domainagg.NotFound(op, "professional")
	}
	out := toProfessionalResponse(row)
	return &out, nil
}

func (s *professionalService) ListProfessionals(ctx context.Context, q PageQuery) (pagination.Result[ProfessionalResponse], error) {
	const op = "Professional.List"
	var res pagination.Result[ProfessionalResponse]
	page, err := q.page()
	if err != nil {
		return res, aggregates.MapError(op, err)
	}

	var (
		rows  []*types.Professional
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.professionals.ListByText(dbctx.Context{Ctx: gctx}, q.Search, page.Skip(), page.Take())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.professionals.CountByText(dbctx.Context{Ctx: gctx}, q.Search)
		return err
	})
	if err := g.Wait(); err != nil {
		return res, aggregates.MapError(op, err)
	}

	items := make([]ProfessionalResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toProfessionalResponse(r))
	}
	pagination.SortPage(items, func(p ProfessionalResponse) string { return p.Name })
	return pagination.NewResult(page, total, items), nil
}

// resolveReferences checks each catalog reference in a fixed order so the
// first missing one is reported.
func (s *professionalService) resolveReferences(ctx context.Context, op string, cmd CreateProfessionalCommand) error {
	checks := []struct {
		repo   aggregates.RowChecker
		id     uuid.UUID
		entity string
	}{
		{s.currencies, cmd.CurrencyID, "currency"},
		{s.countryCodes, cmd.PhoneCountryCodeID, "phone country code"},
		{s.languages, cmd.PreferredLanguageID, "language"},
		{s.timeZones, cmd.TimeZoneID, "time zone"},
	}
	dbc := dbctx.Context{Ctx: ctx}
	for _, c := range checks {
		ok, err := c.repo.Exists(dbc, c.id)
		if err != nil {
			return aggregates.MapError(op, err)
		}
		if !ok {
			return domainagg.NotFound(op, c.entity)
		}
	}
	return nil
}
