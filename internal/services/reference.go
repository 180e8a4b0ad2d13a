package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/professionals-backend/internal/data/aggregates"
	"github.com/yungbote/professionals-backend/internal/data/repos"
	"github.com/yungbote/professionals-backend/internal/data/repos/reference"
	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/platform/pagination"
)

// ReferenceService serves the read-only catalogs. Pages are sorted by each
// catalog's natural key: code for country codes and currencies, description
// for languages and time zones, name for professions and services.
type ReferenceService interface {
	GetCountryCodes(ctx context.Context, q PageQuery) (pagination.Result[*types.CountryCode], error)
	GetCurrencies(ctx context.Context, q PageQuery) (pagination.Result[*types.Currency], error)
	GetLanguages(ctx context.Context, q PageQuery) (pagination.Result[*types.Language], error)
	GetTimeZones(ctx context.Context, q PageQuery) (pagination.Result[*types.TimeZone], error)
	GetProfessions(ctx context.Context, q PageQuery) (pagination.Result[*types.Profession], error)
	GetServices(ctx context.Context, q PageQuery) (pagination.Result[*types.Service], error)

	GetCountryCodeByID(ctx context.Context, id uuid.UUID) (*types.CountryCode, error)
	GetCurrencyByID(ctx context.Context, id uuid.UUID) (*types.Currency, error)
	GetLanguageByID(ctx context.Context, id uuid.UUID) (*types.Language, error)
	GetTimeZoneByID(ctx context.Context, id uuid.UUID) (*types.TimeZone, error)
	GetProfessionByID(ctx context.Context, id uuid.UUID) (*types.Profession, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*types.Service, error)
}

type referenceService struct {
	log          *logger.Logger
	countryCodes repos.CountryCodeRepo
	currencies   repos.CurrencyRepo
	languages    repos.LanguageRepo
	timeZones    repos.TimeZoneRepo
	professions  repos.ProfessionRepo
	services     repos.ServiceRepo
}

func NewReferenceService(
	log *logger.Logger,
	countryCodes repos.CountryCodeRepo,
	currencies repos.CurrencyRepo,
	languages repos.LanguageRepo,
	timeZones repos.TimeZoneRepo,
	professions repos.ProfessionRepo,
	services repos.ServiceRepo,
) ReferenceService {
	return &referenceService{
		log:          log.With("service", "ReferenceService"),
		countryCodes: countryCodes,
		currencies:   currencies,
		languages:    languages,
		timeZones:    timeZones,
		professions:  professions,
		services:     services,
	}
}

func (s *referenceService) GetCountryCodes(ctx context.Context, q PageQuery) (pagination.Result[*types.CountryCode], error) {
	return listCatalog(ctx, "Reference.CountryCodes", s.countryCodes, q, func(r *types.CountryCode) string { return r.Code })
}

func (s *referenceService) GetCurrencies(ctx context.Context, q PageQuery) (pagination.Result[*types.Currency], error) {
	return listCatalog(ctx, "Reference.Currencies", s.currencies, q, func(r *types.Currency) string { return r.Code })
}

func (s *referenceService) GetLanguages(ctx context.Context, q PageQuery) (pagination.Result[*types.Language], error) {
	return listCatalog(ctx, "Reference.Languages", s.languages, q, func(r *types.Language) string { return r.Description })
}

func (s *referenceService) GetTimeZones(ctx context.Context, q PageQuery) (pagination.Result[*types.TimeZone], error) {
	return listCatalog(ctx, "Reference.TimeZones", s.timeZones, q, func(r *types.TimeZone) string { return r.Description })
}

func (s *referenceService) GetProfessions(ctx context.Context, q PageQuery) (pagination.Result[*types.Profession], error) {
	return listCatalog(ctx, "Reference.Professions", s.professions, q, func(r *types.Profession) string { return r.Name })
}

func (s *referenceService) GetServices(ctx context.Context, q PageQuery) (pagination.Result[*types.Service], error) {
	return listCatalog(ctx, "Reference.Services", s.services, q, func(r *types.Service) string { return r.Name })
}

func (s *referenceService) GetCountryCodeByID(ctx context.Context, id uuid.UUID) (*types.CountryCode, error) {
	return getCatalog(ctx, "Reference.CountryCode", s.countryCodes, id, "country code")
}

func (s *referenceService) GetCurrencyByID(ctx context.Context, id uuid.UUID) (*types.Currency, error) {
	return getCatalog(ctx, "Reference.Currency", s.currencies, id, "currency")
}

func (s *referenceService) GetLanguageByID(ctx context.Context, id uuid.UUID) (*types.Language, error) {
	return getCatalog(ctx, "Reference.Language", s.languages, id, "language")
}

func (s *referenceService) GetTimeZoneByID(ctx context.Context, id uuid.UUID) (*types.TimeZone, error) {
	return getCatalog(ctx, "Reference.TimeZone", s.timeZones, id, "time zone")
}

func (s *referenceService) GetProfessionByID(ctx context.Context, id uuid.UUID) (*types.Profession, error) {
	return getCatalog(ctx, "Reference.Profession", s.professions, id, "profession")
}

func (s *referenceService) GetServiceByID(ctx context.Context, id uuid.UUID) (*types.Service, error) {
	return getCatalog(ctx, "Reference.Service", s.services, id, "service")
}

// listCatalog fetches one page and the filtered total concurrently, then
// sorts the fetched slice by key.
func listCatalog[T any](ctx context.Context, op string, repo reference.CatalogRepo[T], q PageQuery, key func(*T) string) (pagination.Result[*T], error) {
	var res pagination.Result[*T]
	page, err := q.page()
	if err != nil {
		return res, aggregates.MapError(op, err)
	}

	var (
		rows  []*T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = repo.ListByText(dbctx.Context{Ctx: gctx}, q.Search, page.Skip(), page.Take())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = repo.CountByText(dbctx.Context{Ctx: gctx}, q.Search)
		return err
	})
	if err := g.Wait(); err != nil {
		return res, aggregates.MapError(op, err)
	}

	pagination.SortPage(rows, key)
	return pagination.NewResult(page, total, rows), nil
}

func getCatalog[T any](ctx context.Context, op string, repo reference.CatalogRepo[T], id uuid.UUID, entity string) (*T, error) {
	row, err := repo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if row == nil {
		return nil, domainagg.NotFound(op, entity)
	}
	return row, nil
}
