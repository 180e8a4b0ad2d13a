package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"github.com/yungbote/professionals-backend/internal/data/aggregates"
	"github.com/yungbote/professionals-backend/internal/data/repos"
	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/platform/validate"
)

// SeedFile is the YAML layout of a reference-data seed.
type SeedFile struct {
	CountryCodes []SeedCodedRow `yaml:"countryCodes"`
	Currencies   []SeedCodedRow `yaml:"currencies"`
	Languages    []SeedCodedRow `yaml:"languages"`
	TimeZones    []SeedCodedRow `yaml:"timeZones"`
	Professions  []SeedNamedRow `yaml:"professions"`
	Services     []SeedNamedRow `yaml:"services"`
}

type SeedCodedRow struct {
	Code         string            `yaml:"code"`
	Description  string            `yaml:"description"`
	Translations map[string]string `yaml:"translations"`
}

type SeedNamedRow struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	Translations map[string]string `yaml:"translations"`
}

// SeedReport counts rows written per catalog.
type SeedReport map[string]int64

type SeedService interface {
	SeedFromFile(ctx context.Context, path string) (SeedReport, error)
	Seed(ctx context.Context, r io.Reader) (SeedReport, error)
}

type seedService struct {
	log          *logger.Logger
	runner       aggregates.TxRunner
	countryCodes repos.CountryCodeRepo
	currencies   repos.CurrencyRepo
	languages    repos.LanguageRepo
	timeZones    repos.TimeZoneRepo
	professions  repos.ProfessionRepo
	services     repos.ServiceRepo
}

func NewSeedService(
	log *logger.Logger,
	runner aggregates.TxRunner,
	countryCodes repos.CountryCodeRepo,
	currencies repos.CurrencyRepo,
	languages repos.LanguageRepo,
	timeZones repos.TimeZoneRepo,
	professions repos.ProfessionRepo,
	services repos.ServiceRepo,
) SeedService {
	return &seedService{
		log:          log.With("service", "SeedService"),
		runner:       runner,
		countryCodes: countryCodes,
		currencies:   currencies,
		languages:    languages,
		timeZones:    timeZones,
		professions:  professions,
		services:     services,
	}
}

func (s *seedService) SeedFromFile(ctx context.Context, path string) (SeedReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return s.Seed(ctx, f)
}

// Seed upserts every catalog in one transaction. Re-running the same file is
// a no-op apart from updated_at.
func (s *seedService) Seed(ctx context.Context, r io.Reader) (SeedReport, error) {
	const op = "Reference.Seed"
	var file SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if err := domainagg.Validation(op, file.validate()); err != nil {
		return nil, err
	}

	report := SeedReport{}
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		steps := []struct {
			name string
			run  func() (int64, error)
		}{
			{"countryCodes", func() (int64, error) { return s.countryCodes.Upsert(dbc, countryRows(file.CountryCodes)) }},
			{"currencies", func() (int64, error) { return s.currencies.Upsert(dbc, currencyRows(file.Currencies)) }},
			{"languages", func() (int64, error) { return s.languages.Upsert(dbc, languageRows(file.Languages)) }},
			{"timeZones", func() (int64, error) { return s.timeZones.Upsert(dbc, timeZoneRows(file.TimeZones)) }},
			{"professions", func() (int64, error) { return s.professions.Upsert(dbc, professionRows(file.Professions)) }},
			{"services", func() (int64, error) { return s.services.Upsert(dbc, serviceRows(file.Services)) }},
		}
		for _, step := range steps {
			n, err := step.run()
			if err != nil {
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
			report[step.name] = n
		}
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	s.log.Info("reference data seeded", "report", map[string]int64(report))
	return report, nil
}

func (f SeedFile) validate() validate.Errors {
	v := validate.New()
	checkCoded := func(field string, rows []SeedCodedRow) {
		seen := map[string]bool{}
		for i, r := range rows {
			key := fmt.Sprintf("%s[%d].code", field, i)
			code := strings.TrimSpace(r.Code)
			if !v.Required(key, code) {
				continue
			}
			if seen[code] {
				v.Add(key, "duplicate code %q", code)
			}
			seen[code] = true
		}
	}
	checkNamed := func(field string, rows []SeedNamedRow) {
		seen := map[string]bool{}
		for i, r := range rows {
			key := fmt.Sprintf("%s[%d].name", field, i)
			name := strings.TrimSpace(r.Name)
			if !v.Required(key, name) {
				continue
			}
			v.MaxLen(key, name, 50)
			if seen[name] {
				v.Add(key, "duplicate name %q", name)
			}
			seen[name] = true
		}
	}
	checkCoded("countryCodes", f.CountryCodes)
	checkCoded("currencies", f.Currencies)
	checkCoded("languages", f.Languages)
	checkCoded("timeZones", f.TimeZones)
	checkNamed("professions", f.Professions)
	checkNamed("services", f.Services)
	return v
}

func translations(in map[string]string) datatypes.JSONMap {
	if len(in) == 0 {
		return datatypes.JSONMap{}
	}
	out := make(datatypes.JSONMap, len(in))
	for k, v := range in {
		out[strings.TrimSpace(k)] = v
	}
	return out
}

func countryRows(in []SeedCodedRow) []*types.CountryCode {
	out := make([]*types.CountryCode, 0, len(in))
	for _, r := range in {
		out = append(out, &types.CountryCode{Code: strings.TrimSpace(r.Code), Description: r.Description, Translations: translations(r.Translations)})
	}
	return out
}

func currencyRows(in []SeedCodedRow) []*types.Currency {
	out := make([]*types.Currency, 0, len(in))
	for _, r := range in {
		out = append(out, &types.Currency{Code: strings.TrimSpace(r.Code), Description: r.Description, Translations: translations(r.Translations)})
	}
	return out
}

func languageRows(in []SeedCodedRow) []*types.Language {
	out := make([]*types.Language, 0, len(in))
	for _, r := range in {
		out = append(out, &types.Language{Code: strings.TrimSpace(r.Code), Description: r.Description, Translations: translations(r.Translations)})
	}
	return out
}

func timeZoneRows(in []SeedCodedRow) []*types.TimeZone {
	out := make([]*types.TimeZone, 0, len(in))
	for _, r := range in {
		out = append(out, &types.TimeZone{Code: strings.TrimSpace(r.Code), Description: r.Description, Translations: translations(r.Translations)})
	}
	return out
}

func professionRows(in []SeedNamedRow) []*types.Profession {
	out := make([]*types.Profession, 0, len(in))
	for _, r := range in {
		out = append(out, &types.Profession{Name: strings.TrimSpace(r.Name), Description: r.Description, Translations: translations(r.Translations)})
	}
	return out
}

func serviceRows(in []SeedNamedRow) []*types.Service {
	out := make([]*types.Service, 0, len(in))
	for _, r := range in {
		out = append(out, &types.Service{Name: strings.TrimSpace(r.Name), Description: r.Description, Translations: translations(r.Translations)})
	}
	return out
}
