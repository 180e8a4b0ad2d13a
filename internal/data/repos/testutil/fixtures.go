package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/professionals-backend/internal/domain"
)

// Refs holds one row of each catalog a professional must reference.
type Refs struct {
	Country  *types.CountryCode
	Currency *types.Currency
	Language *types.Language
	TimeZone *types.TimeZone
}

func SeedRefs(tb testing.TB, ctx context.Context, tx *gorm.DB) Refs {
	tb.Helper()
	suffix := uuid.NewString()[:8]
	refs := Refs{
		Country:  &types.CountryCode{Code: "+" + suffix, Description: "Country " + suffix},
		Currency: &types.Currency{Code: "C" + suffix, Description: "Currency " + suffix},
		Language: &types.Language{Code: "l" + suffix, Description: "Language " + suffix},
		TimeZone: &types.TimeZone{Code: "tz/" + suffix, Description: "Zone " + suffix},
	}
	for _, row := range []any{refs.Country, refs.Currency, refs.Language, refs.TimeZone} {
		if err := tx.WithContext(ctx).Create(row).Error; err != nil {
			tb.Fatalf("seed reference row: %v", err)
		}
	}
	return refs
}

func SeedProfessional(tb testing.TB, ctx context.Context, tx *gorm.DB, refs Refs, name string) *types.Professional {
	tb.Helper()
	suffix := uuid.NewString()[:8]
	p := &types.Professional{
		Name:                name,
		DocumentID:          "D" + suffix,
		PhoneNumber:         "+1" + suffix,
		Email:               suffix + "@example.com",
		CurrencyID:          refs.Currency.ID,
		PhoneCountryCodeID:  refs.Country.ID,
		PreferredLanguageID: refs.Language.ID,
		TimeZoneID:          refs.TimeZone.ID,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed professional: %v", err)
	}
	return p
}

func SeedProfession(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Profession {
	tb.Helper()
	p := &types.Profession{Name: name + " " + uuid.NewString()[:6], Description: name}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profession: %v", err)
	}
	return p
}

func SeedService(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Service {
	tb.Helper()
	s := &types.Service{Name: name + " " + uuid.NewString()[:6], Description: name}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed service: %v", err)
	}
	return s
}
