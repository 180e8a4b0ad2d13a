package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

type professionalFixture struct {
	*referenceFixture
	professionals *memProfessionals
	svc           ProfessionalService
	currency      uuid.UUID
	country       uuid.UUID
	language      uuid.UUID
	timeZone      uuid.UUID
}

func newProfessionalFixture() *professionalFixture {
	refs := newReferenceFixture()
	f := &professionalFixture{
		referenceFixture: refs,
		professionals:    &memProfessionals{},
		currency:         uuid.New(),
		country:          uuid.New(),
		language:         uuid.New(),
		timeZone:         uuid.New(),
	}
	refs.currencies.add(&types.Currency{ID: f.currency, Code: "EUR"})
	refs.countryCodes.add(&types.CountryCode{ID: f.country, Code: "+351"})
	refs.languages.add(&types.Language{ID: f.language, Code: "pt"})
	refs.timeZones.add(&types.TimeZone{ID: f.timeZone, Code: "Europe/Lisbon"})
	f.svc = NewProfessionalService(logger.Nop(), f.professionals, refs.currencies, refs.countryCodes, refs.languages, refs.timeZones)
	return f
}

func (f *professionalFixture) command(name, email string) CreateProfessionalCommand {
	return CreateProfessionalCommand{
		Name:                name,
		DocumentID:          "DOC-" + name,
		PhoneNumber:         "+351900000000",
		Email:               email,
		CurrencyID:          f.currency,
		PhoneCountryCodeID:  f.country,
		PreferredLanguageID: f.language,
		TimeZoneID:          f.timeZone,
	}
}

func TestCreateProfessionalNormalizesAndPersists(t *testing.T) {
	f := newProfessionalFixture()
	cmd := f.command("  Ana Silva ", " Ana@Example.COM ")

	got, err := f.svc.CreateProfessional(context.Background(), cmd)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Ana Silva", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)

	stored, err := f.svc.GetProfessional(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.ID, stored.ID)
}

func TestCreateProfessionalValidation(t *testing.T) {
	f := newProfessionalFixture()
	cmd := f.command("", "not-an-email")
	cmd.DocumentID = strings.Repeat("9", types.MaxDocumentIDLength+1)
	cmd.CurrencyID = uuid.Nil

	_, err := f.svc.CreateProfessional(context.Background(), cmd)
	var aggErr *domainagg.Error
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, domainagg.CodeValidation, aggErr.Code)
	for _, field := range []string{"name", "email", "documentId", "currencyId"} {
		assert.Contains(t, aggErr.Fields, field)
	}
	assert.Empty(t, f.professionals.writes)
}

func TestCreateProfessionalReportsFirstMissingReference(t *testing.T) {
	f := newProfessionalFixture()
	cmd := f.command("Ana", "ana@example.com")
	cmd.PhoneCountryCodeID = uuid.New()
	cmd.TimeZoneID = uuid.New()

	_, err := f.svc.CreateProfessional(context.Background(), cmd)
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound))
	assert.Contains(t, err.Error(), "Phone country code not found")
	assert.Empty(t, f.professionals.writes)
}

func TestCreateProfessionalDuplicateEmailIsStorageConflict(t *testing.T) {
	f := newProfessionalFixture()
	_, err := f.svc.CreateProfessional(context.Background(), f.command("Ana", "ana@example.com"))
	require.NoError(t, err)

	_, err = f.svc.CreateProfessional(context.Background(), f.command("Bea", "ANA@example.com"))
	var aggErr *domainagg.Error
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, domainagg.CodeStorageConstraint, aggErr.Code)
	require.NotNil(t, aggErr.Storage)
	assert.Equal(t, domainagg.StorageUnique, aggErr.Storage.Kind)
}

func TestUpdateProfessional(t *testing.T) {
	f := newProfessionalFixture()
	created, err := f.svc.CreateProfessional(context.Background(), f.command("Ana", "ana@example.com"))
	require.NoError(t, err)

	upd := UpdateProfessionalCommand{ID: created.ID, CreateProfessionalCommand: f.command("Ana Maria", "ana.maria@example.com")}
	got, err := f.svc.UpdateProfessional(context.Background(), upd)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "ana.maria@example.com", got.Email)

	upd.ID = uuid.New()
	_, err = f.svc.UpdateProfessional(context.Background(), upd)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeNotFound))
}

func TestGetProfessionalNotFound(t *testing.T) {
	f := newProfessionalFixture()
	_, err := f.svc.GetProfessional(context.Background(), uuid.New())
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound))
	assert.Contains(t, err.Error(), "Professional not found")
}

func TestListProfessionalsSortsAndCounts(t *testing.T) {
	f := newProfessionalFixture()
	for i, name := range []string{"Carla", "Ana", "Bruno"} {
		cmd := f.command(name, strings.ToLower(name)+"@example.com")
		cmd.DocumentID = "D" + string(rune('0'+i))
		_, err := f.svc.CreateProfessional(context.Background(), cmd)
		require.NoError(t, err)
	}

	res, err := f.svc.ListProfessionals(context.Background(), PageQuery{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.TotalItems)
	assert.Equal(t, 1, res.TotalPages)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "Ana", res.Items[0].Name)
	assert.Equal(t, "Carla", res.Items[2].Name)

	res, err = f.svc.ListProfessionals(context.Background(), PageQuery{PageNumber: 1, PageSize: 10, Search: "run"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Bruno", res.Items[0].Name)
}
