package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/professionals-backend/internal/data/aggregates/testutil"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

const seedYAML = `
countryCodes:
  - code: "+351"
    description: Portugal
    translations:
      pt: Portugal
  - code: "+1"
    description: United States
currencies:
  - code: EUR
    description: Euro
languages:
  - code: pt
    description: Portuguese
timeZones:
  - code: Europe/Lisbon
    description: Lisbon
professions:
  - name: Plumber
  - name: Electrician
services:
  - name: Leak repair
    description: Find and fix leaks
`

func newSeedFixture() (*referenceFixture, *testutil.InjectedTxRunner, SeedService) {
	refs := newReferenceFixture()
	runner := &testutil.InjectedTxRunner{}
	svc := NewSeedService(logger.Nop(), runner, refs.countryCodes, refs.currencies, refs.languages, refs.timeZones, refs.professions, refs.services)
	return refs, runner, svc
}

func TestSeedUpsertsEveryCatalogInOneTx(t *testing.T) {
	refs, runner, svc := newSeedFixture()

	report, err := svc.Seed(context.Background(), strings.NewReader(seedYAML))
	require.NoError(t, err)
	assert.Equal(t, SeedReport{
		"countryCodes": 2,
		"currencies":   1,
		"languages":    1,
		"timeZones":    1,
		"professions":  2,
		"services":     1,
	}, report)
	assert.Equal(t, 1, runner.BeginCalls)
	assert.Equal(t, 1, runner.CommitCalls)

	require.Len(t, refs.countryCodes.rows, 2)
	assert.Equal(t, "Portugal", refs.countryCodes.rows[0].Translations["pt"])
	assert.Equal(t, "Find and fix leaks", refs.services.rows[0].Description)
}

func TestSeedIsIdempotent(t *testing.T) {
	refs, _, svc := newSeedFixture()
	_, err := svc.Seed(context.Background(), strings.NewReader(seedYAML))
	require.NoError(t, err)
	_, err = svc.Seed(context.Background(), strings.NewReader(seedYAML))
	require.NoError(t, err)
	assert.Len(t, refs.countryCodes.rows, 2)
	assert.Len(t, refs.professions.rows, 2)
}

func TestSeedRejectsDuplicateKeys(t *testing.T) {
	_, runner, svc := newSeedFixture()
	in := `
professions:
  - name: Plumber
  - name: Plumber
currencies:
  - description: no code
`
	_, err := svc.Seed(context.Background(), strings.NewReader(in))
	var aggErr *domainagg.Error
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, domainagg.CodeValidation, aggErr.Code)
	assert.Contains(t, aggErr.Fields, "professions[1].name")
	assert.Contains(t, aggErr.Fields, "currencies[0].code")
	assert.Zero(t, runner.BeginCalls)
}

func TestSeedRejectsUnknownKeys(t *testing.T) {
	_, _, svc := newSeedFixture()
	_, err := svc.Seed(context.Background(), strings.NewReader("countries:\n  - code: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode seed file")
}

func TestSeedEmptyInputWritesNothing(t *testing.T) {
	refs, _, svc := newSeedFixture()
	report, err := svc.Seed(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, report["countryCodes"])
	assert.Empty(t, refs.countryCodes.rows)
}

func TestSeedFromBundledFile(t *testing.T) {
	_, runner, svc := newSeedFixture()

	report, err := svc.SeedFromFile(context.Background(), "../../data/reference.yaml")
	require.NoError(t, err)
	assert.Equal(t, int64(4), report["countryCodes"])
	assert.Equal(t, int64(5), report["timeZones"])
	assert.Equal(t, int64(4), report["services"])
	assert.Equal(t, 1, runner.CommitCalls)
}

func TestSeedFromMissingFile(t *testing.T) {
	_, runner, svc := newSeedFixture()
	_, err := svc.SeedFromFile(context.Background(), "testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open seed file")
	assert.Zero(t, runner.BeginCalls)
}
