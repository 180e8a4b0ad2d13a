package reference

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/yungbote/professionals-backend/internal/data/repos/testutil"
	types "github.com/yungbote/professionals-backend/internal/domain"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
)

func TestCountryCodeRepoPagesByCode(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewCountryCodeRepo(db, testutil.Logger(t))
	tag := uuid.NewString()[:6]
	rows := []*types.CountryCode{
		{Code: "+3" + tag, Description: "Gamma " + tag},
		{Code: "+1" + tag, Description: "Alpha " + tag},
		{Code: "+2" + tag, Description: "Beta " + tag},
	}
	n, err := repo.Upsert(dbc, rows)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	page, err := repo.ListByText(dbc, tag, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "+1"+tag, page[0].Code)
	assert.Equal(t, "+2"+tag, page[1].Code)
	assert.Equal(t, "+3"+tag, page[2].Code)

	second, err := repo.ListByText(dbc, tag, 2, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "+3"+tag, second[0].Code)

	total, err := repo.CountByText(dbc, "ALPHA "+tag)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCatalogUpsertRefreshesDescription(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewProfessionRepo(db, testutil.Logger(t))
	name := "Plumber " + uuid.NewString()[:6]

	_, err := repo.Upsert(dbc, []*types.Profession{{Name: name, Description: "old"}})
	require.NoError(t, err)
	_, err = repo.Upsert(dbc, []*types.Profession{{
		Name:         name,
		Description:  "new",
		Translations: datatypes.JSONMap{"pt": "Canalizador"},
	}})
	require.NoError(t, err)

	rows, err := repo.ListByText(dbc, name, 0, 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "new", rows[0].Description)
	assert.Equal(t, "Canalizador", rows[0].Translations["pt"])

	got, err := repo.GetByID(dbc, rows[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	missing, err := repo.GetByID(dbc, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLikeEscapesWildcards(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewServiceRepo(db, testutil.Logger(t))
	tag := uuid.NewString()[:6]
	_, err := repo.Upsert(dbc, []*types.Service{
		{Name: "100% clean " + tag},
		{Name: "100 clean " + tag},
	})
	require.NoError(t, err)

	n, err := repo.CountByText(dbc, "100% clean "+tag)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
