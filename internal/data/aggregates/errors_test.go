package aggregates

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/validate"
)

func TestMapErrorClassifiesPgCodes(t *testing.T) {
	cases := []struct {
		code string
		kind domainagg.StorageKind
	}{
		{"23505", domainagg.StorageUnique},
		{"23502", domainagg.StorageNotNull},
		{"23503", domainagg.StorageForeignKey},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{
				Code:           tc.code,
				Message:        "constraint violated",
				Detail:         "Key (email)=(a@b.c) already exists.",
				Position:       12,
				ConstraintName: "idx_professional_email",
			}
			err := MapError("op", fmt.Errorf("insert: %w", pgErr))
			require.True(t, domainagg.IsCode(err, domainagg.CodeStorageConstraint))
			fault := StorageFaultOf(err)
			require.NotNil(t, fault)
			assert.Equal(t, tc.kind, fault.Kind)
			assert.Equal(t, tc.code, fault.Code)
			assert.Equal(t, "Key (email)=(a@b.c) already exists.", fault.Detail)
			assert.Equal(t, "12", fault.Position)
			assert.Equal(t, "idx_professional_email", fault.Constraint)
		})
	}
}

func TestMapErrorSQLiteMessages(t *testing.T) {
	err := MapError("op", errors.New("UNIQUE constraint failed: professional.email"))
	fault := StorageFaultOf(err)
	require.NotNil(t, fault)
	assert.Equal(t, domainagg.StorageUnique, fault.Kind)
	assert.Equal(t, "2067", fault.Code)

	err = MapError("op", errors.New("FOREIGN KEY constraint failed"))
	fault = StorageFaultOf(err)
	require.NotNil(t, fault)
	assert.Equal(t, domainagg.StorageForeignKey, fault.Kind)
}

func TestMapErrorPassesAggregateErrorsThrough(t *testing.T) {
	orig := domainagg.NotFound("inner", "country")
	assert.Same(t, orig, MapError("outer", orig))
}

func TestMapErrorValidation(t *testing.T) {
	v := validate.New()
	v.Add("pageSize", "pageSize must be between 1 and 100")
	err := MapError("op", v)
	var aggErr *domainagg.Error
	require.True(t, errors.As(err, &aggErr))
	assert.Equal(t, domainagg.CodeValidation, aggErr.Code)
	assert.Equal(t, []string{"pageSize must be between 1 and 100"}, aggErr.Fields["pageSize"])
}

func TestMapErrorFallbacks(t *testing.T) {
	assert.True(t, domainagg.IsCode(MapError("op", gorm.ErrRecordNotFound), domainagg.CodeNotFound))
	boom := errors.New("boom")
	err := MapError("op", boom)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeInternal))
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, MapError("op", nil))
}
