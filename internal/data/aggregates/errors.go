package aggregates

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/validate"
)

// Postgres SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
)

// SQLite extended result codes for the same violations.
const (
	sqliteConstraintUnique     = "2067"
	sqliteConstraintNotNull    = "1299"
	sqliteConstraintForeignKey = "787"
)

// MapError maps infrastructure and validation failures into aggregate errors.
// Errors that already carry an aggregate code pass through unchanged.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var aggErr *domainagg.Error
	if errors.As(err, &aggErr) {
		return err
	}
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		return domainagg.Validation(op, verrs)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if kind, ok := pgKind(pgErr.Code); ok {
			fault := domainagg.StorageFault{
				Kind:       kind,
				Code:       pgErr.Code,
				Detail:     firstNonEmpty(pgErr.Detail, pgErr.Message),
				Constraint: pgErr.ConstraintName,
			}
			if pgErr.Position > 0 {
				fault.Position = strconv.Itoa(int(pgErr.Position))
			}
			return domainagg.StorageConstraint(op, fault, err)
		}
	}

	if fault, ok := faultFromMessage(err.Error()); ok {
		return domainagg.StorageConstraint(op, fault, err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainagg.NotFound(op, "record")
	}
	return domainagg.Wrap(domainagg.CodeInternal, op, err)
}

// StorageFaultOf returns the storage fault carried by err, if any.
func StorageFaultOf(err error) *domainagg.StorageFault {
	var aggErr *domainagg.Error
	if !errors.As(err, &aggErr) {
		return nil
	}
	return aggErr.Storage
}

func pgKind(code string) (domainagg.StorageKind, bool) {
	switch strings.TrimSpace(code) {
	case pgUniqueViolation:
		return domainagg.StorageUnique, true
	case pgNotNullViolation:
		return domainagg.StorageNotNull, true
	case pgForeignKeyViolation:
		return domainagg.StorageForeignKey, true
	default:
		return "", false
	}
}

// faultFromMessage covers drivers that do not expose a typed error (sqlite)
// and errors that lost their type while being wrapped as text.
func faultFromMessage(raw string) (domainagg.StorageFault, bool) {
	msg := strings.ToLower(raw)
	switch {
	case strings.Contains(msg, "unique constraint failed"):
		return domainagg.StorageFault{Kind: domainagg.StorageUnique, Code: sqliteConstraintUnique, Detail: raw}, true
	case strings.Contains(msg, "not null constraint failed"):
		return domainagg.StorageFault{Kind: domainagg.StorageNotNull, Code: sqliteConstraintNotNull, Detail: raw}, true
	case strings.Contains(msg, "foreign key constraint failed"):
		return domainagg.StorageFault{Kind: domainagg.StorageForeignKey, Code: sqliteConstraintForeignKey, Detail: raw}, true
	case strings.Contains(msg, "duplicate key value"):
		return domainagg.StorageFault{Kind: domainagg.StorageUnique, Code: pgUniqueViolation, Detail: raw}, true
	case strings.Contains(msg, "violates not-null constraint"):
		return domainagg.StorageFault{Kind: domainagg.StorageNotNull, Code: pgNotNullViolation, Detail: raw}, true
	case strings.Contains(msg, "violates foreign key constraint"):
		return domainagg.StorageFault{Kind: domainagg.StorageForeignKey, Code: pgForeignKeyViolation, Detail: raw}, true
	default:
		return domainagg.StorageFault{}, false
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
