package reference

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/professionals-backend/internal/domain"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/platform/textutil"
)

// CatalogRepo reads one reference table. Rows are ordered by the table's
// natural key; the text filter matches the key and description.
type CatalogRepo[T any] interface {
	GetByID(dbc dbctx.Context, id uuid.UUID) (*T, error)
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
	List(dbc dbctx.Context, skip, take int) ([]*T, error)
	Count(dbc dbctx.Context) (int64, error)
	ListByText(dbc dbctx.Context, search string, skip, take int) ([]*T, error)
	CountByText(dbc dbctx.Context, search string) (int64, error)
	// Upsert inserts rows or refreshes description and translations of rows
	// that already exist under the same natural key.
	Upsert(dbc dbctx.Context, rows []*T) (int64, error)
}

type CountryCodeRepo = CatalogRepo[types.CountryCode]
type CurrencyRepo = CatalogRepo[types.Currency]
type LanguageRepo = CatalogRepo[types.Language]
type TimeZoneRepo = CatalogRepo[types.TimeZone]
type ProfessionRepo = CatalogRepo[types.Profession]
type ServiceRepo = CatalogRepo[types.Service]

type catalogTable struct {
	name     string
	orderBy  string
	keyCol   string
	searchIn []string
}

type catalogRepo[T any] struct {
	db    *gorm.DB
	log   *logger.Logger
	table catalogTable
}

func newCatalogRepo[T any](db *gorm.DB, baseLog *logger.Logger, table catalogTable) CatalogRepo[T] {
	return &catalogRepo[T]{db: db, log: baseLog.With("repo", table.name), table: table}
}

func NewCountryCodeRepo(db *gorm.DB, baseLog *logger.Logger) CountryCodeRepo {
	return newCatalogRepo[types.CountryCode](db, baseLog, catalogTable{
		name: "CountryCodeRepo", orderBy: "code", keyCol: "code", searchIn: []string{"code", "description"},
	})
}

func NewCurrencyRepo(db *gorm.DB, baseLog *logger.Logger) CurrencyRepo {
	return newCatalogRepo[types.Currency](db, baseLog, catalogTable{
		name: "CurrencyRepo", orderBy: "code", keyCol: "code", searchIn: []string{"code", "description"},
	})
}

func NewLanguageRepo(db *gorm.DB, baseLog *logger.Logger) LanguageRepo {
	return newCatalogRepo[types.Language](db, baseLog, catalogTable{
		name: "LanguageRepo", orderBy: "description", keyCol: "code", searchIn: []string{"description"},
	})
}

func NewTimeZoneRepo(db *gorm.DB, baseLog *logger.Logger) TimeZoneRepo {
	return newCatalogRepo[types.TimeZone](db, baseLog, catalogTable{
		name: "TimeZoneRepo", orderBy: "description", keyCol: "code", searchIn: []string{"description"},
	})
}

func NewProfessionRepo(db *gorm.DB, baseLog *logger.Logger) ProfessionRepo {
	return newCatalogRepo[types.Profession](db, baseLog, catalogTable{
		name: "ProfessionRepo", orderBy: "name", keyCol: "name", searchIn: []string{"name"},
	})
}

func NewServiceRepo(db *gorm.DB, baseLog *logger.Logger) ServiceRepo {
	return newCatalogRepo[types.Service](db, baseLog, catalogTable{
		name: "ServiceRepo", orderBy: "name", keyCol: "name", searchIn: []string{"name"},
	})
}

func (r *catalogRepo[T]) GetByID(dbc dbctx.Context, id uuid.UUID) (*T, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var rows []*T
	if err := dbc.Conn(r.db).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *catalogRepo[T]) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	var count int64
	if err := dbc.Conn(r.db).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *catalogRepo[T]) List(dbc dbctx.Context, skip, take int) ([]*T, error) {
	return r.ListByText(dbc, "", skip, take)
}

func (r *catalogRepo[T]) Count(dbc dbctx.Context) (int64, error) {
	return r.CountByText(dbc, "")
}

func (r *catalogRepo[T]) ListByText(dbc dbctx.Context, search string, skip, take int) ([]*T, error) {
	out := []*T{}
	err := r.filtered(dbc, search).
		Order(r.table.orderBy + " ASC").
		Order("id ASC").
		Offset(skip).
		Limit(take).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo[T]) CountByText(dbc dbctx.Context, search string) (int64, error) {
	var count int64
	if err := r.filtered(dbc, search).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *catalogRepo[T]) Upsert(dbc dbctx.Context, rows []*T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := dbc.Conn(r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: r.table.keyCol}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "translations", "updated_at"}),
	}).Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *catalogRepo[T]) filtered(dbc dbctx.Context, search string) *gorm.DB {
	q := dbc.Conn(r.db).Model(new(T))
	folded := textutil.FoldSearch(search)
	if folded == "" || len(r.table.searchIn) == 0 {
		return q
	}
	pattern := textutil.LikePattern(folded)
	conds := make([]string, 0, len(r.table.searchIn))
	args := make([]any, 0, len(r.table.searchIn))
	for _, col := range r.table.searchIn {
		conds = append(conds, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
		args = append(args, pattern)
	}
	return q.Where("("+strings.Join(conds, " OR ")+")", args...)
}
