package professional

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/professionals-backend/internal/domain"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/platform/textutil"
)

// ProfessionalRepo reads and writes professional rows. Lookups return
// (nil, nil) when the row does not exist.
type ProfessionalRepo interface {
	Create(dbc dbctx.Context, p *types.Professional) (*types.Professional, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Professional, error)
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
	List(dbc dbctx.Context, skip, take int) ([]*types.Professional, error)
	Count(dbc dbctx.Context) (int64, error)
	ListByText(dbc dbctx.Context, search string, skip, take int) ([]*types.Professional, error)
	CountByText(dbc dbctx.Context, search string) (int64, error)
	Update(dbc dbctx.Context, p *types.Professional) error
}

type professionalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfessionalRepo(db *gorm.DB, baseLog *logger.Logger) ProfessionalRepo {
	return &professionalRepo{db: db, log: baseLog.With("repo", "ProfessionalRepo")}
}

func (r *professionalRepo) Create(dbc dbctx.Context, p *types.Professional) (*types.Professional, error) {
	if p == nil {
		return nil, errors.New("nil professional")
	}
	if err := dbc.Conn(r.db).Omit("Addresses", "Professions", "Services").Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *professionalRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Professional, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.Professional
	err := dbc.Conn(r.db).Where("id = ?", id).Limit(1).Find(&out).Error
	if err != nil {
		return nil, err
	}
	if out.ID == uuid.Nil {
		return nil, nil
	}
	return &out, nil
}

func (r *professionalRepo) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	var count int64
	if err := dbc.Conn(r.db).Model(&types.Professional{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *professionalRepo) List(dbc dbctx.Context, skip, take int) ([]*types.Professional, error) {
	return r.ListByText(dbc, "", skip, take)
}

func (r *professionalRepo) Count(dbc dbctx.Context) (int64, error) {
	return r.CountByText(dbc, "")
}

func (r *professionalRepo) ListByText(dbc dbctx.Context, search string, skip, take int) ([]*types.Professional, error) {
	var out []*types.Professional
	err := r.filtered(dbc, search).
		Order("name ASC").
		Order("id ASC").
		Offset(skip).
		Limit(take).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *professionalRepo) CountByText(dbc dbctx.Context, search string) (int64, error) {
	var count int64
	if err := r.filtered(dbc, search).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *professionalRepo) Update(dbc dbctx.Context, p *types.Professional) error {
	if p == nil || p.ID == uuid.Nil {
		return errors.New("missing professional id")
	}
	return dbc.Conn(r.db).
		Model(&types.Professional{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":                  p.Name,
			"document_id":           p.DocumentID,
			"phone_number":          p.PhoneNumber,
			"email":                 p.Email,
			"currency_id":           p.CurrencyID,
			"phone_country_code_id": p.PhoneCountryCodeID,
			"preferred_language_id": p.PreferredLanguageID,
			"time_zone_id":          p.TimeZoneID,
			"updated_at":            gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

func (r *professionalRepo) filtered(dbc dbctx.Context, search string) *gorm.DB {
	q := dbc.Conn(r.db).Model(&types.Professional{})
	if folded := textutil.FoldSearch(search); folded != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, textutil.LikePattern(folded))
	}
	return q
}
