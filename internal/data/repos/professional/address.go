package professional

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/professionals-backend/internal/domain"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

type AddressRepo interface {
	Create(dbc dbctx.Context, a *types.ProfessionalAddress) (*types.ProfessionalAddress, error)
	// GetForProfessional returns the address only when it belongs to professionalID.
	GetForProfessional(dbc dbctx.Context, professionalID, addressID uuid.UUID) (*types.ProfessionalAddress, error)
	// ListByProfessional returns addresses in creation order.
	ListByProfessional(dbc dbctx.Context, professionalID uuid.UUID) ([]*types.ProfessionalAddress, error)
	// GetDefault returns the current default address, ignoring excludeID when set.
	GetDefault(dbc dbctx.Context, professionalID uuid.UUID, excludeID *uuid.UUID) (*types.ProfessionalAddress, error)
	SetDefault(dbc dbctx.Context, addressID uuid.UUID, isDefault bool) error
	Update(dbc dbctx.Context, a *types.ProfessionalAddress) error
	Delete(dbc dbctx.Context, professionalID, addressID uuid.UUID) (bool, error)
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	return &addressRepo{db: db, log: baseLog.With("repo", "AddressRepo")}
}

func (r *addressRepo) Create(dbc dbctx.Context, a *types.ProfessionalAddress) (*types.ProfessionalAddress, error) {
	if a == nil {
		return nil, errors.New("nil address")
	}
	if err := dbc.Conn(r.db).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *addressRepo) GetForProfessional(dbc dbctx.Context, professionalID, addressID uuid.UUID) (*types.ProfessionalAddress, error) {
	if professionalID == uuid.Nil || addressID == uuid.Nil {
		return nil, nil
	}
	var out types.ProfessionalAddress
	err := dbc.Conn(r.db).
		Where("id = ? AND professional_id = ?", addressID, professionalID).
		Limit(1).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	if out.ID == uuid.Nil {
		return nil, nil
	}
	return &out, nil
}

func (r *addressRepo) ListByProfessional(dbc dbctx.Context, professionalID uuid.UUID) ([]*types.ProfessionalAddress, error) {
	out := []*types.ProfessionalAddress{}
	if professionalID == uuid.Nil {
		return out, nil
	}
	err := dbc.Conn(r.db).
		Where("professional_id = ?", professionalID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *addressRepo) GetDefault(dbc dbctx.Context, professionalID uuid.UUID, excludeID *uuid.UUID) (*types.ProfessionalAddress, error) {
	q := dbc.Conn(r.db).Where("professional_id = ? AND is_default = ?", professionalID, true)
	if excludeID != nil && *excludeID != uuid.Nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var out types.ProfessionalAddress
	if err := q.Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if out.ID == uuid.Nil {
		return nil, nil
	}
	return &out, nil
}

func (r *addressRepo) SetDefault(dbc dbctx.Context, addressID uuid.UUID, isDefault bool) error {
	return dbc.Conn(r.db).
		Model(&types.ProfessionalAddress{}).
		Where("id = ?", addressID).
		Updates(map[string]any{
			"is_default": isDefault,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

func (r *addressRepo) Update(dbc dbctx.Context, a *types.ProfessionalAddress) error {
	if a == nil || a.ID == uuid.Nil {
		return errors.New("missing address id")
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = time.Now().UTC()
	}
	return dbc.Conn(r.db).
		Model(&types.ProfessionalAddress{}).
		Where("id = ? AND professional_id = ?", a.ID, a.ProfessionalID).
		Updates(map[string]any{
			"street":      a.Street,
			"city":        a.City,
			"state":       a.State,
			"postal_code": a.PostalCode,
			"latitude":    a.Latitude,
			"longitude":   a.Longitude,
			"is_default":  a.IsDefault,
			"country_id":  a.CountryID,
			"updated_at":  a.UpdatedAt,
		}).Error
}

func (r *addressRepo) Delete(dbc dbctx.Context, professionalID, addressID uuid.UUID) (bool, error) {
	res := dbc.Conn(r.db).
		Where("id = ? AND professional_id = ?", addressID, professionalID).
		Delete(&types.ProfessionalAddress{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
