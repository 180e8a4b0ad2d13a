package professional

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/professionals-backend/internal/domain"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

// LinkedTarget is a catalog row joined through a professional's link table.
type LinkedTarget struct {
	ID          uuid.UUID
	Name        string
	Description string
	LinkedAt    time.Time
}

// AssociationRepo manages the professional_profession and professional_service
// link tables. The kind argument selects the table.
type AssociationRepo interface {
	Exists(dbc dbctx.Context, kind types.AssociationKind, professionalID, targetID uuid.UUID) (bool, error)
	Count(dbc dbctx.Context, kind types.AssociationKind, professionalID uuid.UUID) (int64, error)
	Create(dbc dbctx.Context, kind types.AssociationKind, professionalID, targetID uuid.UUID) (uuid.UUID, error)
	Delete(dbc dbctx.Context, kind types.AssociationKind, professionalID, targetID uuid.UUID) (bool, error)
	// ListTargets returns linked catalog rows ordered by name ascending.
	ListTargets(dbc dbctx.Context, kind types.AssociationKind, professionalID uuid.UUID) ([]LinkedTarget, error)
}

type associationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssociationRepo(db *gorm.DB, baseLog *logger.Logger) AssociationRepo {
	return &associationRepo{db: db, log: baseLog.With("repo", "AssociationRepo")}
}

type linkTable struct {
	model       any
	table       string
	targetCol   string
	targetTable string
}

func tableFor(kind types.AssociationKind) (linkTable, error) {
	switch kind {
	case types.KindProfession:
		return linkTable{
			model:       &types.ProfessionalProfession{},
			table:       types.ProfessionalProfession{}.TableName(),
			targetCol:   "profession_id",
			targetTable: types.Profession{}.TableName(),
		}, nil
	case types.KindService:
		return linkTable{
			model:       &types.ProfessionalService{},
			table:       types.ProfessionalService{}.TableName(),
			targetCol:   "service_id",
			targetTable: types.Service{}.TableName(),
		}, nil
	default:
		return linkTable{}, fmt.Errorf("unknown association kind %q", kind)
	}
}

func (r *associationRepo) Exists(dbc dbctx.Context, kind types.AssociationKind, professionalID, targetID uuid.UUID) (bool, error) {
	lt, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = dbc.Conn(r.db).
		Model(lt.model).
		Where("professional_id = ? AND "+lt.targetCol+" = ?", professionalID, targetID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *associationRepo) Count(dbc dbctx.Context, kind types.AssociationKind, professionalID uuid.UUID) (int64, error) {
	lt, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := dbc.Conn(r.db).Model(lt.model).Where("professional_id = ?", professionalID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *associationRepo) Create(dbc dbctx.Context, kind types.AssociationKind, professionalID, targetID uuid.UUID) (uuid.UUID, error) {
	switch kind {
	case types.KindProfession:
		row := &types.ProfessionalProfession{ProfessionalID: professionalID, ProfessionID: targetID}
		if err := dbc.Conn(r.db).Create(row).Error; err != nil {
			return uuid.Nil, err
		}
		return row.ID, nil
	case types.KindService:
		row := &types.ProfessionalService{ProfessionalID: professionalID, ServiceID: targetID}
		if err := dbc.Conn(r.db).Create(row).Error; err != nil {
			return uuid.Nil, err
		}
		return row.ID, nil
	default:
		return uuid.Nil, fmt.Errorf("unknown association kind %q", kind)
	}
}

func (r *associationRepo) Delete(dbc dbctx.Context, kind types.AssociationKind, professionalID, targetID uuid.UUID) (bool, error) {
	lt, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	res := dbc.Conn(r.db).
		Where("professional_id = ? AND "+lt.targetCol+" = ?", professionalID, targetID).
		Delete(lt.model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *associationRepo) ListTargets(dbc dbctx.Context, kind types.AssociationKind, professionalID uuid.UUID) ([]LinkedTarget, error) {
	lt, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	out := []LinkedTarget{}
	err = dbc.Conn(r.db).
		Table(lt.table+" AS l").
		Select("t.id AS id, t.name AS name, t.description AS description, l.created_at AS linked_at").
		Joins("JOIN "+lt.targetTable+" AS t ON t.id = l."+lt.targetCol).
		Where("l.professional_id = ?", professionalID).
		Order("t.name ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
