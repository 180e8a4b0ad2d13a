package services

import (
	"context"

	"github.com/google/uuid"

	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

type AssociationService interface {
	AddProfession(ctx context.Context, professionalID, professionID uuid.UUID) (*AssociationResponse, error)
	AddService(ctx context.Context, professionalID, serviceID uuid.UUID) (*AssociationResponse, error)
	RemoveProfession(ctx context.Context, professionalID, professionID uuid.UUID) error
	RemoveService(ctx context.Context, professionalID, serviceID uuid.UUID) error
	ListProfessions(ctx context.Context, professionalID uuid.UUID) ([]AssociationResponse, error)
	ListServices(ctx context.Context, professionalID uuid.UUID) ([]AssociationResponse, error)
}

type associationService struct {
	log       *logger.Logger
	aggregate domainagg.ProfessionalAggregate
}

func NewAssociationService(log *logger.Logger, aggregate domainagg.ProfessionalAggregate) AssociationService {
	return &associationService{
		log:       log.With("service", "AssociationService"),
		aggregate: aggregate,
	}
}

func (s *associationService) AddProfession(ctx context.Context, professionalID, professionID uuid.UUID) (*AssociationResponse, error) {
	return s.add(ctx, professionalID, professionID, types.KindProfession, "professionId")
}

func (s *associationService) AddService(ctx context.Context, professionalID, serviceID uuid.UUID) (*AssociationResponse, error) {
	return s.add(ctx, professionalID, serviceID, types.KindService, "serviceId")
}

func (s *associationService) RemoveProfession(ctx context.Context, professionalID, professionID uuid.UUID) error {
	return s.aggregate.RemoveAssociation(ctx, domainagg.RemoveAssociationInput{
		ProfessionalID: professionalID,
		TargetID:       professionID,
		Kind:           types.KindProfession,
	})
}

func (s *associationService) RemoveService(ctx context.Context, professionalID, serviceID uuid.UUID) error {
	return s.aggregate.RemoveAssociation(ctx, domainagg.RemoveAssociationInput{
		ProfessionalID: professionalID,
		TargetID:       serviceID,
		Kind:           types.KindService,
	})
}

func (s *associationService) ListProfessions(ctx context.Context, professionalID uuid.UUID) ([]AssociationResponse, error) {
	return s.aggregate.ListAssociations(ctx, professionalID, types.KindProfession)
}

func (s *associationService) ListServices(ctx context.Context, professionalID uuid.UUID) ([]AssociationResponse, error) {
	return s.aggregate.ListAssociations(ctx, professionalID, types.KindService)
}

func (s *associationService) add(ctx context.Context, professionalID, targetID uuid.UUID, kind types.AssociationKind, field string) (*AssociationResponse, error) {
	op := "Association.Add." + string(kind)
	if targetID == uuid.Nil {
		return nil, domainagg.Validation(op, map[string][]string{field: {field + " is required"}})
	}
	res, err := s.aggregate.AddAssociation(ctx, domainagg.AddAssociationInput{
		ProfessionalID: professionalID,
		TargetID:       targetID,
		Kind:           kind,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("association added", "professional_id", professionalID, "kind", kind, "count", res.CurrentCount)

	linked, err := s.aggregate.ListAssociations(ctx, professionalID, kind)
	if err != nil {
		return nil, err
	}
	for i := range linked {
		if linked[i].ID == targetID {
			return &linked[i], nil
		}
	}
	out := res.Target
	return &out, nil
}
