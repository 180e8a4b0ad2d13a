package aggregates

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/professionals-backend/internal/domain/professional"
)

var ProfessionalAggregateContract = Contract{
	Name:        "Professional",
	TxOwnership: TxOwnedByAggregate,
	Invariants:  []string{"single_default_address", "profession_cap", "service_cap", "unique_association"},
}

// ProfessionalAggregate owns the consistency rules of a Professional's
// addresses and associations.
//
// Failures are *aggregates.Error with codes:
// CodeNotFound, CodeDuplicateAssociation, CodeLimitExceeded,
// CodeStorageConstraint, CodeInternal.
type ProfessionalAggregate interface {
	Aggregate

	// SaveAddress creates (AddressID nil) or updates an address. When the
	// address is saved as default, the previous default is cleared first in
	// the same transaction.
	SaveAddress(ctx context.Context, in SaveAddressInput) (SaveAddressResult, error)

	DeleteAddress(ctx context.Context, in DeleteAddressInput) error

	// AddAssociation links a profession or service, enforcing duplicate
	// prevention and the per-kind cap.
	AddAssociation(ctx context.Context, in AddAssociationInput) (AddAssociationResult, error)

	RemoveAssociation(ctx context.Context, in RemoveAssociationInput) error

	// ListAssociations returns linked catalog rows ordered by name ascending.
	ListAssociations(ctx context.Context, professionalID uuid.UUID, kind professional.AssociationKind) ([]AssociationTarget, error)
}

type SaveAddressInput struct {
	ProfessionalID uuid.UUID
	// AddressID is nil when creating.
	AddressID  *uuid.UUID
	Street     string
	City       string
	State      string
	PostalCode string
	Latitude   *float64
	Longitude  *float64
	IsDefault  bool
	CountryID  uuid.UUID
}

type SaveAddressResult struct {
	Address *professional.ProfessionalAddress
	Created bool
	// ClearedDefaultID is the address that lost its default flag, if any.
	ClearedDefaultID *uuid.UUID
}

type DeleteAddressInput struct {
	ProfessionalID uuid.UUID
	AddressID      uuid.UUID
}

type AddAssociationInput struct {
	ProfessionalID uuid.UUID
	TargetID       uuid.UUID
	Kind           professional.AssociationKind
}

type AddAssociationResult struct {
	LinkID       uuid.UUID
	Target       AssociationTarget
	CurrentCount int
}

type RemoveAssociationInput struct {
	ProfessionalID uuid.UUID
	TargetID       uuid.UUID
	Kind           professional.AssociationKind
}

// AssociationTarget is a catalog row as seen through a professional's link.
type AssociationTarget struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	AssociatedAt time.Time `json:"associatedAt"`
}
