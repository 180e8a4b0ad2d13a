package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
)

// memCatalog is an in-memory CatalogRepo. Rows come back in insertion order
// so tests can check that the service sorts the page itself.
type memCatalog[T any] struct {
	mu      sync.Mutex
	rows    []*T
	idOf    func(*T) uuid.UUID
	keyOf   func(*T) string
	listErr error
	upserts int
}

func (m *memCatalog[T]) add(rows ...*T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, rows...)
}

func (m *memCatalog[T]) GetByID(_ dbctx.Context, id uuid.UUID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if m.idOf(r) == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memCatalog[T]) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	r, err := m.GetByID(dbc, id)
	return r != nil, err
}

func (m *memCatalog[T]) List(dbc dbctx.Context, skip, take int) ([]*T, error) {
	return m.ListByText(dbc, "", skip, take)
}

func (m *memCatalog[T]) Count(dbc dbctx.Context) (int64, error) {
	return m.CountByText(dbc, "")
}

func (m *memCatalog[T]) filtered(search string) []*T {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]*T, 0, len(m.rows))
	for _, r := range m.rows {
		if search == "" || strings.Contains(strings.ToLower(m.keyOf(r)), search) {
			out = append(out, r)
		}
	}
	return out
}

func (m *memCatalog[T]) ListByText(_ dbctx.Context, search string, skip, take int) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	rows := m.filtered(search)
	if skip >= len(rows) {
		return []*T{}, nil
	}
	end := skip + take
	if end > len(rows) {
		end = len(rows)
	}
	return rows[skip:end], nil
}

func (m *memCatalog[T]) CountByText(_ dbctx.Context, search string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.filtered(search))), nil
}

func (m *memCatalog[T]) Upsert(_ dbctx.Context, rows []*T) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	for _, in := range rows {
		replaced := false
		for i, r := range m.rows {
			if m.keyOf(r) == m.keyOf(in) {
				m.rows[i] = in
				replaced = true
				break
			}
		}
		if !replaced {
			m.rows = append(m.rows, in)
		}
	}
	return int64(len(rows)), nil
}

func newCountryCodes() *memCatalog[types.CountryCode] {
	return &memCatalog[types.CountryCode]{
		idOf:  func(r *types.CountryCode) uuid.UUID { return r.ID },
		keyOf: func(r *types.CountryCode) string { return r.Code },
	}
}

func newCurrencies() *memCatalog[types.Currency] {
	return &memCatalog[types.Currency]{
		idOf:  func(r *types.Currency) uuid.UUID { return r.ID },
		keyOf: func(r *types.Currency) string { return r.Code },
	}
}

func newLanguages() *memCatalog[types.Language] {
	return &memCatalog[types.Language]{
		idOf:  func(r *types.Language) uuid.UUID { return r.ID },
		keyOf: func(r *types.Language) string { return r.Code },
	}
}

func newTimeZones() *memCatalog[types.TimeZone] {
	return &memCatalog[types.TimeZone]{
		idOf:  func(r *types.TimeZone) uuid.UUID { return r.ID },
		keyOf: func(r *types.TimeZone) string { return r.Code },
	}
}

func newProfessions() *memCatalog[types.Profession] {
	return &memCatalog[types.Profession]{
		idOf:  func(r *types.Profession) uuid.UUID { return r.ID },
		keyOf: func(r *types.Profession) string { return r.Name },
	}
}

func newServices() *memCatalog[types.Service] {
	return &memCatalog[types.Service]{
		idOf:  func(r *types.Service) uuid.UUID { return r.ID },
		keyOf: func(r *types.Service) string { return r.Name },
	}
}

type memProfessionals struct {
	mu        sync.Mutex
	rows      []*types.Professional
	createErr error
	writes    []string
}

func (m *memProfessionals) Create(dbc dbctx.Context, p *types.Professional) (*types.Professional, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, r := range m.rows {
		if r.Email == p.Email {
			return nil, errors.New(`ERROR: duplicate key value violates unique constraint "idx_professional_email" (SQLSTATE 23505)`)
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	m.rows = append(m.rows, &cp)
	m.writes = append(m.writes, "create")
	return p, nil
}

func (m *memProfessionals) GetByID(_ dbctx.Context, id uuid.UUID) (*types.Professional, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProfessionals) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	r, err := m.GetByID(dbc, id)
	return r != nil, err
}

func (m *memProfessionals) List(dbc dbctx.Context, skip, take int) ([]*types.Professional, error) {
	return m.ListByText(dbc, "", skip, take)
}

func (m *memProfessionals) Count(dbc dbctx.Context) (int64, error) {
	return m.CountByText(dbc, "")
}

func (m *memProfessionals) filtered(search string) []*types.Professional {
	search = strings.ToLower(strings.TrimSpace(search))
	out := []*types.Professional{}
	for _, r := range m.rows {
		if search == "" || strings.Contains(strings.ToLower(r.Name), search) {
			out = append(out, r)
		}
	}
	return out
}

func (m *memProfessionals) ListByText(_ dbctx.Context, search string, skip, take int) ([]*types.Professional, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.filtered(search)
	if skip >= len(rows) {
		return nil, nil
	}
	end := skip + take
	if end > len(rows) {
		end = len(rows)
	}
	return rows[skip:end], nil
}

func (m *memProfessionals) CountByText(_ dbctx.Context, search string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.filtered(search))), nil
}

func (m *memProfessionals) Update(_ dbctx.Context, p *types.Professional) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == p.ID {
			cp := *p
			m.rows[i] = &cp
			m.writes = append(m.writes, "update")
			return nil
		}
	}
	return nil
}

// stubAggregate records calls and returns canned results.
type stubAggregate struct {
	saveIn    []domainagg.SaveAddressInput
	saveRes   domainagg.SaveAddressResult
	saveErr   error
	deleteIn  []domainagg.DeleteAddressInput
	deleteErr error
	addIn     []domainagg.AddAssociationInput
	addRes    domainagg.AddAssociationResult
	addErr    error
	removeIn  []domainagg.RemoveAssociationInput
	listKinds []types.AssociationKind
	listRes   []domainagg.AssociationTarget
	listErr   error
}

func (s *stubAggregate) Contract() domainagg.Contract {
	return domainagg.ProfessionalAggregateContract
}

func (s *stubAggregate) SaveAddress(_ context.Context, in domainagg.SaveAddressInput) (domainagg.SaveAddressResult, error) {
	s.saveIn = append(s.saveIn, in)
	return s.saveRes, s.saveErr
}

func (s *stubAggregate) DeleteAddress(_ context.Context, in domainagg.DeleteAddressInput) error {
	s.deleteIn = append(s.deleteIn, in)
	return s.deleteErr
}

func (s *stubAggregate) AddAssociation(_ context.Context, in domainagg.AddAssociationInput) (domainagg.AddAssociationResult, error) {
	s.addIn = append(s.addIn, in)
	return s.addRes, s.addErr
}

func (s *stubAggregate) RemoveAssociation(_ context.Context, in domainagg.RemoveAssociationInput) error {
	s.removeIn = append(s.removeIn, in)
	return nil
}

func (s *stubAggregate) ListAssociations(_ context.Context, _ uuid.UUID, kind types.AssociationKind) ([]domainagg.AssociationTarget, error) {
	s.listKinds = append(s.listKinds, kind)
	return s.listRes, s.listErr
}
