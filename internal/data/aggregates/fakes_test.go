package aggregates_test

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/professionals-backend/internal/data/aggregates"
	"github.com/yungbote/professionals-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/professionals-backend/internal/data/repos"
	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/dbctx"
)

// memStore is an in-memory stand-in for the professional tables.
type memStore struct {
	mu sync.Mutex

	professionals map[uuid.UUID]bool
	countries     map[uuid.UUID]bool
	catalog       map[types.AssociationKind]map[uuid.UUID]string
	addresses     []types.ProfessionalAddress
	links         map[types.AssociationKind][]memLink

	// writes records mutating calls in order, e.g. "unset:<id>".
	writes  []string
	failOn  string
	seq     int
	baseNow time.Time
}

type memLink struct {
	id             uuid.UUID
	professionalID uuid.UUID
	targetID       uuid.UUID
	createdAt      time.Time
}

type memSnapshot struct {
	addresses []types.ProfessionalAddress
	links     map[types.AssociationKind][]memLink
}

var errInjected = errors.New("injected write failure")

func newMemStore() *memStore {
	return &memStore{
		professionals: map[uuid.UUID]bool{},
		countries:     map[uuid.UUID]bool{},
		catalog: map[types.AssociationKind]map[uuid.UUID]string{
			types.KindProfession: {},
			types.KindService:    {},
		},
		links:   map[types.AssociationKind][]memLink{},
		baseNow: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

var _ testutil.Snapshotter = (*memStore)(nil)

func (s *memStore) Snapshot() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := memSnapshot{
		addresses: append([]types.ProfessionalAddress(nil), s.addresses...),
		links:     map[types.AssociationKind][]memLink{},
	}
	for k, v := range s.links {
		snap.links[k] = append([]memLink(nil), v...)
	}
	return snap
}

func (s *memStore) Restore(snapshot any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot.(memSnapshot)
	s.addresses = snap.addresses
	s.links = snap.links
}

func (s *memStore) addProfessional() uuid.UUID {
	id := uuid.New()
	s.professionals[id] = true
	return id
}

func (s *memStore) addCountry() uuid.UUID {
	id := uuid.New()
	s.countries[id] = true
	return id
}

func (s *memStore) addTarget(kind types.AssociationKind, name string) uuid.UUID {
	id := uuid.New()
	s.catalog[kind][id] = name
	return id
}

func (s *memStore) defaults(professionalID uuid.UUID) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []uuid.UUID
	for _, a := range s.addresses {
		if a.ProfessionalID == professionalID && a.IsDefault {
			out = append(out, a.ID)
		}
	}
	return out
}

func (s *memStore) address(id uuid.UUID) types.ProfessionalAddress {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.addresses {
		if a.ID == id {
			return a
		}
	}
	return types.ProfessionalAddress{}
}

func (s *memStore) record(write string) error {
	s.writes = append(s.writes, write)
	if s.failOn != "" && strings.HasPrefix(write, s.failOn) {
		return errInjected
	}
	return nil
}

type checker map[uuid.UUID]bool

func (c checker) Exists(_ dbctx.Context, id uuid.UUID) (bool, error) { return c[id], nil }

type catalogChecker struct {
	s    *memStore
	kind types.AssociationKind
}

func (c catalogChecker) Exists(_ dbctx.Context, id uuid.UUID) (bool, error) {
	_, ok := c.s.catalog[c.kind][id]
	return ok, nil
}

type memAddressRepo struct{ s *memStore }

var _ repos.AddressRepo = memAddressRepo{}

func (r memAddressRepo) Create(_ dbctx.Context, a *types.ProfessionalAddress) (*types.ProfessionalAddress, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if err := r.s.record("create:" + a.ID.String()); err != nil {
		return nil, err
	}
	r.s.seq++
	a.CreatedAt = r.s.baseNow.Add(time.Duration(r.s.seq) * time.Second)
	r.s.addresses = append(r.s.addresses, *a)
	return a, nil
}

func (r memAddressRepo) GetForProfessional(_ dbctx.Context, professionalID, addressID uuid.UUID) (*types.ProfessionalAddress, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.addresses {
		if a.ID == addressID && a.ProfessionalID == professionalID {
			row := a
			return &row, nil
		}
	}
	return nil, nil
}

func (r memAddressRepo) ListByProfessional(_ dbctx.Context, professionalID uuid.UUID) ([]*types.ProfessionalAddress, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*types.ProfessionalAddress{}
	for _, a := range r.s.addresses {
		if a.ProfessionalID == professionalID {
			row := a
			out = append(out, &row)
		}
	}
	return out, nil
}

func (r memAddressRepo) GetDefault(_ dbctx.Context, professionalID uuid.UUID, excludeID *uuid.UUID) (*types.ProfessionalAddress, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.addresses {
		if a.ProfessionalID != professionalID || !a.IsDefault {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		row := a
		return &row, nil
	}
	return nil, nil
}

func (r memAddressRepo) SetDefault(_ dbctx.Context, addressID uuid.UUID, isDefault bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	verb := "unset:"
	if isDefault {
		verb = "set:"
	}
	if err := r.s.record(verb + addressID.String()); err != nil {
		return err
	}
	for i := range r.s.addresses {
		if r.s.addresses[i].ID == addressID {
			r.s.addresses[i].IsDefault = isDefault
		}
	}
	return nil
}

func (r memAddressRepo) Update(_ dbctx.Context, a *types.ProfessionalAddress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.record("update:" + a.ID.String()); err != nil {
		return err
	}
	for i := range r.s.addresses {
		if r.s.addresses[i].ID == a.ID {
			createdAt := r.s.addresses[i].CreatedAt
			r.s.addresses[i] = *a
			r.s.addresses[i].CreatedAt = createdAt
		}
	}
	return nil
}

func (r memAddressRepo) Delete(_ dbctx.Context, professionalID, addressID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, a := range r.s.addresses {
		if a.ID == addressID && a.ProfessionalID == professionalID {
			r.s.addresses = append(r.s.addresses[:i], r.s.addresses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memAssociationRepo struct{ s *memStore }

var _ repos.AssociationRepo = memAssociationRepo{}

func (r memAssociationRepo) Exists(_ dbctx.Context, kind types.AssociationKind, professionalID, targetID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.links[kind] {
		if l.professionalID == professionalID && l.targetID == targetID {
			return true, nil
		}
	}
	return false, nil
}

func (r memAssociationRepo) Count(_ dbctx.Context, kind types.AssociationKind, professionalID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, l := range r.s.links[kind] {
		if l.professionalID == professionalID {
			n++
		}
	}
	return n, nil
}

func (r memAssociationRepo) Create(_ dbctx.Context, kind types.AssociationKind, professionalID, targetID uuid.UUID) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.New()
	if err := r.s.record("link:" + targetID.String()); err != nil {
		return uuid.Nil, err
	}
	r.s.seq++
	r.s.links[kind] = append(r.s.links[kind], memLink{
		id: id, professionalID: professionalID, targetID: targetID,
		createdAt: r.s.baseNow.Add(time.Duration(r.s.seq) * time.Second),
	})
	return id, nil
}

func (r memAssociationRepo) Delete(_ dbctx.Context, kind types.AssociationKind, professionalID, targetID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	links := r.s.links[kind]
	for i, l := range links {
		if l.professionalID == professionalID && l.targetID == targetID {
			r.s.links[kind] = append(links[:i], links[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r memAssociationRepo) ListTargets(_ dbctx.Context, kind types.AssociationKind, professionalID uuid.UUID) ([]repos.LinkedTarget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []repos.LinkedTarget{}
	for _, l := range r.s.links[kind] {
		if l.professionalID != professionalID {
			continue
		}
		out = append(out, repos.LinkedTarget{
			ID:       l.targetID,
			Name:     r.s.catalog[kind][l.targetID],
			LinkedAt: l.createdAt,
		})
	}
	// insertion order on purpose; the aggregate owns the ordering contract
	sort.SliceStable(out, func(i, j int) bool { return out[i].LinkedAt.Before(out[j].LinkedAt) })
	return out, nil
}

type fixture struct {
	store  *memStore
	runner *testutil.InjectedTxRunner
	hooks  *testutil.HooksRecorder
	agg    domainagg.ProfessionalAggregate
}

func newFixture() *fixture {
	s := newMemStore()
	runner := &testutil.InjectedTxRunner{Store: s}
	hooks := &testutil.HooksRecorder{}
	agg := aggregates.NewProfessionalAggregate(aggregates.ProfessionalAggregateDeps{
		Base:          aggregates.BaseDeps{Runner: runner, Hooks: hooks},
		Professionals: checker(s.professionals),
		Countries:     checker(s.countries),
		Professions:   catalogChecker{s: s, kind: types.KindProfession},
		Services:      catalogChecker{s: s, kind: types.KindService},
		Addresses:     memAddressRepo{s: s},
		Associations:  memAssociationRepo{s: s},
	})
	return &fixture{store: s, runner: runner, hooks: hooks, agg: agg}
}
