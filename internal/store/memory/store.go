package memory

import (
	"context"
	"sync"

	"lis-dashboard/internal/domain/address"
	"lis-dashboard/internal/domain/application"
	"lis-dashboard/internal/domain/beneficiary"
	"lis-dashboard/internal/domain/classification"
	"lis-dashboard/internal/domain/coowner"
	"lis-dashboard/internal/domain/employment"
	"lis-dashboard/internal/domain/lot"
	"lis-dashboard/internal/domain/program"
	"lis-dashboard/internal/domain/project"
	"lis-dashboard/internal/domain/property"
	"lis-dashboard/internal/store"
)

// Store is an in-process UnitOfWork. Transactions are serialized and
// rolled back by restoring a snapshot when fn fails.
type Store struct {
	tx sync.Mutex

	Projects       *Collection[project.Project]
	Programs       *Collection[program.Program]
	Applications   *Collection[application.Application]
	Beneficiaries  *Collection[beneficiary.Beneficiary]
	Lots           *Collection[lot.Lot]
	CoOwners       *Collection[coowner.CoOwner]
	Employment     *Collection[employment.Profile]
	Properties     *Collection[property.Property]
	ProgramClasses *Collection[classification.ProgramClass]
	Regions        *Collection[address.Item]
	Provinces      *Collection[address.Item]
	Municipalities *Collection[address.Item]
	Barangays      *Collection[address.Item]
}

var _ store.UnitOfWork = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		Projects:       NewCollection(store.Projects),
		Programs:       NewCollection(store.Programs),
		Applications:   NewCollection(store.Applications),
		Beneficiaries:  NewCollection(store.Beneficiaries),
		Lots:           NewCollection(store.Lots),
		CoOwners:       NewCollection(store.CoOwners),
		Employment:     NewCollection(store.EmploymentProfiles),
		Properties:     NewCollection(store.Properties),
		ProgramClasses: NewCollection(store.ProgramClasses),
		Regions:        NewCollection(store.Address(address.Regions)),
		Provinces:      NewCollection(store.Address(address.Provinces)),
		Municipalities: NewCollection(store.Address(address.Municipalities)),
		Barangays:      NewCollection(store.Address(address.Barangays)),
	}
}

func (s *Store) Collections() store.Collections {
	return store.Collections{
		Projects:       s.Projects,
		Programs:       s.Programs,
		Applications:   s.Applications,
		Beneficiaries:  s.Beneficiaries,
		Lots:           s.Lots,
		CoOwners:       s.CoOwners,
		Employment:     s.Employment,
		Properties:     s.Properties,
		ProgramClasses: s.ProgramClasses,
		Regions:        s.Regions,
		Provinces:      s.Provinces,
		Municipalities: s.Municipalities,
		Barangays:      s.Barangays,
	}
}

func (s *Store) WithinTx(ctx context.Context, fn func(c store.Collections) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.tx.Lock()
	defer s.tx.Unlock()

	restore := s.checkpoint()
	if err := fn(s.Collections()); err != nil {
		restore()
		return err
	}
	return nil
}

func (s *Store) checkpoint() func() {
	projects := s.Projects.snapshot()
	programs := s.Programs.snapshot()
	applications := s.Applications.snapshot()
	beneficiaries := s.Beneficiaries.snapshot()
	lots := s.Lots.snapshot()
	coOwners := s.CoOwners.snapshot()
	employment := s.Employment.snapshot()
	properties := s.Properties.snapshot()
	classes := s.ProgramClasses.snapshot()
	regions := s.Regions.snapshot()
	provinces := s.Provinces.snapshot()
	municipalities := s.Municipalities.snapshot()
	barangays := s.Barangays.snapshot()
	return func() {
		s.Projects.Load(projects)
		s.Programs.Load(programs)
		s.Applications.Load(applications)
		s.Beneficiaries.Load(beneficiaries)
		s.Lots.Load(lots)
		s.CoOwners.Load(coOwners)
		s.Employment.Load(employment)
		s.Properties.Load(properties)
		s.ProgramClasses.Load(classes)
		s.Regions.Load(regions)
		s.Provinces.Load(provinces)
		s.Municipalities.Load(municipalities)
		s.Barangays.Load(barangays)
	}
}
