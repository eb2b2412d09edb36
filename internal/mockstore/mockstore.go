// Package mockstore is the in-process stand-in for the REST API: the
// shared backend router over seeded in-memory collections.
package mockstore

import (
	"context"

	"lis-dashboard/internal/backend"
	"lis-dashboard/internal/store"
	"lis-dashboard/internal/store/memory"
)

type Store struct {
	*backend.Router
	mem *memory.Store
}

// New returns a seeded store. Each instance owns its own data.
func New(opts ...backend.Option) *Store {
	mem := memory.NewStore()
	s := &Store{Router: backend.New(mem, opts...), mem: mem}
	s.Reset()
	return s
}

// Reset restores the fixtures, discarding every change.
func (s *Store) Reset() {
	_ = s.mem.WithinTx(context.Background(), func(store.Collections) error {
		s.mem.Programs.Load(Programs())
		s.mem.Projects.Load(Projects())
		s.mem.Applications.Load(Applications())
		s.mem.Beneficiaries.Load(Beneficiaries())
		s.mem.Lots.Load(Lots())
		s.mem.CoOwners.Load(CoOwners())
		s.mem.Employment.Load(EmploymentProfiles())
		s.mem.Properties.Load(Properties())
		s.mem.ProgramClasses.Load(ProgramClasses())
		s.mem.Regions.Load(Regions())
		s.mem.Provinces.Load(Provinces())
		s.mem.Municipalities.Load(Municipalities())
		s.mem.Barangays.Load(Barangays())
		return nil
	})
}

// Memory exposes the backing collections, mainly for tests.
func (s *Store) Memory() *memory.Store { return s.mem }
