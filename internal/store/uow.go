package store

import (
	"context"

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
)

type Collections struct {
	Projects       Collection[project.Project]
	Programs       Collection[program.Program]
	Applications   Collection[application.Application]
	Beneficiaries  Collection[beneficiary.Beneficiary]
	Lots           Collection[lot.Lot]
	CoOwners       Collection[coowner.CoOwner]
	Employment     Collection[employment.Profile]
	Properties     Collection[property.Property]
	ProgramClasses Collection[classification.ProgramClass]
	Regions        Collection[address.Item]
	Provinces      Collection[address.Item]
	Municipalities Collection[address.Item]
	Barangays      Collection[address.Item]
}

// Level picks the collection backing an address level.
func (c Collections) Level(l address.Level) Collection[address.Item] {
	switch l {
	case address.Regions:
		return c.Regions
	case address.Provinces:
		return c.Provinces
	case address.Municipalities:
		return c.Municipalities
	case address.Barangays:
		return c.Barangays
	}
	return nil
}

type UnitOfWork interface {
	// WithinTx runs fn atomically against one view of the collections.
	WithinTx(ctx context.Context, fn func(c Collections) error) error
}
