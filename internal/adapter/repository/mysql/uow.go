package mysql

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
	"lis-dashboard/internal/store"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

var _ store.UnitOfWork = (*GormUoW)(nil)

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(c store.Collections) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewCollections(tx))
	})
}

// NewCollections binds every collection to db (or a transaction).
func NewCollections(db *gorm.DB) store.Collections {
	return store.Collections{
		Projects:       NewCollection(db, store.Projects),
		Programs:       NewCollection(db, store.Programs),
		Applications:   NewCollection(db, store.Applications),
		Beneficiaries:  NewCollection(db, store.Beneficiaries),
		Lots:           NewCollection(db, store.Lots),
		CoOwners:       NewCollection(db, store.CoOwners),
		Employment:     NewCollection(db, store.EmploymentProfiles),
		Properties:     NewCollection(db, store.Properties),
		ProgramClasses: NewCollection(db, store.ProgramClasses),
		Regions:        NewCollection(db, store.Address(address.Regions)),
		Provinces:      NewCollection(db, store.Address(address.Provinces)),
		Municipalities: NewCollection(db, store.Address(address.Municipalities)),
		Barangays:      NewCollection(db, store.Address(address.Barangays)),
	}
}

// Migrate creates or updates every table the collections use.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&project.Project{},
		&program.Program{},
		&application.Application{},
		&beneficiary.Beneficiary{},
		&lot.Lot{},
		&coowner.CoOwner{},
		&employment.Profile{},
		&property.Property{},
		&classification.ProgramClass{},
	); err != nil {
		return err
	}
	for _, l := range address.Levels {
		if err := db.Table(l.Table()).AutoMigrate(&address.Item{}); err != nil {
			return err
		}
	}
	return nil
}

// Seed runs fill once, while the projects table is still empty.
func Seed(ctx context.Context, u store.UnitOfWork, fill func(ctx context.Context, c store.Collections) error) error {
	return u.WithinTx(ctx, func(c store.Collections) error {
		existing, err := c.Projects.List(ctx, store.Page{Limit: 1})
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
		return fill(ctx, c)
	})
}
