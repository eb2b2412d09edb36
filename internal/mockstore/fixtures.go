package mockstore

import (
	"context"
	"time"

	"lis-dashboard/internal/domain/address"
	"lis-dashboard/internal/domain/application"
	"lis-dashboard/internal/domain/approval"
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

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }
func i64p(n int64) *int64     { return &n }
func intp(n int) *int         { return &n }
func at(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

var approved = approval.Lifecycle{ApprovalStatus: approval.StatusApproved}

// Every fixture func returns fresh values; nothing is shared between calls.

func Programs() []program.Program {
	return []program.Program{
		{ProjectProgID: 1, MCRef: strp("MC-2024-001"), InterestRate: f64p(6.5), DelinquencyRate: f64p(2), MaxTermYrs: intp(25), Lifecycle: approved},
		{ProjectProgID: 2, MCRef: strp("MC-2024-002"), InterestRate: f64p(5.0), DelinquencyRate: f64p(1.5), MaxTermYrs: intp(20), Lifecycle: approved},
		{ProjectProgID: 3, MCRef: strp("Socialized"), InterestRate: f64p(0), DelinquencyRate: f64p(0), MaxTermYrs: intp(30), Lifecycle: approved},
	}
}

func Projects() []project.Project {
	return []project.Project{
		{
			ProjectCode:   "PROJ-001",
			ProjectName:   strp("Northville Resettlement"),
			ProjectProgID: i64p(1),
			TotalArea:     f64p(50000),
			ProjectCost:   f64p(120000000),
			RegionCode:    strp("04"),
			ProvinceCode:  strp("0401"),
			LotType:       strp("R"),
			CreatedAt:     at("2024-01-15T08:00:00Z"),
			Lifecycle:     approved,
		},
		{
			ProjectCode:   "PROJ-002",
			ProjectName:   strp("Southview Housing"),
			ProjectProgID: i64p(2),
			TotalArea:     f64p(35000),
			ProjectCost:   f64p(85000000),
			RegionCode:    strp("04"),
			ProvinceCode:  strp("0402"),
			LotType:       strp("B"),
			CreatedAt:     at("2024-02-20T08:00:00Z"),
			Lifecycle:     approved,
		},
	}
}

func Applications() []application.Application {
	return []application.Application{
		{
			AppID:              "a1b2c3d4-e5f6-4789-a012-345678901234",
			PrequalificationNo: strp("PQ-2024-001"),
			Origin:             strp("NHA"),
			ApplicationType:    strp("New"),
			LastName:           strp("Dela Cruz"),
			FirstName:          strp("Juan"),
			BirthDate:          strp("1990-05-15"),
			Sex:                strp("M"),
			CivilStatus:        strp("Single"),
			CreatedAt:          at("2024-03-01T10:00:00Z"),
			UpdatedAt:          at("2024-03-01T10:00:00Z"),
		},
		{
			AppID:              "b2c3d4e5-f6a7-4890-b123-456789012345",
			PrequalificationNo: strp("PQ-2024-002"),
			Origin:             strp("LGU"),
			ApplicationType:    strp("Renewal"),
			LastName:           strp("Santos"),
			FirstName:          strp("Maria"),
			CreatedAt:          at("2024-03-10T10:00:00Z"),
			UpdatedAt:          at("2024-03-10T10:00:00Z"),
		},
	}
}

func Beneficiaries() []beneficiary.Beneficiary {
	return []beneficiary.Beneficiary{
		{
			ID:          1,
			BIN:         strp("123456789"),
			AppID:       strp("APP001"),
			LastName:    strp("Reyes"),
			FirstName:   strp("Pedro"),
			BirthDate:   strp("1985-08-20"),
			Sex:         strp("M"),
			CivilStatus: strp("Married"),
			Category:    strp("A"),
		},
		{
			ID:        2,
			BIN:       strp("987654321"),
			AppID:     strp("APP002"),
			LastName:  strp("Garcia"),
			FirstName: strp("Ana"),
			Category:  strp("B"),
		},
	}
}

func Lots() []lot.Lot {
	return []lot.Lot{
		{ID: "7f3c1a52-0c1e-4d8b-9a61-000000000001", LotNumber: "L-001", Block: strp("B1"), Status: lot.StatusAvailable, ProjectCode: "PROJ-001", Area: f64p(120)},
		{ID: "7f3c1a52-0c1e-4d8b-9a61-000000000002", LotNumber: "L-002", Block: strp("B1"), Status: lot.StatusReserved, ProjectCode: "PROJ-001", Area: f64p(96)},
		{ID: "7f3c1a52-0c1e-4d8b-9a61-000000000003", LotNumber: "L-101", Block: strp("B4"), Status: lot.StatusAwarded, ProjectCode: "PROJ-002", Area: f64p(150)},
	}
}

func CoOwners() []coowner.CoOwner {
	return []coowner.CoOwner{
		{
			ID:               1,
			BeneficiaryID:    i64p(1),
			LastName:         strp("Reyes"),
			FirstName:        strp("Maria"),
			Sex:              strp("F"),
			RelationshipType: strp("S"),
			Sequence:         intp(1),
		},
	}
}

func EmploymentProfiles() []employment.Profile {
	return []employment.Profile{
		{
			ID:                 1,
			BeneficiaryID:      i64p(1),
			EducationCode:      strp("C"),
			Employer:           strp("Batangas Port"),
			Position:           strp("Clerk"),
			MonthlyIncome:      f64p(18500),
			MonthlyExpense:     f64p(12000),
			NoHouseholdMembers: intp(4),
		},
	}
}

func Properties() []property.Property {
	return []property.Property{
		{
			GeoID:             "GEO-0401-0001",
			CommonCode:        strp("CC-0001"),
			ProjectCode:       strp("PROJ-001"),
			SBBlock:           strp("B1"),
			SBLot:             strp("L-001"),
			DispositionStatus: strp("A"),
			AreaSqm:           f64p(120),
			PriceSqm:          f64p(1500),
			ProgramClass:      f64p(1.1),
		},
	}
}

func ProgramClasses() []classification.ProgramClass {
	return []classification.ProgramClass{
		{ProgramClass: 1.1, Description: strp("Community Mortgage"), ProgramCode: strp("CMP")},
		{ProgramClass: 2, Description: strp("Direct Sale"), ProgramCode: strp("DS")},
	}
}

func Regions() []address.Item {
	return []address.Item{
		{Code: "04", Name: "CALABARZON"},
		{Code: "13", Name: "National Capital Region"},
	}
}

func Provinces() []address.Item {
	return []address.Item{
		{Code: "0401", Name: "Batangas", ParentCode: "04"},
		{Code: "0402", Name: "Cavite", ParentCode: "04"},
	}
}

func Municipalities() []address.Item {
	return []address.Item{
		{Code: "040101", Name: "Batangas City", ParentCode: "0401"},
	}
}

func Barangays() []address.Item {
	return []address.Item{
		{Code: "04010101", Name: "Poblacion", ParentCode: "040101"},
	}
}

// Fill inserts every fixture through the collection ports, so the
// same data can seed any store.
func Fill(ctx context.Context, c store.Collections) error {
	steps := []func() error{
		func() error { return insertAll(ctx, c.Programs, Programs()) },
		func() error { return insertAll(ctx, c.Projects, Projects()) },
		func() error { return insertAll(ctx, c.Applications, Applications()) },
		func() error { return insertAll(ctx, c.Beneficiaries, Beneficiaries()) },
		func() error { return insertAll(ctx, c.Lots, Lots()) },
		func() error { return insertAll(ctx, c.CoOwners, CoOwners()) },
		func() error { return insertAll(ctx, c.Employment, EmploymentProfiles()) },
		func() error { return insertAll(ctx, c.Properties, Properties()) },
		func() error { return insertAll(ctx, c.ProgramClasses, ProgramClasses()) },
		func() error { return insertAll(ctx, c.Regions, Regions()) },
		func() error { return insertAll(ctx, c.Provinces, Provinces()) },
		func() error { return insertAll(ctx, c.Municipalities, Municipalities()) },
		func() error { return insertAll(ctx, c.Barangays, Barangays()) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func insertAll[T any](ctx context.Context, col store.Collection[T], items []T) error {
	for i := range items {
		if err := col.Insert(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}
