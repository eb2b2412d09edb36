package store

import (
	"strconv"
	"strings"
	"time"

	"lis-dashboard/internal/domain/address"
	"lis-dashboard/internal/domain/application"
	"lis-dashboard/internal/domain/approval"
	"gorm.io/gorm"

	"lis-dashboard/internal/domain/beneficiary"
	"lis-dashboard/internal/domain/classification"
	"lis-dashboard/internal/domain/coowner"
	"lis-dashboard/internal/domain/employment"
	"lis-dashboard/internal/domain/lot"
	"lis-dashboard/internal/domain/program"
	"lis-dashboard/internal/domain/project"
	"lis-dashboard/internal/domain/property"
	"lis-dashboard/pkg/id"
)

var Projects = Schema[project.Project]{
	Resource:  "projects",
	Label:     "Project",
	Table:     project.Project{}.TableName(),
	KeyColumn: "project_code",
	Identity:  ClientKey,
	Key:       func(p *project.Project) string { return p.ProjectCode },
	SetKey: func(p *project.Project, k string) error {
		p.ProjectCode = k
		return nil
	},
	GenerateKey: id.ProjectCode,
	Columns: map[string]func(*project.Project) string{
		"project_code":    func(p *project.Project) string { return p.ProjectCode },
		"project_name":    func(p *project.Project) string { return str(p.ProjectName) },
		"region_code":     func(p *project.Project) string { return str(p.RegionCode) },
		"province_code":   func(p *project.Project) string { return str(p.ProvinceCode) },
		"lot_type":        func(p *project.Project) string { return str(p.LotType) },
		"project_prog_id": func(p *project.Project) string { return i64(p.ProjectProgID) },
		"approval_status": func(p *project.Project) string { return string(p.Current()) },
	},
	Filters: []Filter{
		{Param: "project_code", Column: "project_code", Mode: Contains},
		{Param: "project_name", Column: "project_name", Mode: Contains},
		{Param: "region_code", Column: "region_code", Mode: Exact},
		{Param: "province_code", Column: "province_code", Mode: Exact},
		{Param: "lot_type", Column: "lot_type", Mode: Exact},
		{Param: "project_prog_id", Column: "project_prog_id", Mode: Exact, Int: true},
		{Param: "approval_status", Column: "approval_status", Mode: Exact, Default: string(approval.StatusPending)},
	},
	SearchColumns: []string{"project_code", "project_name"},
	Touch: func(p *project.Project, now time.Time, created bool) {
		if created {
			at := now.UTC()
			p.CreatedAt = &at
		}
	},
	Approval:   func(p *project.Project) *approval.Lifecycle { return p.Approval() },
	SoftDelete: func(p *project.Project) *gorm.DeletedAt { return &p.DeletedAt },
	Paged:      true,
}

var Programs = Schema[program.Program]{
	Resource:  "programs",
	Label:     "Program",
	Table:     program.Program{}.TableName(),
	KeyColumn: "project_prog_id",
	Identity:  SequenceKey,
	Key:       func(p *program.Program) string { return strconv.FormatInt(p.ProjectProgID, 10) },
	SetKey: func(p *program.Program, k string) error {
		n, err := parseSeq(k)
		p.ProjectProgID = n
		return err
	},
	Columns: map[string]func(*program.Program) string{
		"project_prog_id": func(p *program.Program) string { return strconv.FormatInt(p.ProjectProgID, 10) },
		"mc_ref":          func(p *program.Program) string { return str(p.MCRef) },
		"approval_status": func(p *program.Program) string { return string(p.Current()) },
	},
	Filters: []Filter{
		{Param: "approval_status", Column: "approval_status", Mode: Exact, Default: string(approval.StatusPending)},
	},
	SearchColumns: []string{"mc_ref"},
	Approval:      func(p *program.Program) *approval.Lifecycle { return p.Approval() },
	SoftDelete:    func(p *program.Program) *gorm.DeletedAt { return &p.DeletedAt },
	Paged:         true,
}

var Applications = Schema[application.Application]{
	Resource:  "applications",
	Label:     "Application",
	Table:     application.Application{}.TableName(),
	KeyColumn: "app_id",
	Identity:  UUIDKey,
	Key:       func(a *application.Application) string { return a.AppID },
	SetKey: func(a *application.Application, k string) error {
		a.AppID = k
		return nil
	},
	Columns: map[string]func(*application.Application) string{
		"app_id":              func(a *application.Application) string { return a.AppID },
		"prequalification_no": func(a *application.Application) string { return str(a.PrequalificationNo) },
		"last_name":           func(a *application.Application) string { return str(a.LastName) },
		"first_name":          func(a *application.Application) string { return str(a.FirstName) },
	},
	SearchColumns: []string{"prequalification_no", "last_name", "first_name"},
	Touch: func(a *application.Application, now time.Time, created bool) {
		at := now.UTC()
		if created {
			a.CreatedAt = &at
		}
		a.UpdatedAt = &at
	},
	SoftDelete: func(a *application.Application) *gorm.DeletedAt { return &a.DeletedAt },
	Paged:      true,
}

var Beneficiaries = Schema[beneficiary.Beneficiary]{
	Resource:  "beneficiaries",
	Label:     "Beneficiary",
	Table:     beneficiary.Beneficiary{}.TableName(),
	KeyColumn: "id",
	Identity:  SequenceKey,
	Key:       func(b *beneficiary.Beneficiary) string { return strconv.FormatInt(b.ID, 10) },
	SetKey: func(b *beneficiary.Beneficiary, k string) error {
		n, err := parseSeq(k)
		b.ID = n
		return err
	},
	Columns: map[string]func(*beneficiary.Beneficiary) string{
		"id":          func(b *beneficiary.Beneficiary) string { return strconv.FormatInt(b.ID, 10) },
		"last_name":   func(b *beneficiary.Beneficiary) string { return str(b.LastName) },
		"first_name":  func(b *beneficiary.Beneficiary) string { return str(b.FirstName) },
		"bin":         func(b *beneficiary.Beneficiary) string { return str(b.BIN) },
		"common_code": func(b *beneficiary.Beneficiary) string { return str(b.CommonCode) },
	},
	SearchColumns: []string{"last_name", "first_name", "bin", "common_code"},
	SoftDelete:    func(b *beneficiary.Beneficiary) *gorm.DeletedAt { return &b.DeletedAt },
	Paged:         true,
}

var Lots = Schema[lot.Lot]{
	Resource:  "lots",
	Label:     "Lot",
	Table:     lot.Lot{}.TableName(),
	KeyColumn: "id",
	Identity:  UUIDKey,
	ReadOnly:  true,
	Key:       func(l *lot.Lot) string { return l.ID },
	SetKey: func(l *lot.Lot, k string) error {
		l.ID = k
		return nil
	},
	Columns: map[string]func(*lot.Lot) string{
		"id":           func(l *lot.Lot) string { return l.ID },
		"lot_number":   func(l *lot.Lot) string { return l.LotNumber },
		"status":       func(l *lot.Lot) string { return string(l.Status) },
		"project_code": func(l *lot.Lot) string { return l.ProjectCode },
		"block":        func(l *lot.Lot) string { return str(l.Block) },
	},
	Filters: []Filter{
		{Param: "lot_number", Column: "lot_number", Mode: Contains},
		{Param: "status", Column: "status", Mode: Exact},
		{Param: "project_code", Column: "project_code", Mode: Exact},
		{Param: "block", Column: "block", Mode: Exact},
	},
	Paged: true,
}

var CoOwners = Schema[coowner.CoOwner]{
	Resource:  "co-owners",
	Label:     "Co-owner",
	Table:     coowner.CoOwner{}.TableName(),
	KeyColumn: "id",
	Identity:  SequenceKey,
	Key:       func(c *coowner.CoOwner) string { return strconv.FormatInt(c.ID, 10) },
	SetKey: func(c *coowner.CoOwner, k string) error {
		n, err := parseSeq(k)
		c.ID = n
		return err
	},
	Columns: map[string]func(*coowner.CoOwner) string{
		"id":             func(c *coowner.CoOwner) string { return strconv.FormatInt(c.ID, 10) },
		"beneficiary_id": func(c *coowner.CoOwner) string { return i64(c.BeneficiaryID) },
	},
	Filters: []Filter{
		{Param: "beneficiary_id", Column: "beneficiary_id", Mode: Exact, Int: true},
	},
	Paged: true,
}

var EmploymentProfiles = Schema[employment.Profile]{
	Resource:  "employment-profiles",
	Label:     "Employment profile",
	Table:     employment.Profile{}.TableName(),
	KeyColumn: "id",
	Identity:  SequenceKey,
	Key:       func(e *employment.Profile) string { return strconv.FormatInt(e.ID, 10) },
	SetKey: func(e *employment.Profile, k string) error {
		n, err := parseSeq(k)
		e.ID = n
		return err
	},
	Columns: map[string]func(*employment.Profile) string{
		"id":             func(e *employment.Profile) string { return strconv.FormatInt(e.ID, 10) },
		"beneficiary_id": func(e *employment.Profile) string { return i64(e.BeneficiaryID) },
	},
	Filters: []Filter{
		{Param: "beneficiary_id", Column: "beneficiary_id", Mode: Exact, Int: true},
	},
	Paged: true,
}

var Properties = Schema[property.Property]{
	Resource:  "properties",
	Label:     "Property",
	Table:     property.Property{}.TableName(),
	KeyColumn: "geoid",
	Identity:  ClientKey,
	Key:       func(p *property.Property) string { return p.GeoID },
	SetKey: func(p *property.Property, k string) error {
		p.GeoID = k
		return nil
	},
	KeyChange: "Cannot change geoid; use delete and create instead",
	Columns: map[string]func(*property.Property) string{
		"geoid":        func(p *property.Property) string { return p.GeoID },
		"project_code": func(p *property.Property) string { return str(p.ProjectCode) },
		"common_code":  func(p *property.Property) string { return str(p.CommonCode) },
	},
	Filters: []Filter{
		{Param: "project_code", Column: "project_code", Mode: Exact},
		{Param: "common_code", Column: "common_code", Mode: Exact},
	},
	Paged: true,
}

var ProgramClasses = Schema[classification.ProgramClass]{
	Resource:  "program-classifications",
	Label:     "Program classification",
	Table:     classification.ProgramClass{}.TableName(),
	KeyColumn: "program_class",
	Identity:  ClientKey,
	Key:       func(c *classification.ProgramClass) string { return classification.FormatCode(c.ProgramClass) },
	SetKey: func(c *classification.ProgramClass, k string) error {
		v, err := classification.ParseCode(k)
		if err != nil {
			return BadRequestf("Invalid program_class value")
		}
		c.ProgramClass = v
		return nil
	},
	ParseKey: func(raw string) (string, error) {
		v, err := classification.ParseCode(raw)
		if err != nil {
			return "", BadRequestf("Invalid program_class value")
		}
		return classification.FormatCode(v), nil
	},
	Columns: map[string]func(*classification.ProgramClass) string{
		"program_class": func(c *classification.ProgramClass) string { return classification.FormatCode(c.ProgramClass) },
		"program_code":  func(c *classification.ProgramClass) string { return str(c.ProgramCode) },
	},
	Paged: true,
}

// Address returns the schema of one reference level.
func Address(l address.Level) Schema[address.Item] {
	label := l.Singular()
	return Schema[address.Item]{
		Resource:  "address/" + string(l),
		Label:     strings.ToUpper(label[:1]) + label[1:],
		Table:     l.Table(),
		KeyColumn: "code",
		Identity:  ClientKey,
		Key:       func(i *address.Item) string { return i.Code },
		SetKey: func(i *address.Item, k string) error {
			i.Code = k
			return nil
		},
		Columns: map[string]func(*address.Item) string{
			"code":        func(i *address.Item) string { return i.Code },
			"name":        func(i *address.Item) string { return i.Name },
			"parent_code": func(i *address.Item) string { return i.ParentCode },
		},
	}
}
