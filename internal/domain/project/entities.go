package project

import (
	"time"

	"gorm.io/gorm"

	"lis-dashboard/internal/domain/approval"
)

// Table: projects. Identity is the client supplied project_code.
type Project struct {
	ProjectCode         string     `gorm:"column:project_code;primaryKey;size:20" json:"project_code" validate:"required,max=20"`
	ProjectName         *string    `gorm:"column:project_name;size:60" json:"project_name" validate:"omitempty,max=60"`
	ProjectProgID       *int64     `gorm:"column:project_prog_id;index" json:"project_prog_id"`
	TotalArea           *float64   `gorm:"column:total_area;type:decimal(15,2)" json:"total_area" validate:"omitempty,gte=0"`
	ProjectCost         *float64   `gorm:"column:project_cost;type:decimal(11,2)" json:"project_cost" validate:"omitempty,gte=0"`
	LotType             *string    `gorm:"column:lot_type;size:1" json:"lot_type" validate:"omitempty,max=1"`
	RegionCode          *string    `gorm:"column:region_code;size:8;index" json:"region_code" validate:"omitempty,max=8"`
	ProvinceCode        *string    `gorm:"column:province_code;size:12" json:"province_code" validate:"omitempty,max=12"`
	MunicipalCode       *string    `gorm:"column:municipal_code;size:14" json:"municipal_code" validate:"omitempty,max=14"`
	BarangayCode        *string    `gorm:"column:barangay_code;size:16" json:"barangay_code" validate:"omitempty,max=16"`
	DistrictCode        *string    `gorm:"column:district_code;size:1" json:"district_code" validate:"omitempty,max=1"`
	InpDate             *string    `gorm:"column:inp_date;size:10" json:"inp_date" validate:"omitempty,datetime=2006-01-02"`
	Downpayment         *float64   `gorm:"column:downpayment;type:decimal(11,2)" json:"downpayment" validate:"omitempty,gte=0"`
	MonthlyAmortization *float64   `gorm:"column:monthly_amortization;type:decimal(11,2)" json:"monthly_amortization" validate:"omitempty,gte=0"`
	InterestRate        *float64   `gorm:"column:interest_rate;type:decimal(7,4)" json:"interest_rate" validate:"omitempty,rate"`
	DelinquencyRate     *float64   `gorm:"column:delinquency_rate;type:decimal(7,4)" json:"delinquency_rate" validate:"omitempty,rate"`
	SellingPrice        *float64   `gorm:"column:selling_price;type:decimal(15,2)" json:"selling_price" validate:"omitempty,gte=0"`
	TermsYr             *int       `gorm:"column:terms_yr" json:"terms_yr" validate:"omitempty,years"`
	CreatedAt           *time.Time `gorm:"column:created_at" json:"created_at"`

	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	approval.Lifecycle
}

func (Project) TableName() string { return "projects" }

func (p *Project) Approval() *approval.Lifecycle { return &p.Lifecycle }
