package application

import (
	"time"

	"gorm.io/gorm"
)

// Table: applications. Identity is a server assigned UUID.
type Application struct {
	AppID              string     `gorm:"column:app_id;primaryKey;size:36" json:"app_id"`
	PrequalificationNo *string    `gorm:"column:prequalification_no;size:255;index" json:"prequalification_no" validate:"omitempty,max=255"`
	Origin             *string    `gorm:"column:origin;size:255" json:"origin" validate:"omitempty,max=255"`
	Indicator          *string    `gorm:"column:indicator;size:255" json:"indicator" validate:"omitempty,max=255"`
	TenurialCode       *string    `gorm:"column:tenurial_code;size:64" json:"tenurial_code" validate:"omitempty,max=64"`
	ApplicationType    *string    `gorm:"column:application_type;size:64" json:"application_type" validate:"omitempty,max=64"`
	CurrentAddr        *string    `gorm:"column:current_addr;type:text" json:"current_addr"`
	LastName           *string    `gorm:"column:last_name;size:255" json:"last_name" validate:"omitempty,max=255"`
	FirstName          *string    `gorm:"column:first_name;size:255" json:"first_name" validate:"omitempty,max=255"`
	MiddleName         *string    `gorm:"column:middle_name;size:255" json:"middle_name" validate:"omitempty,max=255"`
	BirthDate          *string    `gorm:"column:birth_date;size:10" json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Sex                *string    `gorm:"column:sex;size:32" json:"sex" validate:"omitempty,max=32"`
	CivilStatus        *string    `gorm:"column:civil_status;size:64" json:"civil_status" validate:"omitempty,max=64"`
	Address            *string    `gorm:"column:address;type:text" json:"address"`
	RegionCode         *string    `gorm:"column:region_code;size:8" json:"region_code" validate:"omitempty,max=8"`
	ProvinceCode       *string    `gorm:"column:province_code;size:12" json:"province_code" validate:"omitempty,max=12"`
	MunicipalCode      *string    `gorm:"column:municipal_code;size:14" json:"municipal_code" validate:"omitempty,max=14"`
	BarangayCode       *string    `gorm:"column:barangay_code;size:16" json:"barangay_code" validate:"omitempty,max=16"`
	DistrictCode       *string    `gorm:"column:district_code;size:2" json:"district_code" validate:"omitempty,max=2"`
	ValidIDImage       *string    `gorm:"column:valid_id_image;type:text" json:"valid_id_image"`
	ValidIDType        *string    `gorm:"column:valid_id_type;size:64" json:"valid_id_type" validate:"omitempty,max=64"`
	CreatedAt          *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          *time.Time `gorm:"column:updated_at" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Application) TableName() string { return "applications" }
