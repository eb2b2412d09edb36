package beneficiary

import "gorm.io/gorm"

// Table: beneficiaries. Identity is a server sequence.
type Beneficiary struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BIN            *string `gorm:"column:bin;size:9;index" json:"bin" validate:"omitempty,max=9"`
	AppID          *string `gorm:"column:app_id;size:10" json:"app_id" validate:"omitempty,max=10"`
	LastName       *string `gorm:"column:last_name;size:25" json:"last_name" validate:"omitempty,max=25"`
	FirstName      *string `gorm:"column:first_name;size:25" json:"first_name" validate:"omitempty,max=25"`
	MiddleName     *string `gorm:"column:middle_name;size:25" json:"middle_name" validate:"omitempty,max=25"`
	BirthDate      *string `gorm:"column:birth_date;size:10" json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Sex            *string `gorm:"column:sex;size:32" json:"sex" validate:"omitempty,max=32"`
	CivilStatus    *string `gorm:"column:civil_status;size:64" json:"civil_status" validate:"omitempty,max=64"`
	Address        *string `gorm:"column:address;type:text" json:"address"`
	RegionCode     *string `gorm:"column:region_code;size:8" json:"region_code" validate:"omitempty,max=8"`
	ProvinceCode   *string `gorm:"column:province_code;size:12" json:"province_code" validate:"omitempty,max=12"`
	MunicipalCode  *string `gorm:"column:municipal_code;size:14" json:"municipal_code" validate:"omitempty,max=14"`
	BarangayCode   *string `gorm:"column:barangay_code;size:16" json:"barangay_code" validate:"omitempty,max=16"`
	DistrictCode   *string `gorm:"column:district_code;size:2" json:"district_code" validate:"omitempty,max=2"`
	MembershipCode *string `gorm:"column:membership_code;size:1" json:"membership_code" validate:"omitempty,max=1"`
	OldCommonCode  *string `gorm:"column:old_common_code;size:20" json:"old_common_code" validate:"omitempty,max=20"`
	CommonCode     *string `gorm:"column:common_code;size:20" json:"common_code" validate:"omitempty,max=20"`
	ActTag         *string `gorm:"column:act_tag;size:1" json:"act_tag" validate:"omitempty,max=1"`
	Indicator      *string `gorm:"column:indicator;size:1" json:"indicator" validate:"omitempty,max=1"`
	InpDate        *string `gorm:"column:inp_date;size:10" json:"inp_date" validate:"omitempty,datetime=2006-01-02"`
	SSP            *string `gorm:"column:ssp;size:1" json:"ssp" validate:"omitempty,max=1"`
	Category       *string `gorm:"column:category;size:10" json:"category" validate:"omitempty,max=10"`

	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Beneficiary) TableName() string { return "beneficiaries" }
