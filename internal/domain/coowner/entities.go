package coowner

// Table: co_owners. Identity is a server sequence.
type CoOwner struct {
	ID               int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BeneficiaryID    *int64  `gorm:"column:beneficiary_id;index" json:"beneficiary_id"`
	LastName         *string `gorm:"column:last_name;size:25" json:"last_name" validate:"omitempty,max=25"`
	FirstName        *string `gorm:"column:first_name;size:25" json:"first_name" validate:"omitempty,max=25"`
	MiddleName       *string `gorm:"column:middle_name;size:25" json:"middle_name" validate:"omitempty,max=25"`
	BirthDate        *string `gorm:"column:birth_date;size:10" json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Sex              *string `gorm:"column:sex;size:1" json:"sex" validate:"omitempty,max=1"`
	CivilStatus      *string `gorm:"column:civil_status;size:1" json:"civil_status" validate:"omitempty,max=1"`
	RelationshipType *string `gorm:"column:relationship_type;size:1" json:"relationship_type" validate:"omitempty,max=1"`
	Sequence         *int    `gorm:"column:sequence" json:"sequence"`
	Address1         *string `gorm:"column:address1;size:30" json:"address1" validate:"omitempty,max=30"`
	Address2         *string `gorm:"column:address2;size:30" json:"address2" validate:"omitempty,max=30"`
	SpouseLastName   *string `gorm:"column:spouse_last_name;size:25" json:"spouse_last_name" validate:"omitempty,max=25"`
	SpouseFirstName  *string `gorm:"column:spouse_first_name;size:25" json:"spouse_first_name" validate:"omitempty,max=25"`
	SpouseMiddleName *string `gorm:"column:spouse_middle_name;size:25" json:"spouse_middle_name" validate:"omitempty,max=25"`
	SpouseBirthDate  *string `gorm:"column:spouse_birth_date;size:10" json:"spouse_birth_date" validate:"omitempty,datetime=2006-01-02"`
	MembershipCode   *string `gorm:"column:membership_code;size:1" json:"membership_code" validate:"omitempty,max=1"`
	SSP              *string `gorm:"column:ssp;size:1" json:"ssp" validate:"omitempty,max=1"`
	Category         *string `gorm:"column:category;size:10" json:"category" validate:"omitempty,max=10"`
}

func (CoOwner) TableName() string { return "co_owners" }
