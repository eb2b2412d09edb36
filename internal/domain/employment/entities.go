package employment

// Profile is the employment and household record of a beneficiary.
// Table: employment_profiles. Identity is a server sequence.
type Profile struct {
	ID                 int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BeneficiaryID      *int64   `gorm:"column:beneficiary_id;index" json:"beneficiary_id"`
	EducationCode      *string  `gorm:"column:education_code;size:1" json:"education_code" validate:"omitempty,max=1"`
	Employer           *string  `gorm:"column:employer;size:20" json:"employer" validate:"omitempty,max=20"`
	Position           *string  `gorm:"column:position;size:15" json:"position" validate:"omitempty,max=15"`
	MonthlyIncome      *float64 `gorm:"column:monthly_income;type:decimal(10,2)" json:"monthly_income" validate:"omitempty,gte=0"`
	MonthlyExpense     *float64 `gorm:"column:monthly_expense;type:decimal(10,2)" json:"monthly_expense" validate:"omitempty,gte=0"`
	NoHouseholdMembers *int     `gorm:"column:no_household_members" json:"no_household_members" validate:"omitempty,gte=0"`
}

func (Profile) TableName() string { return "employment_profiles" }
