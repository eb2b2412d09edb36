package program

import (
	"gorm.io/gorm"

	"lis-dashboard/internal/domain/approval"
)

// Table: programs. Identity is a server sequence.
type Program struct {
	ProjectProgID   int64    `gorm:"column:project_prog_id;primaryKey;autoIncrement" json:"project_prog_id"`
	MCRef           *string  `gorm:"column:mc_ref;size:50" json:"mc_ref" validate:"omitempty,max=50"`
	InterestRate    *float64 `gorm:"column:interest_rate;type:decimal(7,4)" json:"interest_rate" validate:"omitempty,rate"`
	DelinquencyRate *float64 `gorm:"column:delinquency_rate;type:decimal(7,4)" json:"delinquency_rate" validate:"omitempty,rate"`
	MaxTermYrs      *int     `gorm:"column:max_term_yrs" json:"max_term_yrs" validate:"omitempty,years"`

	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	approval.Lifecycle
}

func (Program) TableName() string { return "programs" }

func (p *Program) Approval() *approval.Lifecycle { return &p.Lifecycle }
