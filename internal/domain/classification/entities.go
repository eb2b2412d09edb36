package classification

import (
	"errors"
	"math"
	"strconv"
)

var ErrCode = errors.New("invalid program class code")

// ProgramClass is the lookup row referenced by projects.program_class.
// Identity is the client supplied decimal code.
type ProgramClass struct {
	ProgramClass float64 `gorm:"column:program_class;primaryKey;type:decimal(5,2)" json:"program_class" validate:"gte=0,lte=999.99"`
	Description  *string `gorm:"column:description;size:50" json:"description" validate:"omitempty,max=50"`
	ProgramCode  *string `gorm:"column:program_code;size:12" json:"program_code" validate:"omitempty,max=12"`
}

func (ProgramClass) TableName() string { return "program_classifications" }

// FormatCode renders a class code the same way wherever it is keyed.
func FormatCode(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// ParseCode accepts "1", "1.5" or "1.50".
func ParseCode(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrCode
	}
	return v, nil
}
