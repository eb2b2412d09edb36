package lot

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusAwarded   Status = "awarded"
)

// Table: lots. Read only; award flows are not modelled.
type Lot struct {
	ID          string   `gorm:"column:id;primaryKey;size:36" json:"id"`
	LotNumber   string   `gorm:"column:lot_number;size:32" json:"lot_number"`
	Block       *string  `gorm:"column:block;size:32" json:"block"`
	Status      Status   `gorm:"column:status;size:16;index" json:"status" validate:"oneof=available reserved awarded"`
	ProjectCode string   `gorm:"column:project_code;size:20;index" json:"project_code"`
	Area        *float64 `gorm:"column:area;type:decimal(15,2)" json:"area"`
}

func (Lot) TableName() string { return "lots" }
