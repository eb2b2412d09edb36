package address

// Item is one row of a reference level. ParentCode links a level to
// the one above it; regions have none.
type Item struct {
	Code       string `gorm:"column:code;primaryKey;size:16" json:"code"`
	Name       string `gorm:"column:name;size:255" json:"name"`
	ParentCode string `gorm:"column:parent_code;size:14" json:"parent_code,omitempty"`
}

type Level string

const (
	Regions        Level = "regions"
	Provinces      Level = "provinces"
	Municipalities Level = "municipalities"
	Barangays      Level = "barangays"
)

var Levels = []Level{Regions, Provinces, Municipalities, Barangays}

func ParseLevel(s string) (Level, bool) {
	for _, l := range Levels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

func (l Level) Parent() Level {
	switch l {
	case Provinces:
		return Regions
	case Municipalities:
		return Provinces
	case Barangays:
		return Municipalities
	}
	return ""
}

func (l Level) Child() Level {
	switch l {
	case Regions:
		return Provinces
	case Provinces:
		return Municipalities
	case Municipalities:
		return Barangays
	}
	return ""
}

// ParentParam is the query/body key that carries the parent code.
func (l Level) ParentParam() string {
	switch l {
	case Provinces:
		return "region_code"
	case Municipalities:
		return "province_code"
	case Barangays:
		return "municipal_code"
	}
	return ""
}

func (l Level) Singular() string {
	switch l {
	case Regions:
		return "region"
	case Provinces:
		return "province"
	case Municipalities:
		return "municipality"
	case Barangays:
		return "barangay"
	}
	return string(l)
}

func (l Level) Table() string { return "address_" + string(l) }

// CodeMax mirrors the column widths of each level.
func (l Level) CodeMax() int {
	switch l {
	case Regions:
		return 8
	case Provinces:
		return 12
	case Municipalities:
		return 14
	case Barangays:
		return 16
	}
	return 0
}

const NameMax = 255
