package property

// Property is one surveyed parcel keyed by its geoid.
// Table: properties. Identity is client supplied and never changes.
type Property struct {
	GeoID             string   `gorm:"column:geoid;primaryKey;size:20" json:"geoid" validate:"required,max=20"`
	SourceGeoID       *string  `gorm:"column:source_geoid;size:20" json:"source_geoid" validate:"omitempty,max=20"`
	CommonCode        *string  `gorm:"column:common_code;size:20;index" json:"common_code" validate:"omitempty,max=20"`
	OldCommonCode     *string  `gorm:"column:old_common_code;size:20" json:"old_common_code" validate:"omitempty,max=20"`
	ProjectCode       *string  `gorm:"column:project_code;size:20;index" json:"project_code" validate:"omitempty,max=20"`
	SBPhase           *string  `gorm:"column:sb_phase;size:20" json:"sb_phase" validate:"omitempty,max=20"`
	SBSurvey          *string  `gorm:"column:sb_survey;size:20" json:"sb_survey" validate:"omitempty,max=20"`
	SBBlock           *string  `gorm:"column:sb_block;size:20" json:"sb_block" validate:"omitempty,max=20"`
	SBLot             *string  `gorm:"column:sb_lot;size:20" json:"sb_lot" validate:"omitempty,max=20"`
	DispositionStatus *string  `gorm:"column:disposition_status;size:1" json:"disposition_status" validate:"omitempty,max=1"`
	PropertyType      *string  `gorm:"column:property_type;size:3" json:"property_type" validate:"omitempty,max=3"`
	LHC               *string  `gorm:"column:lhc;size:1" json:"lhc" validate:"omitempty,max=1"`
	DevelopmentStatus *string  `gorm:"column:development_status;size:1" json:"development_status" validate:"omitempty,max=1"`
	AreaSqm           *float64 `gorm:"column:area_sqm;type:decimal(15,2)" json:"area_sqm" validate:"omitempty,gte=0"`
	TCTNo             *string  `gorm:"column:tct_no;size:20" json:"tct_no" validate:"omitempty,max=20"`
	TCTDate           *string  `gorm:"column:tct_date;size:10" json:"tct_date" validate:"omitempty,datetime=2006-01-02"`
	PriceSqm          *float64 `gorm:"column:price_sqm;type:decimal(8,2)" json:"price_sqm" validate:"omitempty,gte=0"`
	ProgramClass      *float64 `gorm:"column:program_class;type:decimal(5,2)" json:"program_class" validate:"omitempty,gte=0"`
	ModeDisposition   *string  `gorm:"column:mode_disposition;size:1" json:"mode_disposition" validate:"omitempty,max=1"`
	DispositionDate   *string  `gorm:"column:disposition_date;size:10" json:"disposition_date" validate:"omitempty,datetime=2006-01-02"`
	DispositionTarget *string  `gorm:"column:disposition_target;size:1" json:"disposition_target" validate:"omitempty,max=1"`
	TransactionType   *string  `gorm:"column:transaction_type;size:1" json:"transaction_type" validate:"omitempty,max=1"`
	TransactionDate   *string  `gorm:"column:transaction_date;size:10" json:"transaction_date" validate:"omitempty,datetime=2006-01-02"`
	SalesReportNo     *string  `gorm:"column:sales_report_no;size:21" json:"sales_report_no" validate:"omitempty,max=21"`
	SalesReportDate   *string  `gorm:"column:sales_report_date;size:10" json:"sales_report_date" validate:"omitempty,datetime=2006-01-02"`
	EffectivityDate   *string  `gorm:"column:effectivity_date;size:10" json:"effectivity_date" validate:"omitempty,datetime=2006-01-02"`
	ProductionDate    *string  `gorm:"column:production_date;size:10" json:"production_date" validate:"omitempty,datetime=2006-01-02"`
	OldArea           *float64 `gorm:"column:old_area;type:decimal(15,2)" json:"old_area" validate:"omitempty,gte=0"`
	EMDTag            *string  `gorm:"column:emd_tag;size:1" json:"emd_tag" validate:"omitempty,max=1"`
	PrincipalAmount   *float64 `gorm:"column:principal_amount;type:decimal(14,2)" json:"principal_amount" validate:"omitempty,gte=0"`
	HouseInterestRate *float64 `gorm:"column:house_interest_rate;type:decimal(5,2)" json:"house_interest_rate" validate:"omitempty,gte=0"`
	HouseAreaSqm      *float64 `gorm:"column:house_area_sqm;type:decimal(10,2)" json:"house_area_sqm" validate:"omitempty,gte=0"`
	HousePrice        *float64 `gorm:"column:house_price;type:decimal(10,2)" json:"house_price" validate:"omitempty,gte=0"`
	HouseModel        *string  `gorm:"column:house_model;size:10" json:"house_model" validate:"omitempty,max=10"`
	HouseDownpayment  *float64 `gorm:"column:house_downpayment;type:decimal(10,2)" json:"house_downpayment" validate:"omitempty,gte=0"`
	HouseTerms        *float64 `gorm:"column:house_terms;type:decimal(5,2)" json:"house_terms" validate:"omitempty,gte=0"`
	HouseAmortization *float64 `gorm:"column:house_amortization;type:decimal(10,2)" json:"house_amortization" validate:"omitempty,gte=0"`
	HouseInputDate    *string  `gorm:"column:house_input_date;size:10" json:"house_input_date" validate:"omitempty,datetime=2006-01-02"`
	FvacOcc           *string  `gorm:"column:fvac_occ;size:3" json:"fvac_occ" validate:"omitempty,max=3"`
	Indicator         *string  `gorm:"column:indicator;size:1" json:"indicator" validate:"omitempty,max=1"`
	InpDate           *string  `gorm:"column:inp_date;size:10" json:"inp_date" validate:"omitempty,datetime=2006-01-02"`
	NTag              *string  `gorm:"column:ntag;size:3" json:"ntag" validate:"omitempty,max=3"`
	ActiveStat        *string  `gorm:"column:active_stat;size:3" json:"active_stat" validate:"omitempty,max=3"`
}

func (Property) TableName() string { return "properties" }
