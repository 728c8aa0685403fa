package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CommissionSubjectProvider = "provider"
	CommissionSubjectCourier  = "courier"
)

// CommissionRule is one row of the commission policy store. SubjectID=nil is
// the default rule for the subject type; a row with a SubjectID overrides it.
// Exactly one of Percent or Flat should be set; Flat wins when both are.
type CommissionRule struct {
	gorm.Model
	Subject   string `gorm:"size:20;index:idx_commission_subject" json:"subject"`
	SubjectID *uint  `gorm:"index:idx_commission_subject" json:"subjectId,omitempty"`

	Percent *decimal.Decimal `gorm:"type:decimal(6,4)" json:"percent,omitempty"`
	Flat    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"flat,omitempty"`
}
