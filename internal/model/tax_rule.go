package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"taxengine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NameMaxLength bounds display names of tax rules and tax groups
const NameMaxLength = 50

// TaxType decides how Rate is interpreted
type TaxType string

// TaxType enum constants
const (
	TaxTypePercentage TaxType = "PERCENTAGE" // Rate is a fraction of the base, 0.15 = 15%
	TaxTypeFixed      TaxType = "FIXED"      // Rate is a flat currency amount
)

// Valid reports whether t is a recognized tax type
func (t TaxType) Valid() bool {
	return t == TaxTypePercentage || t == TaxTypeFixed
}

// TaxRule is a single named tax definition
type TaxRule struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(50);not null" json:"name"`
	Type        TaxType         `gorm:"column:type;type:varchar(20);not null;index" json:"type"` // PERCENTAGE, FIXED
	Rate        decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"rate"`
	IsActive    bool            `gorm:"not null;index" json:"is_active"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// NewTaxRule builds an active rule and validates it
func NewTaxRule(name string, taxType TaxType, rate decimal.Decimal) (*TaxRule, error) {
	rule := &TaxRule{
		Name:     strings.TrimSpace(name),
		Type:     taxType,
		Rate:     rate,
		IsActive: true,
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

// Validate enforces the rule invariants: bounded non-empty name, known type, rate >= 0
func (r *TaxRule) Validate() error {
	if err := ValidateName(r.Name); err != nil {
		return err
	}
	if !r.Type.Valid() {
		return apperror.NewValidation("type", "must be one of: PERCENTAGE, FIXED")
	}
	if r.Rate.IsNegative() {
		return apperror.NewValidation("rate", "must not be negative")
	}
	return nil
}

// ValidateName is shared by tax rules and tax groups
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperror.NewValidation("name", "is required")
	}
	if utf8.RuneCountInString(trimmed) > NameMaxLength {
		return apperror.NewValidation("name", "must be at most 50 characters")
	}
	return nil
}
