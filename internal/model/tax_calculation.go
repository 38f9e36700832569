package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalculationMode controls how several percentage rules combine
type CalculationMode string

const (
	// ModeParallel applies every percentage rule to the original base amount
	ModeParallel CalculationMode = "PARALLEL"
	// ModeCompound applies each percentage rule to base plus the tax accumulated before it, in group order
	ModeCompound CalculationMode = "COMPOUND"
)

func (m CalculationMode) Valid() bool {
	return m == ModeParallel || m == ModeCompound
}

// TaxBreakdownItem is one applied rule's contribution
type TaxBreakdownItem struct {
	TaxID     uuid.UUID
	TaxName   string
	TaxType   TaxType
	TaxRate   decimal.Decimal
	TaxAmount decimal.Decimal
}

// TaxCalculationResult is built once per calculation and not persisted
type TaxCalculationResult struct {
	BaseAmount    decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	EffectiveRate decimal.Decimal
	TaxBreakdown  []TaxBreakdownItem
}
