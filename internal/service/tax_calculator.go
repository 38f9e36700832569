package service

import (
	"taxengine/internal/model"
	"taxengine/pkg/apperror"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of minor-unit digits applied amounts are rounded to
const DefaultPrecision int32 = 2

// TaxCalculator computes tax for an amount against already-resolved rules.
// It holds no mutable state and is safe for concurrent use.
type TaxCalculator struct {
	precision int32
}

func NewTaxCalculator(precision int32) TaxCalculator {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return TaxCalculator{precision: precision}
}

// Precision is the number of decimal places applied amounts are rounded to
func (c TaxCalculator) Precision() int32 {
	return c.precision
}

// Calculate applies rules in parallel mode: every percentage rule taxes the original base.
func (c TaxCalculator) Calculate(baseAmount decimal.Decimal, rules []model.TaxRule) (model.TaxCalculationResult, error) {
	return c.CalculateWithMode(baseAmount, rules, model.ModeParallel)
}

// CalculateWithMode applies rules in the given order.
// Each applied amount is rounded half away from zero to the calculator precision
// before summation. The effective rate is kept unrounded.
// Inactive rules are not filtered here; callers pass the resolved set.
func (c TaxCalculator) CalculateWithMode(baseAmount decimal.Decimal, rules []model.TaxRule, mode model.CalculationMode) (model.TaxCalculationResult, error) {
	if baseAmount.IsNegative() {
		return model.TaxCalculationResult{}, apperror.NewNegativeAmount(baseAmount)
	}
	if mode == "" {
		mode = model.ModeParallel
	}
	if !mode.Valid() {
		return model.TaxCalculationResult{}, apperror.NewValidation("mode", "must be one of: PARALLEL, COMPOUND")
	}

	breakdown := make([]model.TaxBreakdownItem, 0, len(rules))
	taxAmount := decimal.Zero

	for _, rule := range rules {
		var applied decimal.Decimal
		switch rule.Type {
		case model.TaxTypePercentage:
			taxable := baseAmount
			if mode == model.ModeCompound {
				taxable = baseAmount.Add(taxAmount)
			}
			applied = taxable.Mul(rule.Rate).Round(c.precision)
		case model.TaxTypeFixed:
			applied = rule.Rate.Round(c.precision)
		default:
			return model.TaxCalculationResult{}, apperror.NewValidation("type", "unknown tax type '"+string(rule.Type)+"' on rule "+rule.ID.String())
		}

		taxAmount = taxAmount.Add(applied)
		breakdown = append(breakdown, model.TaxBreakdownItem{
			TaxID:     rule.ID,
			TaxName:   rule.Name,
			TaxType:   rule.Type,
			TaxRate:   rule.Rate,
			TaxAmount: applied,
		})
	}

	effectiveRate := decimal.Zero
	if baseAmount.IsPositive() {
		effectiveRate = taxAmount.Div(baseAmount)
	}

	return model.TaxCalculationResult{
		BaseAmount:    baseAmount,
		TaxAmount:     taxAmount,
		TotalAmount:   baseAmount.Add(taxAmount),
		EffectiveRate: effectiveRate,
		TaxBreakdown:  breakdown,
	}, nil
}
