package service

import (
	"context"
	"log"
	"strings"

	"taxengine/internal/model"
	"taxengine/pkg/apperror"

	"github.com/shopspring/decimal"
)

// effectiveRateDisplayPlaces only affects rendering; the computed rate is never rounded
const effectiveRateDisplayPlaces = 4

// --- DTOs ---

type CalculateTaxRequest struct {
	TaxGroupID string `json:"tax_group_id" binding:"required"`
	BaseAmount string `json:"base_amount" binding:"required"` // Decimal string, e.g. "100.00"
	Mode       string `json:"mode"`                           // PARALLEL (default) or COMPOUND
}

type PreviewTaxRequest struct {
	TaxIDs     []string `json:"tax_ids"`
	BaseAmount string   `json:"base_amount" binding:"required"`
	Mode       string   `json:"mode"`
}

type TaxBreakdownResponse struct {
	TaxID     string `json:"tax_id"`
	TaxName   string `json:"tax_name"`
	TaxType   string `json:"tax_type"`
	TaxRate   string `json:"tax_rate"`
	TaxAmount string `json:"tax_amount"`
}

type TaxCalculationResponse struct {
	TaxGroupID    string                 `json:"tax_group_id,omitempty"`
	TaxGroupName  string                 `json:"tax_group_name,omitempty"`
	Mode          string                 `json:"mode"`
	BaseAmount    string                 `json:"base_amount"`
	TaxAmount     string                 `json:"tax_amount"`
	TotalAmount   string                 `json:"total_amount"`
	EffectiveRate string                 `json:"effective_rate"`
	TaxBreakdown  []TaxBreakdownResponse `json:"tax_breakdown"`
}

// --- Interface ---

type TaxCalculationService interface {
	Calculate(ctx context.Context, req CalculateTaxRequest) (TaxCalculationResponse, error)
	Preview(ctx context.Context, req PreviewTaxRequest) (TaxCalculationResponse, error)
}

type taxCalculationService struct {
	resolver   TaxGroupResolver
	calculator TaxCalculator
}

func NewTaxCalculationService(resolver TaxGroupResolver, calculator TaxCalculator) TaxCalculationService {
	return &taxCalculationService{resolver: resolver, calculator: calculator}
}

// --- Implementation ---

// Calculate resolves the group's active rules and computes tax on the base amount
func (s *taxCalculationService) Calculate(ctx context.Context, req CalculateTaxRequest) (TaxCalculationResponse, error) {
	groupID, err := parseID("tax_group_id", req.TaxGroupID)
	if err != nil {
		return TaxCalculationResponse{}, err
	}
	base, mode, err := parseCalculationInput(req.BaseAmount, req.Mode)
	if err != nil {
		return TaxCalculationResponse{}, err
	}

	group, rules, err := s.resolver.Resolve(ctx, groupID)
	if err != nil {
		return TaxCalculationResponse{}, err
	}

	result, err := s.calculator.CalculateWithMode(base, rules, mode)
	if err != nil {
		return TaxCalculationResponse{}, err
	}

	log.Printf("tax calculated: group=%s rules=%d/%d base=%s tax=%s mode=%s",
		group.ID, len(rules), len(group.Members), result.BaseAmount, result.TaxAmount, mode)

	resp := toTaxCalculationResponse(result, mode, s.calculator.Precision())
	resp.TaxGroupID = group.ID.String()
	resp.TaxGroupName = group.Name
	return resp, nil
}

// Preview computes tax against an explicit rule list, e.g. before a group is saved
func (s *taxCalculationService) Preview(ctx context.Context, req PreviewTaxRequest) (TaxCalculationResponse, error) {
	ids, err := parseTaxIDs(req.TaxIDs)
	if err != nil {
		return TaxCalculationResponse{}, err
	}
	if err := model.ValidateTaxIDs(ids, false); err != nil {
		return TaxCalculationResponse{}, err
	}
	base, mode, err := parseCalculationInput(req.BaseAmount, req.Mode)
	if err != nil {
		return TaxCalculationResponse{}, err
	}

	rules, err := s.resolver.ResolveRules(ctx, ids)
	if err != nil {
		return TaxCalculationResponse{}, err
	}

	result, err := s.calculator.CalculateWithMode(base, rules, mode)
	if err != nil {
		return TaxCalculationResponse{}, err
	}
	return toTaxCalculationResponse(result, mode, s.calculator.Precision()), nil
}

// --- Helpers ---

func parseCalculationInput(rawAmount, rawMode string) (decimal.Decimal, model.CalculationMode, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return decimal.Zero, "", &apperror.InvalidAmountError{Amount: rawAmount, Reason: "must be a decimal number"}
	}
	if amount.IsNegative() {
		return decimal.Zero, "", apperror.NewNegativeAmount(amount)
	}

	mode := model.CalculationMode(strings.ToUpper(strings.TrimSpace(rawMode)))
	if mode == "" {
		mode = model.ModeParallel
	}
	if !mode.Valid() {
		return decimal.Zero, "", apperror.NewValidation("mode", "must be one of: PARALLEL, COMPOUND")
	}
	return amount, mode, nil
}

func toTaxCalculationResponse(r model.TaxCalculationResult, mode model.CalculationMode, places int32) TaxCalculationResponse {
	breakdown := make([]TaxBreakdownResponse, 0, len(r.TaxBreakdown))
	for _, item := range r.TaxBreakdown {
		breakdown = append(breakdown, TaxBreakdownResponse{
			TaxID:     item.TaxID.String(),
			TaxName:   item.TaxName,
			TaxType:   string(item.TaxType),
			TaxRate:   item.TaxRate.String(),
			TaxAmount: item.TaxAmount.StringFixed(places),
		})
	}

	return TaxCalculationResponse{
		Mode:          string(mode),
		BaseAmount:    r.BaseAmount.StringFixed(places),
		TaxAmount:     r.TaxAmount.StringFixed(places),
		TotalAmount:   r.TotalAmount.StringFixed(places),
		EffectiveRate: r.EffectiveRate.StringFixed(effectiveRateDisplayPlaces),
		TaxBreakdown:  breakdown,
	}
}
