package service

import (
	"context"
	"testing"

	"taxengine/internal/model"
	"taxengine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCalculationService() (TaxCalculationService, *MockTaxGroupRepository, *MockTaxRuleRepository) {
	groups := new(MockTaxGroupRepository)
	rules := new(MockTaxRuleRepository)
	svc := NewTaxCalculationService(NewTaxGroupResolver(groups, rules), NewTaxCalculator(DefaultPrecision))
	return svc, groups, rules
}

func TestTaxCalculationService_Calculate(t *testing.T) {
	svc, groups, rules := newCalculationService()
	vat, city, eco := percentageRule("VAT", "0.10"), percentageRule("City", "0.05"), fixedRule("Eco", "2")
	group := newGroup(true, vat.ID, city.ID, eco.ID)

	groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
	rules.On("FindByIDs", mock.Anything, group.TaxIDs()).Return([]model.TaxRule{eco, city, vat}, nil)

	resp, err := svc.Calculate(context.Background(), CalculateTaxRequest{
		TaxGroupID: group.ID.String(),
		BaseAmount: "100",
	})
	require.NoError(t, err)

	assert.Equal(t, group.ID.String(), resp.TaxGroupID)
	assert.Equal(t, "Retail", resp.TaxGroupName)
	assert.Equal(t, "PARALLEL", resp.Mode)
	assert.Equal(t, "100.00", resp.BaseAmount)
	assert.Equal(t, "17.00", resp.TaxAmount)
	assert.Equal(t, "117.00", resp.TotalAmount)
	assert.Equal(t, "0.1700", resp.EffectiveRate)

	require.Len(t, resp.TaxBreakdown, 3)
	assert.Equal(t, TaxBreakdownResponse{
		TaxID: vat.ID.String(), TaxName: "VAT", TaxType: "PERCENTAGE", TaxRate: "0.1", TaxAmount: "10.00",
	}, resp.TaxBreakdown[0])
	assert.Equal(t, "City", resp.TaxBreakdown[1].TaxName)
	assert.Equal(t, "2.00", resp.TaxBreakdown[2].TaxAmount)
}

func TestTaxCalculationService_CalculateCompound(t *testing.T) {
	svc, groups, rules := newCalculationService()
	vat, city := percentageRule("VAT", "0.10"), percentageRule("City", "0.05")
	group := newGroup(true, vat.ID, city.ID)

	groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
	rules.On("FindByIDs", mock.Anything, group.TaxIDs()).Return([]model.TaxRule{vat, city}, nil)

	resp, err := svc.Calculate(context.Background(), CalculateTaxRequest{
		TaxGroupID: group.ID.String(), BaseAmount: "100", Mode: " compound",
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPOUND", resp.Mode)
	assert.Equal(t, "15.50", resp.TaxAmount)
}

func TestTaxCalculationService_CalculateErrors(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		svc, groups, _ := newCalculationService()
		_, err := svc.Calculate(context.Background(), CalculateTaxRequest{TaxGroupID: uuid.NewString(), BaseAmount: "-5"})
		assert.True(t, apperror.IsInvalidAmount(err))
		groups.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unparsable amount", func(t *testing.T) {
		svc, groups, _ := newCalculationService()
		_, err := svc.Calculate(context.Background(), CalculateTaxRequest{TaxGroupID: uuid.NewString(), BaseAmount: "12,50"})
		assert.True(t, apperror.IsInvalidAmount(err))
		groups.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("bad group id", func(t *testing.T) {
		svc, _, _ := newCalculationService()
		_, err := svc.Calculate(context.Background(), CalculateTaxRequest{TaxGroupID: "retail", BaseAmount: "1"})
		var ve *apperror.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "tax_group_id", ve.Field)
	})

	t.Run("unknown mode", func(t *testing.T) {
		svc, _, _ := newCalculationService()
		_, err := svc.Calculate(context.Background(), CalculateTaxRequest{TaxGroupID: uuid.NewString(), BaseAmount: "1", Mode: "stacked"})
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("missing group", func(t *testing.T) {
		svc, groups, _ := newCalculationService()
		id := uuid.New()
		groups.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Calculate(context.Background(), CalculateTaxRequest{TaxGroupID: id.String(), BaseAmount: "1"})
		assert.Equal(t, 404, apperror.StatusCode(err))
	})
}

func TestTaxCalculationService_Preview(t *testing.T) {
	svc, groups, rules := newCalculationService()
	vat, retired := percentageRule("VAT", "0.2"), fixedRule("Retired", "9")
	retired.IsActive = false

	rules.On("FindByIDs", mock.Anything, []uuid.UUID{retired.ID, vat.ID}).Return([]model.TaxRule{vat, retired}, nil)

	resp, err := svc.Preview(context.Background(), PreviewTaxRequest{
		TaxIDs:     []string{retired.ID.String(), vat.ID.String()},
		BaseAmount: "19.99",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.TaxGroupID)
	assert.Equal(t, "4.00", resp.TaxAmount)
	assert.Equal(t, "23.99", resp.TotalAmount)
	require.Len(t, resp.TaxBreakdown, 1)
	assert.Equal(t, "VAT", resp.TaxBreakdown[0].TaxName)
	groups.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestTaxCalculationService_PreviewRejectsDuplicates(t *testing.T) {
	svc, _, rules := newCalculationService()
	id := uuid.NewString()

	_, err := svc.Preview(context.Background(), PreviewTaxRequest{TaxIDs: []string{id, id}, BaseAmount: "1"})
	assert.True(t, apperror.IsValidation(err))
	rules.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}
