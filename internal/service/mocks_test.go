package service

import (
	"context"

	"taxengine/internal/model"
	"taxengine/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTaxRuleRepository is a mock implementation of repository.TaxRuleRepository.
type MockTaxRuleRepository struct {
	mock.Mock
}

func (m *MockTaxRuleRepository) Create(ctx context.Context, rule *model.TaxRule) error {
	args := m.Called(ctx, rule)
	if args.Error(0) == nil && rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockTaxRuleRepository) Update(ctx context.Context, rule *model.TaxRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *MockTaxRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxRule, error) {
	args := m.Called(ctx, id)
	rule, _ := args.Get(0).(*model.TaxRule)
	return rule, args.Error(1)
}

func (m *MockTaxRuleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.TaxRule, error) {
	args := m.Called(ctx, ids)
	rules, _ := args.Get(0).([]model.TaxRule)
	return rules, args.Error(1)
}

func (m *MockTaxRuleRepository) List(ctx context.Context, filter repository.TaxRuleFilter) ([]model.TaxRule, int64, error) {
	args := m.Called(ctx, filter)
	rules, _ := args.Get(0).([]model.TaxRule)
	return rules, args.Get(1).(int64), args.Error(2)
}

// MockTaxGroupRepository is a mock implementation of repository.TaxGroupRepository.
type MockTaxGroupRepository struct {
	mock.Mock
}

func (m *MockTaxGroupRepository) Create(ctx context.Context, group *model.TaxGroup) error {
	args := m.Called(ctx, group)
	if args.Error(0) == nil && group.ID == uuid.Nil {
		group.ID = uuid.New()
		for i := range group.Members {
			group.Members[i].TaxGroupID = group.ID
		}
	}
	return args.Error(0)
}

func (m *MockTaxGroupRepository) Update(ctx context.Context, group *model.TaxGroup) error {
	return m.Called(ctx, group).Error(0)
}

func (m *MockTaxGroupRepository) ReplaceMembers(ctx context.Context, groupID uuid.UUID, members []model.TaxGroupMember) error {
	return m.Called(ctx, groupID, members).Error(0)
}

func (m *MockTaxGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxGroup, error) {
	args := m.Called(ctx, id)
	group, _ := args.Get(0).(*model.TaxGroup)
	return group, args.Error(1)
}

func (m *MockTaxGroupRepository) List(ctx context.Context, filter repository.TaxGroupFilter) ([]model.TaxGroup, int64, error) {
	args := m.Called(ctx, filter)
	groups, _ := args.Get(0).([]model.TaxGroup)
	return groups, args.Get(1).(int64), args.Error(2)
}

// MockAuditRepository is a mock implementation of repository.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAuditRepository) List(ctx context.Context, entityID string, page, limit int) ([]model.AuditLog, int64, error) {
	args := m.Called(ctx, entityID, page, limit)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Get(1).(int64), args.Error(2)
}

// inlineTx runs the unit of work directly, without a database
type inlineTx struct {
	calls int
}

func (t *inlineTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type publishedEvent struct {
	Type     string
	EntityID string
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(eventType, entityID string) {
	p.events = append(p.events, publishedEvent{Type: eventType, EntityID: entityID})
}

func percentageRule(name, rate string) model.TaxRule {
	return model.TaxRule{ID: uuid.New(), Name: name, Type: model.TaxTypePercentage, Rate: mustDecimal(rate), IsActive: true}
}

func fixedRule(name, amount string) model.TaxRule {
	return model.TaxRule{ID: uuid.New(), Name: name, Type: model.TaxTypeFixed, Rate: mustDecimal(amount), IsActive: true}
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
