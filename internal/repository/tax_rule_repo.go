package repository

import (
	"context"

	"taxengine/internal/model"
	"taxengine/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxRuleSortColumns are the columns List accepts in ?sort=
var TaxRuleSortColumns = []string{"name", "type", "rate", "created_at", "updated_at"}

// TaxRuleFilter narrows List results
type TaxRuleFilter struct {
	Type     model.TaxType
	IsActive *bool
	Search   string
	pagination.Params
}

type TaxRuleRepository interface {
	Create(ctx context.Context, rule *model.TaxRule) error
	Update(ctx context.Context, rule *model.TaxRule) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TaxRule, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.TaxRule, error)
	List(ctx context.Context, filter TaxRuleFilter) ([]model.TaxRule, int64, error)
}

type taxRuleRepository struct {
	db *gorm.DB
}

func NewTaxRuleRepository(db *gorm.DB) TaxRuleRepository {
	return &taxRuleRepository{db: db}
}

func (r *taxRuleRepository) Create(ctx context.Context, rule *model.TaxRule) error {
	return GetDB(ctx, r.db).Create(rule).Error
}

func (r *taxRuleRepository) Update(ctx context.Context, rule *model.TaxRule) error {
	return GetDB(ctx, r.db).Save(rule).Error
}

// Delete soft-deletes the rule. Groups referencing it are left untouched.
func (r *taxRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.TaxRule{}).Error
}

func (r *taxRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxRule, error) {
	var rule model.TaxRule
	if err := GetDB(ctx, r.db).First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// FindByIDs returns the rules that still exist, in no particular order.
// Unknown or deleted ids are silently omitted.
func (r *taxRuleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.TaxRule, error) {
	if len(ids) == 0 {
		return []model.TaxRule{}, nil
	}
	var rules []model.TaxRule
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *taxRuleRepository) List(ctx context.Context, filter TaxRuleFilter) ([]model.TaxRule, int64, error) {
	var rules []model.TaxRule
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Type != "" {
			db = db.Where("type = ?", filter.Type)
		}
		if filter.IsActive != nil {
			db = db.Where("is_active = ?", *filter.IsActive)
		}
		if filter.Search != "" {
			db = db.Where("name ILIKE ?", "%"+filter.Search+"%")
		}
		return db
	}

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.TaxRule{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Scopes(scope).Order(filter.OrderClause()).Offset(filter.Offset).Limit(filter.Limit).Find(&rules).Error; err != nil {
		return nil, 0, err
	}

	return rules, total, nil
}
