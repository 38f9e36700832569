package repository

import (
	"context"

	"taxengine/internal/model"
	"taxengine/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxGroupSortColumns are the columns List accepts in ?sort=
var TaxGroupSortColumns = []string{"name", "created_at", "updated_at"}

// TaxGroupFilter narrows List results
type TaxGroupFilter struct {
	IsActive *bool
	Search   string
	pagination.Params
}

type TaxGroupRepository interface {
	Create(ctx context.Context, group *model.TaxGroup) error
	Update(ctx context.Context, group *model.TaxGroup) error
	ReplaceMembers(ctx context.Context, groupID uuid.UUID, members []model.TaxGroupMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TaxGroup, error)
	List(ctx context.Context, filter TaxGroupFilter) ([]model.TaxGroup, int64, error)
}

type taxGroupRepository struct {
	db *gorm.DB
}

func NewTaxGroupRepository(db *gorm.DB) TaxGroupRepository {
	return &taxGroupRepository{db: db}
}

// Create inserts the group and its members in one statement via the association
func (r *taxGroupRepository) Create(ctx context.Context, group *model.TaxGroup) error {
	return GetDB(ctx, r.db).Create(group).Error
}

// Update saves group columns only; members go through ReplaceMembers
func (r *taxGroupRepository) Update(ctx context.Context, group *model.TaxGroup) error {
	return GetDB(ctx, r.db).Omit("Members").Save(group).Error
}

// ReplaceMembers uses a delete-all + re-create strategy.
// Inside RunInTx this becomes a savepoint of the outer transaction.
func (r *taxGroupRepository) ReplaceMembers(ctx context.Context, groupID uuid.UUID, members []model.TaxGroupMember) error {
	return GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tax_group_id = ?", groupID).Delete(&model.TaxGroupMember{}).Error; err != nil {
			return err
		}
		if len(members) == 0 {
			return nil
		}
		return tx.Create(&members).Error
	})
}

func (r *taxGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.TaxGroup{}).Error
}

func (r *taxGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxGroup, error) {
	var group model.TaxGroup
	if err := GetDB(ctx, r.db).Preload("Members", orderedMembers).First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *taxGroupRepository) List(ctx context.Context, filter TaxGroupFilter) ([]model.TaxGroup, int64, error) {
	var groups []model.TaxGroup
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		if filter.IsActive != nil {
			db = db.Where("is_active = ?", *filter.IsActive)
		}
		if filter.Search != "" {
			db = db.Where("(name ILIKE ? OR description ILIKE ?)", "%"+filter.Search+"%", "%"+filter.Search+"%")
		}
		return db
	}

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.TaxGroup{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Members", orderedMembers).Scopes(scope).
		Order(filter.OrderClause()).Offset(filter.Offset).Limit(filter.Limit).
		Find(&groups).Error; err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

func orderedMembers(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
