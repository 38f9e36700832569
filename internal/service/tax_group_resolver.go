package service

import (
	"context"
	"errors"
	"fmt"

	"taxengine/internal/model"
	"taxengine/internal/repository"
	"taxengine/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxGroupResolver turns a group id into the ordered, active rules a calculation runs on
type TaxGroupResolver interface {
	// Resolve fails with NotFoundError when the group is missing or inactive.
	// Member ids whose rule was deleted, and inactive rules, are skipped.
	Resolve(ctx context.Context, groupID uuid.UUID) (*model.TaxGroup, []model.TaxRule, error)
	// ResolveRules applies the same skipping to an explicit id list
	ResolveRules(ctx context.Context, ids []uuid.UUID) ([]model.TaxRule, error)
}

type taxGroupResolver struct {
	groupRepo repository.TaxGroupRepository
	ruleRepo  repository.TaxRuleRepository
}

func NewTaxGroupResolver(groupRepo repository.TaxGroupRepository, ruleRepo repository.TaxRuleRepository) TaxGroupResolver {
	return &taxGroupResolver{groupRepo: groupRepo, ruleRepo: ruleRepo}
}

func (r *taxGroupResolver) Resolve(ctx context.Context, groupID uuid.UUID) (*model.TaxGroup, []model.TaxRule, error) {
	group, err := r.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperror.NewNotFound("tax group", groupID.String())
		}
		return nil, nil, fmt.Errorf("failed to fetch tax group: %w", err)
	}
	if !group.IsActive {
		return nil, nil, apperror.NewNotFound("tax group", groupID.String())
	}

	rules, err := r.ResolveRules(ctx, group.TaxIDs())
	if err != nil {
		return nil, nil, err
	}
	return group, rules, nil
}

func (r *taxGroupResolver) ResolveRules(ctx context.Context, ids []uuid.UUID) ([]model.TaxRule, error) {
	found, err := r.ruleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tax rules: %w", err)
	}

	byID := make(map[uuid.UUID]model.TaxRule, len(found))
	for _, rule := range found {
		byID[rule.ID] = rule
	}

	rules := make([]model.TaxRule, 0, len(ids))
	for _, id := range ids {
		rule, ok := byID[id]
		if !ok || !rule.IsActive {
			continue
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
