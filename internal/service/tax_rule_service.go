package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taxengine/internal/model"
	"taxengine/internal/repository"
	"taxengine/pkg/apperror"
	"taxengine/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateTaxRuleRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Type        string `json:"type" binding:"required,oneof=PERCENTAGE FIXED"`
	Rate        string `json:"rate" binding:"required"` // Decimal string: "0.10" = 10% for PERCENTAGE, "2.50" flat for FIXED
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"` // Defaults to true
}

type UpdateTaxRuleRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Rate        *string `json:"rate"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type TaxRuleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Rate        string `json:"rate"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type TaxRuleListFilter struct {
	Type     string
	IsActive *bool
	Search   string
	pagination.Params
}

// --- Interface ---

type TaxRuleService interface {
	GetTaxRules(ctx context.Context, filter TaxRuleListFilter) (pagination.Page[TaxRuleResponse], error)
	GetTaxRule(ctx context.Context, id string) (TaxRuleResponse, error)
	CreateTaxRule(ctx context.Context, req CreateTaxRuleRequest, userID string) (TaxRuleResponse, error)
	UpdateTaxRule(ctx context.Context, id string, req UpdateTaxRuleRequest, userID string) (TaxRuleResponse, error)
	DeactivateTaxRule(ctx context.Context, id string, userID string) (TaxRuleResponse, error)
	DeleteTaxRule(ctx context.Context, id string, userID string) error
}

type taxRuleService struct {
	ruleRepo repository.TaxRuleRepository
	audit    auditWriter
	events   EventPublisher
}

func NewTaxRuleService(ruleRepo repository.TaxRuleRepository, auditRepo repository.AuditRepository, events EventPublisher) TaxRuleService {
	return &taxRuleService{
		ruleRepo: ruleRepo,
		audit:    auditWriter{repo: auditRepo},
		events:   publisherOrNoop(events),
	}
}

// --- Implementation ---

func (s *taxRuleService) GetTaxRules(ctx context.Context, filter TaxRuleListFilter) (pagination.Page[TaxRuleResponse], error) {
	if filter.Type != "" && !model.TaxType(filter.Type).Valid() {
		return pagination.Page[TaxRuleResponse]{}, apperror.NewValidation("type", "must be one of: PERCENTAGE, FIXED")
	}

	rules, total, err := s.ruleRepo.List(ctx, repository.TaxRuleFilter{
		Type:     model.TaxType(filter.Type),
		IsActive: filter.IsActive,
		Search:   strings.TrimSpace(filter.Search),
		Params:   filter.Params,
	})
	if err != nil {
		return pagination.Page[TaxRuleResponse]{}, fmt.Errorf("failed to fetch tax rules: %w", err)
	}

	items := make([]TaxRuleResponse, 0, len(rules))
	for _, r := range rules {
		items = append(items, toTaxRuleResponse(r))
	}

	return pagination.Page[TaxRuleResponse]{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *taxRuleService) GetTaxRule(ctx context.Context, id string) (TaxRuleResponse, error) {
	rule, err := s.findRule(ctx, id)
	if err != nil {
		return TaxRuleResponse{}, err
	}
	return toTaxRuleResponse(*rule), nil
}

func (s *taxRuleService) CreateTaxRule(ctx context.Context, req CreateTaxRuleRequest, userID string) (TaxRuleResponse, error) {
	rate, err := parseRate(req.Rate)
	if err != nil {
		return TaxRuleResponse{}, err
	}

	rule, err := model.NewTaxRule(req.Name, model.TaxType(req.Type), rate)
	if err != nil {
		return TaxRuleResponse{}, err
	}
	rule.Description = req.Description
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return TaxRuleResponse{}, fmt.Errorf("failed to create tax rule: %w", err)
	}

	s.audit.write(ctx, userID, model.ActionCreateTaxRule, rule.ID.String(), rule.Name, req)
	s.events.Publish(EventTaxRuleCreated, rule.ID.String())

	return toTaxRuleResponse(*rule), nil
}

func (s *taxRuleService) UpdateTaxRule(ctx context.Context, id string, req UpdateTaxRuleRequest, userID string) (TaxRuleResponse, error) {
	rule, err := s.findRule(ctx, id)
	if err != nil {
		return TaxRuleResponse{}, err
	}

	if req.Name != nil {
		rule.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		rule.Type = model.TaxType(*req.Type)
	}
	if req.Rate != nil {
		rate, err := parseRate(*req.Rate)
		if err != nil {
			return TaxRuleResponse{}, err
		}
		rule.Rate = rate
	}
	if req.Description != nil {
		rule.Description = *req.Description
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := rule.Validate(); err != nil {
		return TaxRuleResponse{}, err
	}

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return TaxRuleResponse{}, fmt.Errorf("failed to update tax rule: %w", err)
	}

	s.audit.write(ctx, userID, model.ActionUpdateTaxRule, rule.ID.String(), rule.Name, req)
	s.events.Publish(EventTaxRuleUpdated, rule.ID.String())

	return toTaxRuleResponse(*rule), nil
}

// DeactivateTaxRule keeps the row but excludes the rule from every future calculation
func (s *taxRuleService) DeactivateTaxRule(ctx context.Context, id string, userID string) (TaxRuleResponse, error) {
	rule, err := s.findRule(ctx, id)
	if err != nil {
		return TaxRuleResponse{}, err
	}
	if !rule.IsActive {
		return toTaxRuleResponse(*rule), nil
	}

	rule.IsActive = false
	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return TaxRuleResponse{}, fmt.Errorf("failed to deactivate tax rule: %w", err)
	}

	s.audit.write(ctx, userID, model.ActionDeactivateTaxRule, rule.ID.String(), rule.Name, map[string]string{"deactivated_id": id})
	s.events.Publish(EventTaxRuleUpdated, rule.ID.String())

	return toTaxRuleResponse(*rule), nil
}

// DeleteTaxRule soft-deletes the rule. Groups still listing its id skip it on resolution.
func (s *taxRuleService) DeleteTaxRule(ctx context.Context, id string, userID string) error {
	rule, err := s.findRule(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ruleRepo.Delete(ctx, rule.ID); err != nil {
		return fmt.Errorf("failed to delete tax rule: %w", err)
	}

	s.audit.write(ctx, userID, model.ActionDeleteTaxRule, rule.ID.String(), rule.Name, map[string]string{"deleted_id": id})
	s.events.Publish(EventTaxRuleDeleted, rule.ID.String())

	return nil
}

// --- Helpers ---

func (s *taxRuleService) findRule(ctx context.Context, id string) (*model.TaxRule, error) {
	ruleID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	rule, err := s.ruleRepo.FindByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("tax rule", id)
		}
		return nil, fmt.Errorf("failed to fetch tax rule: %w", err)
	}
	return rule, nil
}

func parseRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, apperror.NewValidation("rate", "must be a decimal number")
	}
	return rate, nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apperror.NewValidation(field, "must be a valid UUID")
	}
	return id, nil
}

func toTaxRuleResponse(r model.TaxRule) TaxRuleResponse {
	return TaxRuleResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Type:        string(r.Type),
		Rate:        r.Rate.String(),
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
