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
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateTaxGroupRequest struct {
	Name        string   `json:"name" binding:"required,max=50"`
	Description string   `json:"description"`
	TaxIDs      []string `json:"tax_ids" binding:"required,min=1"`
	IsActive    *bool    `json:"is_active"` // Defaults to true
}

type UpdateTaxGroupRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	TaxIDs      *[]string `json:"tax_ids"` // pointer so nil = not sent, [] = clear all
	IsActive    *bool     `json:"is_active"`
}

type TaxGroupResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TaxIDs      []string `json:"tax_ids"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type TaxGroupListFilter struct {
	IsActive *bool
	Search   string
	pagination.Params
}

// --- Interface ---

type TaxGroupService interface {
	GetTaxGroups(ctx context.Context, filter TaxGroupListFilter) (pagination.Page[TaxGroupResponse], error)
	GetTaxGroup(ctx context.Context, id string) (TaxGroupResponse, error)
	CreateTaxGroup(ctx context.Context, req CreateTaxGroupRequest, userID string) (TaxGroupResponse, error)
	UpdateTaxGroup(ctx context.Context, id string, req UpdateTaxGroupRequest, userID string) (TaxGroupResponse, error)
	DeactivateTaxGroup(ctx context.Context, id string, userID string) (TaxGroupResponse, error)
	DeleteTaxGroup(ctx context.Context, id string, userID string) error
}

type taxGroupService struct {
	groupRepo repository.TaxGroupRepository
	ruleRepo  repository.TaxRuleRepository
	txManager repository.TransactionManager
	audit     auditWriter
	events    EventPublisher
}

func NewTaxGroupService(
	groupRepo repository.TaxGroupRepository,
	ruleRepo repository.TaxRuleRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) TaxGroupService {
	return &taxGroupService{
		groupRepo: groupRepo,
		ruleRepo:  ruleRepo,
		txManager: txManager,
		audit:     auditWriter{repo: auditRepo},
		events:    publisherOrNoop(events),
	}
}

// --- Implementation ---

func (s *taxGroupService) GetTaxGroups(ctx context.Context, filter TaxGroupListFilter) (pagination.Page[TaxGroupResponse], error) {
	groups, total, err := s.groupRepo.List(ctx, repository.TaxGroupFilter{
		IsActive: filter.IsActive,
		Search:   strings.TrimSpace(filter.Search),
		Params:   filter.Params,
	})
	if err != nil {
		return pagination.Page[TaxGroupResponse]{}, fmt.Errorf("failed to fetch tax groups: %w", err)
	}

	items := make([]TaxGroupResponse, 0, len(groups))
	for _, g := range groups {
		items = append(items, toTaxGroupResponse(g))
	}

	return pagination.Page[TaxGroupResponse]{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *taxGroupService) GetTaxGroup(ctx context.Context, id string) (TaxGroupResponse, error) {
	group, err := s.findGroup(ctx, id)
	if err != nil {
		return TaxGroupResponse{}, err
	}
	return toTaxGroupResponse(*group), nil
}

// CreateTaxGroup requires at least one rule; every id must name an existing rule
func (s *taxGroupService) CreateTaxGroup(ctx context.Context, req CreateTaxGroupRequest, userID string) (TaxGroupResponse, error) {
	ids, err := parseTaxIDs(req.TaxIDs)
	if err != nil {
		return TaxGroupResponse{}, err
	}
	if err := model.ValidateTaxIDs(ids, true); err != nil {
		return TaxGroupResponse{}, err
	}

	group := &model.TaxGroup{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		group.IsActive = *req.IsActive
	}
	group.SetTaxIDs(ids)
	if err := group.Validate(); err != nil {
		return TaxGroupResponse{}, err
	}
	if err := s.ensureRulesExist(ctx, ids); err != nil {
		return TaxGroupResponse{}, err
	}

	// GORM creates group + members in a single Create because of the association
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return TaxGroupResponse{}, fmt.Errorf("failed to create tax group: %w", err)
	}

	s.audit.write(ctx, userID, model.ActionCreateTaxGroup, group.ID.String(), group.Name, req)
	s.events.Publish(EventTaxGroupCreated, group.ID.String())

	return toTaxGroupResponse(*group), nil
}

// UpdateTaxGroup may replace the tax id list, including with an empty one
func (s *taxGroupService) UpdateTaxGroup(ctx context.Context, id string, req UpdateTaxGroupRequest, userID string) (TaxGroupResponse, error) {
	group, err := s.findGroup(ctx, id)
	if err != nil {
		return TaxGroupResponse{}, err
	}

	if req.Name != nil {
		group.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.IsActive != nil {
		group.IsActive = *req.IsActive
	}

	var newIDs []uuid.UUID
	if req.TaxIDs != nil {
		newIDs, err = parseTaxIDs(*req.TaxIDs)
		if err != nil {
			return TaxGroupResponse{}, err
		}
		if err := model.ValidateTaxIDs(newIDs, false); err != nil {
			return TaxGroupResponse{}, err
		}
		if err := s.ensureRulesExist(ctx, newIDs); err != nil {
			return TaxGroupResponse{}, err
		}
		group.SetTaxIDs(newIDs)
	}

	if err := group.Validate(); err != nil {
		return TaxGroupResponse{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.groupRepo.Update(txCtx, group); err != nil {
			return fmt.Errorf("failed to update tax group: %w", err)
		}
		if req.TaxIDs != nil {
			if err := s.groupRepo.ReplaceMembers(txCtx, group.ID, group.Members); err != nil {
				return fmt.Errorf("failed to replace tax group members: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return TaxGroupResponse{}, err
	}

	s.audit.write(ctx, userID, model.ActionUpdateTaxGroup, group.ID.String(), group.Name, req)
	s.events.Publish(EventTaxGroupUpdated, group.ID.String())

	return toTaxGroupResponse(*group), nil
}

func (s *taxGroupService) DeactivateTaxGroup(ctx context.Context, id string, userID string) (TaxGroupResponse, error) {
	group, err := s.findGroup(ctx, id)
	if err != nil {
		return TaxGroupResponse{}, err
	}
	if !group.IsActive {
		return toTaxGroupResponse(*group), nil
	}

	group.IsActive = false
	if err := s.groupRepo.Update(ctx, group); err != nil {
		return TaxGroupResponse{}, fmt.Errorf("failed to deactivate tax group: %w", err)
	}

	s.audit.write(ctx, userID, model.ActionDeactivateTaxGroup, group.ID.String(), group.Name, map[string]string{"deactivated_id": id})
	s.events.Publish(EventTaxGroupUpdated, group.ID.String())

	return toTaxGroupResponse(*group), nil
}

func (s *taxGroupService) DeleteTaxGroup(ctx context.Context, id string, userID string) error {
	group, err := s.findGroup(ctx, id)
	if err != nil {
		return err
	}

	if err := s.groupRepo.Delete(ctx, group.ID); err != nil {
		return fmt.Errorf("failed to delete tax group: %w", err)
	}

	s.audit.write(ctx, userID, model.ActionDeleteTaxGroup, group.ID.String(), group.Name, map[string]string{"deleted_id": id})
	s.events.Publish(EventTaxGroupDeleted, group.ID.String())

	return nil
}

// --- Helpers ---

func (s *taxGroupService) findGroup(ctx context.Context, id string) (*model.TaxGroup, error) {
	groupID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("tax group", id)
		}
		return nil, fmt.Errorf("failed to fetch tax group: %w", err)
	}
	return group, nil
}

// ensureRulesExist is checked at write time only; later rule deletions are tolerated
func (s *taxGroupService) ensureRulesExist(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.ruleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch tax rules: %w", err)
	}

	existing := make(map[uuid.UUID]struct{}, len(found))
	for _, r := range found {
		existing[r.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			return apperror.NewValidation("tax_ids", "unknown tax rule "+id.String())
		}
	}
	return nil
}

func parseTaxIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for i, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, apperror.NewValidation(fmt.Sprintf("tax_ids[%d]", i), "must be a valid UUID")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toTaxGroupResponse(g model.TaxGroup) TaxGroupResponse {
	ids := g.TaxIDs()
	taxIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		taxIDs = append(taxIDs, id.String())
	}

	return TaxGroupResponse{
		ID:          g.ID.String(),
		Name:        g.Name,
		Description: g.Description,
		TaxIDs:      taxIDs,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   g.UpdatedAt.Format(time.RFC3339),
	}
}
