package model

import (
	"sort"
	"strings"
	"time"

	"taxengine/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxGroup is an ordered, deduplicated set of tax rule references billed as one unit
type TaxGroup struct {
	ID          uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string           `gorm:"type:varchar(50);not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	IsActive    bool             `gorm:"not null;index" json:"is_active"`
	Members     []TaxGroupMember `gorm:"foreignKey:TaxGroupID;constraint:OnDelete:CASCADE" json:"members"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// TaxGroupMember links a group to a rule by id only. No foreign key to
// tax_rules: deleting a rule leaves the member row in place and resolution
// skips it.
type TaxGroupMember struct {
	TaxGroupID uuid.UUID `gorm:"type:uuid;primaryKey" json:"tax_group_id"`
	TaxRuleID  uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"tax_rule_id"`
	Position   int       `gorm:"not null" json:"position"`
}

// TaxIDs returns the member rule ids in group order
func (g *TaxGroup) TaxIDs() []uuid.UUID {
	members := make([]TaxGroupMember, len(g.Members))
	copy(members, g.Members)
	sort.SliceStable(members, func(i, j int) bool { return members[i].Position < members[j].Position })

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.TaxRuleID)
	}
	return ids
}

// SetTaxIDs replaces the members, keeping ids in the given order
func (g *TaxGroup) SetTaxIDs(ids []uuid.UUID) {
	g.Members = make([]TaxGroupMember, 0, len(ids))
	for i, id := range ids {
		g.Members = append(g.Members, TaxGroupMember{TaxGroupID: g.ID, TaxRuleID: id, Position: i})
	}
}

// Validate checks the group name and its current tax id list.
// An empty list is allowed here; creation enforces non-empty separately.
func (g *TaxGroup) Validate() error {
	if err := ValidateName(g.Name); err != nil {
		return err
	}
	g.Name = strings.TrimSpace(g.Name)
	return ValidateTaxIDs(g.TaxIDs(), false)
}

// ValidateTaxIDs rejects duplicate ids, and an empty list when requireNonEmpty is set
func ValidateTaxIDs(ids []uuid.UUID, requireNonEmpty bool) error {
	if requireNonEmpty && len(ids) == 0 {
		return apperror.NewValidation("tax_ids", "at least one tax rule is required")
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return apperror.NewValidation("tax_ids", "contains an empty id")
		}
		if _, dup := seen[id]; dup {
			return apperror.NewValidation("tax_ids", "duplicate tax id "+id.String())
		}
		seen[id] = struct{}{}
	}
	return nil
}
