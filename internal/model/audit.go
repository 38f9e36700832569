package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateTaxRule     = "CREATE_TAX_RULE"
	ActionUpdateTaxRule     = "UPDATE_TAX_RULE"
	ActionDeactivateTaxRule = "DEACTIVATE_TAX_RULE"
	ActionDeleteTaxRule     = "DELETE_TAX_RULE"

	ActionCreateTaxGroup     = "CREATE_TAX_GROUP"
	ActionUpdateTaxGroup     = "UPDATE_TAX_GROUP"
	ActionDeactivateTaxGroup = "DEACTIVATE_TAX_GROUP"
	ActionDeleteTaxGroup     = "DELETE_TAX_GROUP"
)

// AuditLog tracks Who, What, and When for tax catalog changes
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable when the token carries no usable subject
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string     `gorm:"type:jsonb" json:"details"` // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
