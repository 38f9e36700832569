package service

// Catalog change event types pushed to connected clients
const (
	EventTaxRuleCreated  = "tax_rule.created"
	EventTaxRuleUpdated  = "tax_rule.updated"
	EventTaxRuleDeleted  = "tax_rule.deleted"
	EventTaxGroupCreated = "tax_group.created"
	EventTaxGroupUpdated = "tax_group.updated"
	EventTaxGroupDeleted = "tax_group.deleted"
)

// EventPublisher fans catalog changes out to subscribers (the websocket hub in production)
type EventPublisher interface {
	Publish(eventType, entityID string)
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, string) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
