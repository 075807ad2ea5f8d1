// Package intent classifies free-text widget messages into support intents.
// Classification is a strict waterfall: slash commands, then order-reference
// detection, then the keyword table, then product filter extraction, then
// context continuation, then clarify. The first stage to produce a decision
// wins; confidences are never compared across stages.
package intent

import (
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
)

// Intent is one of the fixed support topics the concierge can route.
type Intent string

const (
	FindProduct    Intent = "find_product"
	TrackOrder     Intent = "track_order"
	ReturnExchange Intent = "return_exchange"
	SizingRepairs  Intent = "sizing_repairs"
	CareWarranty   Intent = "care_warranty"
	Financing      Intent = "financing"
	StylistContact Intent = "stylist_contact"
	Csat           Intent = "csat"

	// Clarify is the non-intent outcome: the engine could not classify.
	Clarify Intent = "clarify"
)

// SupportIntents lists every routable intent, in dispatch-table order.
var SupportIntents = []Intent{
	FindProduct,
	TrackOrder,
	ReturnExchange,
	SizingRepairs,
	CareWarranty,
	Financing,
	StylistContact,
	Csat,
}

// Decision is the classification outcome for one message.
type Decision struct {
	Intent     Intent           `json:"intent"`
	Confidence float64          `json:"confidence"`
	Filters    *filters.Filters `json:"filters,omitempty"`
	Reason     string           `json:"reason"`
}

// Context carries the prior turn's outcome for continuation rules.
type Context struct {
	LastIntent  Intent
	LastFilters *filters.Filters
}
