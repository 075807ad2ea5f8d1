// Package session holds the per-conversation widget state and the chat
// message shapes exchanged with the UI. Handlers receive a read-only
// snapshot and return a Patch; only the owner of the session applies it.
package session

import (
	"time"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
)

// OrderRef is the order identity resolved during a tracking turn, reused by
// later handlers (returns pre-fill their order fields from it).
type OrderRef struct {
	OrderID     string `json:"orderId,omitempty"`
	OrderNumber string `json:"orderNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
}

// Session is the per-conversation state record.
type Session struct {
	ID           string                   `json:"id"`
	LastIntent   intent.Intent            `json:"lastIntent,omitempty"`
	LastFilters  *filters.Filters         `json:"lastFilters,omitempty"`
	Shortlist    []filters.ProductSummary `json:"shortlist"`
	HasShownCsat bool                     `json:"hasShownCsat"`
	LastOrder    *OrderRef                `json:"lastOrder,omitempty"`
	LastActive   time.Time                `json:"lastActive"`
}

// New returns a fresh session for a conversation that just started.
func New(id string) Session {
	return Session{ID: id, Shortlist: []filters.ProductSummary{}, LastActive: time.Now().UTC()}
}

// Patch is a partial session update returned by a handler. Nil pointer
// fields mean "leave unchanged"; ClearLastFilters/ClearLastOrder express an
// explicit reset, since nil already means "no change".
type Patch struct {
	LastIntent       intent.Intent
	LastFilters      *filters.Filters
	ClearLastFilters bool
	Shortlist        *[]filters.ProductSummary
	HasShownCsat     *bool
	LastOrder        *OrderRef
	ClearLastOrder   bool
}

// Apply merges a patch into a snapshot and returns the updated session.
// The receiver is unchanged; replayability depends on that.
func (s Session) Apply(p Patch) Session {
	out := s
	if p.LastIntent != "" {
		out.LastIntent = p.LastIntent
	}
	if p.ClearLastFilters {
		out.LastFilters = nil
	} else if p.LastFilters != nil {
		f := p.LastFilters.Clone()
		out.LastFilters = &f
	}
	if p.Shortlist != nil {
		out.Shortlist = append([]filters.ProductSummary(nil), (*p.Shortlist)...)
	}
	if p.HasShownCsat != nil {
		out.HasShownCsat = *p.HasShownCsat
	}
	if p.ClearLastOrder {
		out.LastOrder = nil
	} else if p.LastOrder != nil {
		ref := *p.LastOrder
		out.LastOrder = &ref
	}
	out.LastActive = time.Now().UTC()
	return out
}
