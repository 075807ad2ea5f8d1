// Package handler implements one step function per support intent. Each
// handler consumes a session snapshot plus the structured action payload of
// the incoming turn and returns messages and a session patch; whether the
// guest is mid-flow is read off the action's presence, never off stored
// state.
package handler

import (
	"context"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/presets"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// Action kinds submitted by widget modules.
const (
	ActionFilters      = "filters_submit"
	ActionOrderLookup  = "order_lookup"
	ActionReturnOption = "return_option"
	ActionEscalation   = "escalation_submit"
	ActionCsat         = "csat_submit"
)

// Action is the structured payload a widget module posts back. Kind is the
// discriminant; only the fields for that kind are meaningful.
type Action struct {
	Kind string `json:"kind"`

	// filters_submit
	Filters map[string]interface{} `json:"filters,omitempty"`
	Preset  string                 `json:"preset,omitempty"`

	// order_lookup
	OrderID     string `json:"orderId,omitempty"`
	OrderNumber string `json:"orderNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`

	// return_option
	OptionID string `json:"optionId,omitempty"`

	// escalation_submit
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Note  string `json:"note,omitempty"`

	// csat_submit
	Rating string `json:"rating,omitempty"`
}

// Deps bundles the collaborators a handler may call.
type Deps struct {
	Catalog  provider.Catalog
	Orders   provider.Orders
	Support  provider.Support
	Presets  *presets.Catalog
	DataMode string
}

// Request is one turn as seen by a handler.
type Request struct {
	Message   string
	Action    *Action
	Decision  intent.Decision
	Session   session.Session
	RequestID string
}

// Result is what a handler hands back to the orchestrator. Err is a
// machine-readable tag filled in by the orchestrator on failure, never by
// handlers themselves.
type Result struct {
	Messages       []session.Message
	Patch          session.Patch
	OfferTriggered string `json:"offerTriggered,omitempty"`
	Err            string `json:"error,omitempty"`
}

// Func is the shared handler signature.
type Func func(ctx context.Context, deps Deps, req Request) (Result, error)

func (r *Request) action(kind string) *Action {
	if r.Action == nil || r.Action.Kind != kind {
		return nil
	}
	return r.Action
}

func concierge(text string) session.Message {
	return session.NewText(session.RoleConcierge, text)
}

func module(m session.Module) session.Message {
	return session.NewModule(session.RoleConcierge, m)
}
