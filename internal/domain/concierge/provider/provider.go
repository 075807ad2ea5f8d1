// Package provider declares the narrow interfaces the concierge core calls
// out through. Implementations live under internal/infra; the core never
// sees transport details.
package provider

import (
	"context"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// Data modes reported by a provider set. Stub data is disclosed to the
// guest when a search comes up empty.
const (
	ModeLive = "live"
	ModeStub = "stub"
)

// OrderQuery identifies an order by number or by email + postal code.
type OrderQuery struct {
	OrderID     string
	OrderNumber string
	Email       string
	PostalCode  string
}

// OrderStatus is the milestone view of one order.
type OrderStatus struct {
	Reference string
	Entries   []session.TimelineEntry
}

// ReturnRequest files one of the fixed return options against an order.
type ReturnRequest struct {
	OptionID    string
	OrderID     string
	OrderNumber string
	Note        string
}

type ReturnReceipt struct {
	Message string
}

// Ticket is a stylist escalation, carrying the session shortlist so the
// stylist sees what the guest was considering.
type Ticket struct {
	SessionID string
	Name      string
	Email     string
	Phone     string
	Note      string
	Shortlist []filters.ProductSummary
}

type TicketReceipt struct {
	Message string
}

// CsatResponse is the numeric rating forwarded downstream. Rating is 1-5.
type CsatResponse struct {
	SessionID   string
	Intent      string
	Rating      int
	OrderNumber string
}

type Catalog interface {
	// SearchProducts returns matches for the normalized filters. An empty
	// slice is a valid answer and triggers the fallback plan.
	SearchProducts(ctx context.Context, f filters.Filters, requestID string) ([]filters.ProductSummary, error)
}

type Orders interface {
	LookupStatus(ctx context.Context, q OrderQuery, requestID string) (OrderStatus, error)
	FileReturn(ctx context.Context, r ReturnRequest, requestID string) (ReturnReceipt, error)
}

type Support interface {
	CreateStylistTicket(ctx context.Context, t Ticket, requestID string) (TicketReceipt, error)
	// SubmitCsat is best-effort; callers swallow its error.
	SubmitCsat(ctx context.Context, r CsatResponse, requestID string) error
}
