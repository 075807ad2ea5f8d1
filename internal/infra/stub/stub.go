// Package stub provides in-memory implementations of the concierge
// providers, backed by a small sample catalog. Used in development and
// tests when no database is configured; find_product discloses the data
// mode to the guest on empty results.
package stub

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

type product struct {
	summary     filters.ProductSummary
	category    string
	metal       string
	stone       string
	readyToShip bool
	featured    bool
}

// Providers implements Catalog, Orders and Support over canned data.
type Providers struct {
	mu       sync.Mutex
	products []product
	tickets  []provider.Ticket
	csat     []provider.CsatResponse
}

func New() *Providers {
	return &Providers{products: sampleCatalog()}
}

func sampleCatalog() []product {
	return []product{
		{filters.ProductSummary{ID: "p-101", Title: "Aurora Halo Ring", Price: 289, Tags: []string{"gift", "bestseller"}, ShippingPromise: "Ships in 2 days", Slug: "aurora-halo-ring"}, "ring", "gold", "lab diamond", true, true},
		{filters.ProductSummary{ID: "p-102", Title: "Solstice Band", Price: 149, Tags: []string{"minimal"}, ShippingPromise: "Ships in 2 days", Slug: "solstice-band"}, "ring", "silver", "", true, false},
		{filters.ProductSummary{ID: "p-103", Title: "Ember Solitaire", Price: 640, Tags: []string{"engagement"}, Slug: "ember-solitaire"}, "ring", "rose gold", "moissanite", false, true},
		{filters.ProductSummary{ID: "p-104", Title: "Tidal Tennis Bracelet", Price: 720, Tags: []string{"gift"}, ShippingPromise: "Ships in 3 days", Slug: "tidal-tennis-bracelet"}, "bracelet", "white gold", "lab diamond", true, true},
		{filters.ProductSummary{ID: "p-105", Title: "Juniper Charm Bracelet", Price: 95, Tags: []string{"gift", "stacking"}, ShippingPromise: "Ships in 2 days", Slug: "juniper-charm-bracelet"}, "bracelet", "gold", "", true, false},
		{filters.ProductSummary{ID: "p-106", Title: "Nova Pendant", Price: 210, Tags: []string{"gift"}, ShippingPromise: "Ships in 2 days", Slug: "nova-pendant"}, "necklace", "gold", "lab diamond", true, true},
		{filters.ProductSummary{ID: "p-107", Title: "Meridian Chain", Price: 180, Tags: []string{"minimal"}, Slug: "meridian-chain"}, "necklace", "silver", "", false, false},
		{filters.ProductSummary{ID: "p-108", Title: "Lumen Studs", Price: 240, Tags: []string{"gift", "bestseller"}, ShippingPromise: "Ships in 2 days", Slug: "lumen-studs"}, "earrings", "gold", "lab diamond", true, true},
		{filters.ProductSummary{ID: "p-109", Title: "Cascade Hoops", Price: 130, Tags: []string{"everyday"}, ShippingPromise: "Ships in 2 days", Slug: "cascade-hoops"}, "earrings", "silver", "", true, false},
		{filters.ProductSummary{ID: "p-110", Title: "Atlas Signet", Price: 320, Tags: []string{"unisex"}, Slug: "atlas-signet"}, "ring", "platinum", "", false, false},
	}
}

func (p *Providers) SearchProducts(ctx context.Context, f filters.Filters, requestID string) ([]filters.ProductSummary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []filters.ProductSummary
	for _, item := range p.products {
		if !matches(item, f) {
			continue
		}
		out = append(out, item.summary)
	}
	sortResults(out, f.SortBy)
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matches(item product, f filters.Filters) bool {
	if f.Category != "" && item.category != f.Category {
		return false
	}
	if f.Metal != "" && item.metal != f.Metal {
		return false
	}
	if f.Stone != "" && !strings.EqualFold(item.stone, f.Stone) {
		return false
	}
	if f.ReadyToShip != nil && item.readyToShip != *f.ReadyToShip {
		return false
	}
	if f.Featured != nil && item.featured != *f.Featured {
		return false
	}
	if f.PriceMin != nil && item.summary.Price < *f.PriceMin {
		return false
	}
	if c := f.Ceiling(); c > 0 && item.summary.Price > c {
		return false
	}
	for _, tag := range f.Tags {
		if !hasTag(item.summary.Tags, tag) {
			return false
		}
	}
	if f.Q != "" && !strings.Contains(strings.ToLower(item.summary.Title), strings.ToLower(f.Q)) {
		return false
	}
	return true
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

func sortResults(items []filters.ProductSummary, sortBy string) {
	switch sortBy {
	case filters.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case filters.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	}
}

func (p *Providers) LookupStatus(ctx context.Context, q provider.OrderQuery, requestID string) (provider.OrderStatus, error) {
	ref := q.OrderNumber
	if ref == "" && q.OrderID != "" {
		ref = q.OrderID
	}
	if ref == "" && q.Email != "" {
		ref = "GG-90210"
	}
	if ref == "" {
		return provider.OrderStatus{}, fmt.Errorf("order lookup: no identifying details")
	}
	return provider.OrderStatus{
		Reference: ref,
		Entries: []session.TimelineEntry{
			{Label: "Order placed", Detail: time.Now().UTC().AddDate(0, 0, -4).Format("Jan 2"), State: "complete"},
			{Label: "In production", Detail: "Your piece is being cast", State: "complete"},
			{Label: "Quality check", State: "current"},
			{Label: "Shipped", State: "upcoming"},
			{Label: "Delivered", State: "upcoming"},
		},
	}, nil
}

func (p *Providers) FileReturn(ctx context.Context, r provider.ReturnRequest, requestID string) (provider.ReturnReceipt, error) {
	if r.OptionID == "" {
		return provider.ReturnReceipt{}, fmt.Errorf("file return: missing option")
	}
	ref := r.OrderNumber
	if ref == "" {
		ref = r.OrderID
	}
	if ref == "" {
		return provider.ReturnReceipt{Message: "Your request is in — we'll email you a prepaid label once we match it to an order."}, nil
	}
	return provider.ReturnReceipt{Message: fmt.Sprintf("Your %s request for order %s is in. A prepaid label is on its way.", r.OptionID, ref)}, nil
}

func (p *Providers) CreateStylistTicket(ctx context.Context, t provider.Ticket, requestID string) (provider.TicketReceipt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tickets = append(p.tickets, t)
	return provider.TicketReceipt{}, nil
}

func (p *Providers) SubmitCsat(ctx context.Context, r provider.CsatResponse, requestID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.csat = append(p.csat, r)
	return nil
}
