package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/fallback"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// fakeCatalog returns empty result sets until the attempt index in hitAt,
// recording every filter set it was asked to search.
type fakeCatalog struct {
	hitAt    int
	attempts []filters.Filters
	err      error
}

func (c *fakeCatalog) SearchProducts(ctx context.Context, f filters.Filters, requestID string) ([]filters.ProductSummary, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.attempts = append(c.attempts, f)
	if len(c.attempts)-1 == c.hitAt {
		return []filters.ProductSummary{{ID: "p1", Title: "Halo Ring", Price: 289}}, nil
	}
	return nil, nil
}

type fakeOrders struct {
	lookupQ   provider.OrderQuery
	returnReq provider.ReturnRequest
	returnErr error
}

func (o *fakeOrders) LookupStatus(ctx context.Context, q provider.OrderQuery, requestID string) (provider.OrderStatus, error) {
	o.lookupQ = q
	return provider.OrderStatus{
		Reference: "GG-55001",
		Entries: []session.TimelineEntry{
			{Label: "Order placed", State: "complete"},
			{Label: "In production", State: "current"},
			{Label: "Shipped", State: "upcoming"},
		},
	}, nil
}

func (o *fakeOrders) FileReturn(ctx context.Context, r provider.ReturnRequest, requestID string) (provider.ReturnReceipt, error) {
	o.returnReq = r
	if o.returnErr != nil {
		return provider.ReturnReceipt{}, o.returnErr
	}
	return provider.ReturnReceipt{Message: "Return filed."}, nil
}

type fakeSupport struct {
	ticket  provider.Ticket
	csat    provider.CsatResponse
	csatErr error
}

func (s *fakeSupport) CreateStylistTicket(ctx context.Context, t provider.Ticket, requestID string) (provider.TicketReceipt, error) {
	s.ticket = t
	return provider.TicketReceipt{}, nil
}

func (s *fakeSupport) SubmitCsat(ctx context.Context, r provider.CsatResponse, requestID string) error {
	s.csat = r
	return s.csatErr
}

func moduleOfKind(t *testing.T, msgs []session.Message, kind session.ModuleKind) *session.Module {
	t.Helper()
	for _, m := range msgs {
		if m.Module != nil && m.Module.Kind == kind {
			return m.Module
		}
	}
	t.Fatalf("no %s module in %d messages", kind, len(msgs))
	return nil
}

func TestFindProductPromptsWithoutSubmission(t *testing.T) {
	res, err := FindProduct(context.Background(), Deps{}, Request{
		Decision: intent.Decision{Intent: intent.FindProduct},
		Session:  session.New("s1"),
	})
	if err != nil {
		t.Fatal(err)
	}
	moduleOfKind(t, res.Messages, session.ModuleFilterPrompt)
	if res.Patch.LastIntent != intent.FindProduct {
		t.Errorf("patch lastIntent = %q", res.Patch.LastIntent)
	}
}

func TestFindProductFallbackLoopStopsAtFirstHit(t *testing.T) {
	// Base search misses, drop_metal misses, raise_price hits: attempts 0-2,
	// and the remaining variants are never tried.
	cat := &fakeCatalog{hitAt: 2}
	deps := Deps{Catalog: cat}
	req := Request{
		Action: &Action{Kind: ActionFilters, Filters: map[string]interface{}{
			"metal": "gold", "readyToShip": true, "priceLt": 500,
		}},
		Decision: intent.Decision{Intent: intent.FindProduct},
		Session:  session.New("s1"),
	}
	res, err := FindProduct(context.Background(), deps, req)
	if err != nil {
		t.Fatal(err)
	}
	if len(cat.attempts) != 3 {
		t.Fatalf("catalog called %d times, want 3 (stop at first hit)", len(cat.attempts))
	}
	if cat.attempts[1].Metal != "" {
		t.Errorf("second attempt should have dropped metal, got %q", cat.attempts[1].Metal)
	}
	if c := cat.attempts[2].Ceiling(); c != 800 {
		t.Errorf("third attempt ceiling = %v, want 800", c)
	}

	car := moduleOfKind(t, res.Messages, session.ModuleProductCarousel)
	want := []string{fallback.ReasonDropMetal, fallback.ReasonRaisePrice}
	if len(car.ProductCarousel.Loosened) != len(want) {
		t.Fatalf("loosened = %v, want %v", car.ProductCarousel.Loosened, want)
	}
	for i := range want {
		if car.ProductCarousel.Loosened[i] != want[i] {
			t.Errorf("loosened[%d] = %q, want %q", i, car.ProductCarousel.Loosened[i], want[i])
		}
	}

	// Patch carries the applied filters minus paging.
	if res.Patch.LastFilters == nil {
		t.Fatal("patch lastFilters missing")
	}
	if res.Patch.LastFilters.Limit != 0 || res.Patch.LastFilters.Offset != 0 {
		t.Errorf("patch lastFilters should strip limit/offset: %+v", res.Patch.LastFilters)
	}
}

func TestFindProductTotalMissDisclosesStubData(t *testing.T) {
	cat := &fakeCatalog{hitAt: -1}
	res, err := FindProduct(context.Background(), Deps{Catalog: cat, DataMode: provider.ModeStub}, Request{
		Action:   &Action{Kind: ActionFilters, Filters: map[string]interface{}{"metal": "gold"}},
		Decision: intent.Decision{Intent: intent.FindProduct},
		Session:  session.New("s1"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Messages) != 2 {
		t.Fatalf("want no-match message plus stub disclosure, got %d messages", len(res.Messages))
	}
}

func TestFindProductSearchesDecisionFilters(t *testing.T) {
	// Filters extracted from free text count as a submission.
	f := filters.NormalizeFilters(map[string]interface{}{"priceLt": 300, "readyToShip": true, "tags": []string{"gift"}})
	cat := &fakeCatalog{hitAt: 0}
	res, err := FindProduct(context.Background(), Deps{Catalog: cat}, Request{
		Decision: intent.Decision{Intent: intent.FindProduct, Filters: &f},
		Session:  session.New("s1"),
	})
	if err != nil {
		t.Fatal(err)
	}
	moduleOfKind(t, res.Messages, session.ModuleProductCarousel)
	if res.Patch.LastFilters == nil || !res.Patch.LastFilters.HasTag("gift") {
		t.Errorf("patch lastFilters = %+v", res.Patch.LastFilters)
	}
}

func TestFindProductPropagatesProviderError(t *testing.T) {
	cat := &fakeCatalog{err: errors.New("catalog down")}
	_, err := FindProduct(context.Background(), Deps{Catalog: cat}, Request{
		Action:   &Action{Kind: ActionFilters},
		Decision: intent.Decision{Intent: intent.FindProduct},
		Session:  session.New("s1"),
	})
	if err == nil {
		t.Fatal("provider failure must propagate to the orchestrator")
	}
}

func TestTrackOrderRecordsReference(t *testing.T) {
	orders := &fakeOrders{}
	res, err := TrackOrder(context.Background(), Deps{Orders: orders}, Request{
		Action:   &Action{Kind: ActionOrderLookup, OrderNumber: "GG-55001"},
		Decision: intent.Decision{Intent: intent.TrackOrder},
		Session:  session.New("s1"),
	})
	if err != nil {
		t.Fatal(err)
	}
	tl := moduleOfKind(t, res.Messages, session.ModuleOrderTimeline)
	if tl.OrderTimeline.Reference != "GG-55001" || len(tl.OrderTimeline.Entries) != 3 {
		t.Errorf("timeline = %+v", tl.OrderTimeline)
	}
	if res.Patch.LastOrder == nil || res.Patch.LastOrder.OrderNumber != "GG-55001" {
		t.Errorf("patch lastOrder = %+v", res.Patch.LastOrder)
	}
}

func TestReturnExchangeAutofillsOrderFromSession(t *testing.T) {
	orders := &fakeOrders{}
	snap := session.New("s1")
	snap.LastOrder = &session.OrderRef{OrderID: "ord_9", OrderNumber: "GG-55001"}

	res, err := ReturnExchange(context.Background(), Deps{Orders: orders}, Request{
		Action:   &Action{Kind: ActionReturnOption, OptionID: "resize"},
		Decision: intent.Decision{Intent: intent.ReturnExchange},
		Session:  snap,
	})
	if err != nil {
		t.Fatal(err)
	}
	if orders.returnReq.OrderID != "ord_9" || orders.returnReq.OrderNumber != "GG-55001" {
		t.Errorf("order ref not auto-filled: %+v", orders.returnReq)
	}
	moduleOfKind(t, res.Messages, session.ModuleEscalationForm)
	if res.OfferTriggered != "escalation_form" {
		t.Errorf("offerTriggered = %q", res.OfferTriggered)
	}
}

func TestReturnExchangeOffersEscalationEvenOnFailure(t *testing.T) {
	orders := &fakeOrders{returnErr: errors.New("returns api down")}
	res, err := ReturnExchange(context.Background(), Deps{Orders: orders}, Request{
		Action:   &Action{Kind: ActionReturnOption, OptionID: "return"},
		Decision: intent.Decision{Intent: intent.ReturnExchange},
		Session:  session.New("s1"),
	})
	if err != nil {
		t.Fatalf("filing failure is handled in-flow, got error %v", err)
	}
	moduleOfKind(t, res.Messages, session.ModuleEscalationForm)
}

func TestStylistTicketCarriesShortlist(t *testing.T) {
	sup := &fakeSupport{}
	snap := session.New("s1")
	snap.Shortlist = []filters.ProductSummary{{ID: "p1", Title: "Halo Ring"}}

	res, err := StylistContact(context.Background(), Deps{Support: sup}, Request{
		Action:   &Action{Kind: ActionEscalation, Name: "Kai", Email: "kai@example.com"},
		Decision: intent.Decision{Intent: intent.StylistContact},
		Session:  snap,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(sup.ticket.Shortlist) != 1 || sup.ticket.Shortlist[0].ID != "p1" {
		t.Errorf("ticket shortlist = %+v", sup.ticket.Shortlist)
	}
	moduleOfKind(t, res.Messages, session.ModuleCsatPrompt)
	if res.Patch.HasShownCsat == nil || !*res.Patch.HasShownCsat {
		t.Errorf("hasShownCsat not patched")
	}
}

func TestCsatRatingMapping(t *testing.T) {
	cases := map[string]int{
		"great":           5,
		"good":            4,
		"okay":            3,
		"needs_follow_up": 2,
		"poor":            1,
	}
	for rating, want := range cases {
		sup := &fakeSupport{}
		_, err := Csat(context.Background(), Deps{Support: sup}, Request{
			Action:   &Action{Kind: ActionCsat, Rating: rating},
			Decision: intent.Decision{Intent: intent.Csat},
			Session:  session.New("s1"),
		})
		if err != nil {
			t.Fatal(err)
		}
		if sup.csat.Rating != want {
			t.Errorf("rating %q -> %d, want %d", rating, sup.csat.Rating, want)
		}
	}
}

func TestCsatSubmitFailureSwallowed(t *testing.T) {
	sup := &fakeSupport{csatErr: errors.New("survey service down")}
	res, err := Csat(context.Background(), Deps{Support: sup}, Request{
		Action:   &Action{Kind: ActionCsat, Rating: "poor"},
		Decision: intent.Decision{Intent: intent.Csat},
		Session:  session.New("s1"),
	})
	if err != nil {
		t.Fatalf("csat failures must be swallowed, got %v", err)
	}
	if len(res.Messages) == 0 {
		t.Fatal("guest still gets a thank-you message")
	}
}
