package stub

import (
	"context"
	"testing"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
)

func TestSearchProductsFiltering(t *testing.T) {
	p := New()
	f := filters.NormalizeFilters(map[string]interface{}{
		"category": "ring", "metal": "gold", "priceLt": 300,
	})
	got, err := p.SearchProducts(context.Background(), f, "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "Aurora Halo Ring" {
		t.Errorf("got %+v, want only the halo ring", got)
	}
}

func TestSearchProductsTagAndReadyToShip(t *testing.T) {
	p := New()
	f := filters.NormalizeFilters(map[string]interface{}{
		"tags": []string{"gift"}, "readyToShip": true, "sortBy": "price-asc",
	})
	got, err := p.SearchProducts(context.Background(), f, "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("expected gift matches")
	}
	for i := 1; i < len(got); i++ {
		if got[i].Price < got[i-1].Price {
			t.Errorf("results not price-ascending at %d: %v then %v", i, got[i-1].Price, got[i].Price)
		}
	}
}

func TestSearchProductsPaging(t *testing.T) {
	p := New()
	f := filters.NormalizeFilters(map[string]interface{}{"limit": 3})
	got, err := p.SearchProducts(context.Background(), f, "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("limit 3 returned %d", len(got))
	}

	f = filters.NormalizeFilters(map[string]interface{}{"offset": 100})
	got, err = p.SearchProducts(context.Background(), f, "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("offset past the end returned %d rows", len(got))
	}
}

func TestLookupStatusNeedsIdentity(t *testing.T) {
	p := New()
	if _, err := p.LookupStatus(context.Background(), provider.OrderQuery{}, "t-1"); err == nil {
		t.Fatal("empty query must fail")
	}
	st, err := p.LookupStatus(context.Background(), provider.OrderQuery{OrderNumber: "GG-55001"}, "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if st.Reference != "GG-55001" || len(st.Entries) == 0 {
		t.Errorf("status = %+v", st)
	}
}

func TestFileReturnRequiresOption(t *testing.T) {
	p := New()
	if _, err := p.FileReturn(context.Background(), provider.ReturnRequest{}, "t-1"); err == nil {
		t.Fatal("missing option must fail")
	}
	r, err := p.FileReturn(context.Background(), provider.ReturnRequest{OptionID: "resize", OrderNumber: "GG-1"}, "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if r.Message == "" {
		t.Error("receipt message empty")
	}
}
