// Package fallback plans the ordered filter relaxations tried after a
// product search comes back empty. The order is merchandising policy, not an
// implementation detail: metal first, then budget, then shipping window.
package fallback

import (
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
)

const (
	ReasonDropMetal          = "drop_metal"
	ReasonRaisePrice         = "raise_price"
	ReasonDropReadyToShip    = "drop_ready_to_ship"
	ReasonDefaultReadyToShip = "default_ready_to_ship"
)

// Budget relaxation never searches unbounded: the ceiling moves up in one
// +300 step and stops at 1200.
const (
	priceStep = 300
	priceCap  = 1200
)

// Variant is one loosened retry of the base filters.
type Variant struct {
	Filters filters.Filters
	Reason  string
}

// BuildProductFallbacks returns the retry plan for a base filter set whose
// initial search returned nothing. Callers try variants strictly in order
// and stop at the first non-empty result.
func BuildProductFallbacks(base filters.Filters) []Variant {
	var plan []Variant
	current := base.Clone()

	if current.Metal != "" {
		current.Metal = ""
		plan = append(plan, Variant{Filters: current.Clone(), Reason: ReasonDropMetal})
	}

	if ceiling := current.Ceiling(); ceiling > 0 && ceiling < priceCap {
		raised := ceiling + priceStep
		if raised > priceCap {
			raised = priceCap
		}
		current = withCeiling(current, raised)
		plan = append(plan, Variant{Filters: current.Clone(), Reason: ReasonRaisePrice})
	}

	if current.ReadyToShip != nil {
		current.ReadyToShip = nil
		plan = append(plan, Variant{Filters: current.Clone(), Reason: ReasonDropReadyToShip})
	}

	// Last-ditch attempt always favors in-stock pieces.
	final := current.Clone()
	rts := true
	final.ReadyToShip = &rts
	plan = append(plan, Variant{Filters: final, Reason: ReasonDefaultReadyToShip})

	return plan
}

func withCeiling(f filters.Filters, v float64) filters.Filters {
	out := f.Clone()
	out.PriceMax = &v
	lt := v
	out.PriceLt = &lt
	return out
}
