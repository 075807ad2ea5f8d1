package filters

// Search sort modes accepted by the catalog.
const (
	SortFeatured  = "featured"
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

const (
	PriceFloor = 1
	PriceCeil  = 100000

	DefaultLimit = 20
	MaxLimit     = 50
	MaxOffset    = 5000
)

// Filters is the canonical product-search criteria shape. Zero string fields
// mean "not set"; prices and readyToShip use pointers because zero is a
// meaningful value for them. PriceMax and PriceLt always carry the same
// value when either is set — legacy consumers read priceLt, newer ones
// priceMax, and they must not diverge.
type Filters struct {
	Category    string
	Metal       string
	Stone       string
	Materials   []string
	Tags        []string
	ReadyToShip *bool
	PriceMin    *float64
	PriceMax    *float64
	PriceLt     *float64
	Featured    *bool
	SortBy      string
	Limit       int
	Offset      int
	Q           string
}

// Ceiling returns the resolved price ceiling, or 0 when none is set.
func (f Filters) Ceiling() float64 {
	if f.PriceLt != nil {
		return *f.PriceLt
	}
	if f.PriceMax != nil {
		return *f.PriceMax
	}
	return 0
}

// HasTag reports whether tag is already present (tags are stored lowercased).
func (f Filters) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so fallback variants never alias the base slices.
func (f Filters) Clone() Filters {
	out := f
	if f.Materials != nil {
		out.Materials = append([]string(nil), f.Materials...)
	}
	if f.Tags != nil {
		out.Tags = append([]string(nil), f.Tags...)
	}
	out.ReadyToShip = cloneBool(f.ReadyToShip)
	out.Featured = cloneBool(f.Featured)
	out.PriceMin = cloneFloat(f.PriceMin)
	out.PriceMax = cloneFloat(f.PriceMax)
	out.PriceLt = cloneFloat(f.PriceLt)
	return out
}

// ToRawMap renders the filters back into the loose map shape accepted by
// NormalizeFilters. Normalizing the result yields the same filters again.
func (f Filters) ToRawMap() map[string]interface{} {
	raw := map[string]interface{}{
		"limit":  f.Limit,
		"offset": f.Offset,
	}
	if f.Category != "" {
		raw["category"] = f.Category
	}
	if f.Metal != "" {
		raw["metal"] = f.Metal
	}
	if f.Stone != "" {
		raw["stone"] = f.Stone
	}
	if len(f.Materials) > 0 {
		raw["materials"] = append([]string(nil), f.Materials...)
	}
	if len(f.Tags) > 0 {
		raw["tags"] = append([]string(nil), f.Tags...)
	}
	if f.ReadyToShip != nil {
		raw["readyToShip"] = *f.ReadyToShip
	}
	if f.PriceMin != nil {
		raw["priceMin"] = *f.PriceMin
	}
	if f.PriceLt != nil {
		raw["priceLt"] = *f.PriceLt
	} else if f.PriceMax != nil {
		raw["priceMax"] = *f.PriceMax
	}
	if f.Featured != nil {
		raw["featured"] = *f.Featured
	}
	if f.SortBy != "" {
		raw["sortBy"] = f.SortBy
	}
	if f.Q != "" {
		raw["q"] = f.Q
	}
	return raw
}

// SearchView strips paging fields for UI payloads and session patches, which
// carry the criteria but not the page window.
func (f Filters) SearchView() Filters {
	out := f.Clone()
	out.Limit = 0
	out.Offset = 0
	return out
}

func cloneBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	b := *v
	return &b
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }
