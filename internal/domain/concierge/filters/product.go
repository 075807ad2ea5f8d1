package filters

import "strconv"

// ProductSummary is the canonical product shape handed to handlers and the
// widget UI, regardless of which provider produced it.
type ProductSummary struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Price           float64  `json:"price"`
	Image           string   `json:"image,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	ShippingPromise string   `json:"shippingPromise,omitempty"`
	Slug            string   `json:"slug,omitempty"`
}

// NormalizeProduct reconciles a raw provider row into a ProductSummary.
// Like NormalizeFilters it never fails: a usable summary always comes back,
// with "Untitled Product" and price 0 as the floor.
func NormalizeProduct(raw map[string]interface{}) ProductSummary {
	p := ProductSummary{Title: "Untitled Product"}
	if raw == nil {
		return p
	}

	if v, ok := stringField(raw, "id"); ok {
		p.ID = v
	} else if n, ok := numeric(raw["id"]); ok {
		p.ID = trimFloat(n)
	}

	if v, ok := stringField(raw, "title"); ok {
		p.Title = v
	} else if v, ok := stringField(raw, "name"); ok {
		p.Title = v
	}

	if n, ok := numeric(raw["price"]); ok {
		p.Price = n
	}

	if v, ok := stringField(raw, "image"); ok {
		p.Image = v
	} else if v, ok := stringField(raw, "imageUrl"); ok {
		p.Image = v
	}

	p.Tags = collectStrings(raw["tags"])

	if v, ok := stringField(raw, "shippingPromise"); ok {
		p.ShippingPromise = v
	}
	if v, ok := stringField(raw, "slug"); ok {
		p.Slug = v
	}

	return p
}

func trimFloat(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
