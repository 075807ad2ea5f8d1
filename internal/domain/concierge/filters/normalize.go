package filters

import (
	"strconv"
	"strings"
)

// NormalizeFilters reconciles the historical payload shapes the widget has
// shipped over time into one canonical Filters value. It is total:
// unrecognized or malformed fields are dropped, never reported.
func NormalizeFilters(raw map[string]interface{}) Filters {
	f := Filters{Limit: DefaultLimit, Offset: 0}
	if raw == nil {
		return f
	}

	// Price ceiling: first numeric-coercible alias wins.
	ceiling, ceilingOK := firstNumeric(raw, "priceLt", "priceMax", "budgetMax")
	if !ceilingOK {
		ceiling, ceilingOK = bandNumeric(raw, "max")
	}
	floor, floorOK := firstNumeric(raw, "priceMin", "budgetMin")
	if !floorOK {
		floor, floorOK = bandNumeric(raw, "min")
	}

	if v, ok := stringField(raw, "category"); ok {
		f.Category = strings.ToLower(v)
	}
	if v, ok := stringField(raw, "metal"); ok {
		f.Metal = strings.ToLower(v)
	}

	f.Materials = collectStrings(raw["materials"])
	f.Tags = collectStrings(raw["tags"])

	// Presence of the key gates inclusion, not truthiness: readyToShip=false
	// is an explicit "include made-to-order" choice.
	if v, ok := raw["readyToShip"]; ok {
		f.ReadyToShip = boolPtr(coerceBool(v))
	}
	if v, ok := raw["featured"]; ok {
		f.Featured = boolPtr(coerceBool(v))
	}

	if v, ok := stringField(raw, "stone"); ok {
		f.Stone = v
		slug := strings.ReplaceAll(strings.ToLower(v), " ", "-")
		if !f.HasTag(slug) {
			f.Tags = append(f.Tags, slug)
		}
	}

	if floorOK {
		f.PriceMin = floatPtr(clampPrice(floor))
	}
	if ceilingOK {
		c := clampPrice(ceiling)
		f.PriceMax = floatPtr(c)
		f.PriceLt = floatPtr(c)
	}

	if v, ok := stringField(raw, "sortBy"); ok {
		switch v {
		case SortFeatured, SortNewest, SortPriceAsc, SortPriceDesc:
			f.SortBy = v
		}
	}

	if v, ok := numeric(raw["limit"]); ok {
		f.Limit = clampInt(int(v), 1, MaxLimit)
	}
	if v, ok := numeric(raw["offset"]); ok {
		f.Offset = clampInt(int(v), 0, MaxOffset)
	}

	if v, ok := raw["q"].(string); ok && strings.TrimSpace(v) != "" {
		f.Q = v
	}

	return f
}

func firstNumeric(raw map[string]interface{}, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := numeric(raw[k]); ok {
			return v, true
		}
	}
	return 0, false
}

func bandNumeric(raw map[string]interface{}, edge string) (float64, bool) {
	band, ok := raw["priceBand"].(map[string]interface{})
	if !ok {
		return 0, false
	}
	return numeric(band[edge])
}

func numeric(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "$"))
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func coerceBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "true")
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return false
	}
}

func stringField(raw map[string]interface{}, key string) (string, bool) {
	v, ok := raw[key].(string)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

func collectStrings(v interface{}) []string {
	var items []string
	switch t := v.(type) {
	case []string:
		items = t
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	default:
		return nil
	}
	seen := map[string]struct{}{}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s := strings.ToLower(strings.TrimSpace(item))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func clampPrice(v float64) float64 {
	if v < PriceFloor {
		return PriceFloor
	}
	if v > PriceCeil {
		return PriceCeil
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
