package presets

import "testing"

const sample = `
presets:
  - slug: Under-300
    label: Under $300
    filters:
      priceMax: 300
      readyToShip: true
  - slug: gold-gifts
    label: Gold gifts
    filters:
      metal: gold
      tags: [gift]
  - label: no slug, skipped
    filters:
      metal: silver
`

func TestParseAndLookup(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.All()) != 2 {
		t.Fatalf("got %d presets, want 2 (slugless skipped)", len(c.All()))
	}

	f, ok := c.Normalized("UNDER-300")
	if !ok {
		t.Fatal("slug lookup must be case-insensitive")
	}
	if f.PriceMax == nil || *f.PriceMax != 300 {
		t.Errorf("priceMax = %v", f.PriceMax)
	}
	if f.ReadyToShip == nil || !*f.ReadyToShip {
		t.Errorf("readyToShip = %v", f.ReadyToShip)
	}
}

func TestMergeUnderCallerWins(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	merged := c.MergeUnder("under-300", map[string]interface{}{"priceMax": 500, "metal": "gold"})
	if merged["priceMax"] != 500 {
		t.Errorf("caller priceMax overridden: %v", merged["priceMax"])
	}
	if merged["readyToShip"] != true {
		t.Errorf("preset readyToShip lost: %v", merged["readyToShip"])
	}
	if merged["metal"] != "gold" {
		t.Errorf("caller-only key lost: %v", merged["metal"])
	}
}

func TestMergeUnknownSlugPassthrough(t *testing.T) {
	c := Empty()
	caller := map[string]interface{}{"metal": "silver"}
	if got := c.MergeUnder("nope", caller); got["metal"] != "silver" || len(got) != 1 {
		t.Errorf("unknown slug should return caller map unchanged, got %v", got)
	}
}
