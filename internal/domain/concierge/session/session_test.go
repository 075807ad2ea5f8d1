package session

import (
	"encoding/json"
	"testing"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
)

func TestApplyPatch(t *testing.T) {
	s := New("sess-1")
	f := filters.NormalizeFilters(map[string]interface{}{"category": "ring"})
	shown := true

	updated := s.Apply(Patch{
		LastIntent:   intent.FindProduct,
		LastFilters:  &f,
		HasShownCsat: &shown,
		LastOrder:    &OrderRef{OrderNumber: "GG-10293"},
	})

	if updated.LastIntent != intent.FindProduct {
		t.Errorf("lastIntent = %q", updated.LastIntent)
	}
	if updated.LastFilters == nil || updated.LastFilters.Category != "ring" {
		t.Errorf("lastFilters = %+v", updated.LastFilters)
	}
	if !updated.HasShownCsat {
		t.Errorf("hasShownCsat not applied")
	}
	if updated.LastOrder == nil || updated.LastOrder.OrderNumber != "GG-10293" {
		t.Errorf("lastOrder = %+v", updated.LastOrder)
	}

	// Snapshot untouched.
	if s.LastIntent != "" || s.LastFilters != nil || s.HasShownCsat || s.LastOrder != nil {
		t.Errorf("Apply mutated the receiver: %+v", s)
	}
}

func TestEmptyPatchChangesNothing(t *testing.T) {
	s := New("sess-2")
	f := filters.NormalizeFilters(map[string]interface{}{"metal": "gold"})
	s.LastIntent = intent.FindProduct
	s.LastFilters = &f
	s.HasShownCsat = true

	updated := s.Apply(Patch{})
	if updated.LastIntent != s.LastIntent || updated.LastFilters == nil || !updated.HasShownCsat {
		t.Errorf("empty patch must preserve state, got %+v", updated)
	}
}

func TestClearFields(t *testing.T) {
	s := New("sess-3")
	f := filters.NormalizeFilters(map[string]interface{}{"metal": "gold"})
	s.LastFilters = &f
	s.LastOrder = &OrderRef{OrderID: "o1"}

	updated := s.Apply(Patch{ClearLastFilters: true, ClearLastOrder: true})
	if updated.LastFilters != nil || updated.LastOrder != nil {
		t.Errorf("clear flags ignored: %+v", updated)
	}
}

func TestMessageTypeFollowsPayload(t *testing.T) {
	text := NewText(RoleConcierge, "hi")
	if text.Type != TypeText || text.Module != nil {
		t.Errorf("text message malformed: %+v", text)
	}

	mod := NewModule(RoleConcierge, Module{Kind: ModuleCsatPrompt, CsatPrompt: &CsatPromptModule{Question: "How was it?"}})
	if mod.Type != TypeModule || mod.Module == nil {
		t.Errorf("module message malformed: %+v", mod)
	}

	// A hand-built inconsistent message self-corrects on marshal.
	bad := Message{ID: "x", Role: RoleConcierge, Type: TypeText, Module: &Module{Kind: ModuleInfoCard}}
	b, err := json.Marshal(bad)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out["type"] != "module" {
		t.Errorf("marshaled type = %v, want module", out["type"])
	}
}
