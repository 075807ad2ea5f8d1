package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/app/config"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/engine"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/handler"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/presets"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/infra/sessionstore"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/infra/stub"
)

func newTestHandlers() *Handlers {
	providers := stub.New()
	deps := handler.Deps{
		Catalog:  providers,
		Orders:   providers,
		Support:  providers,
		Presets:  presets.Empty(),
		DataMode: provider.ModeStub,
	}
	return New(config.Config{}, engine.New(deps), sessionstore.NewMemory(), nil, provider.ModeStub)
}

func postMessage(t *testing.T, h *Handlers, req ConciergeRequest) ConciergeResponse {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	rec := httptest.NewRecorder()
	h.ConciergeMessage(rec, httptest.NewRequest(http.MethodPost, "/v1/concierge/message", bytes.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res ConciergeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	return res
}

func hasModule(res ConciergeResponse, kind string) bool {
	for _, m := range res.Messages {
		if m.Module != nil && string(m.Module.Kind) == kind {
			return true
		}
	}
	return false
}

func TestConciergeFreeTextSearchTurn(t *testing.T) {
	h := newTestHandlers()
	res := postMessage(t, h, ConciergeRequest{Message: "I want a ring under $300 as a gift"})

	if string(res.Intent) != "find_product" {
		t.Fatalf("intent = %q", res.Intent)
	}
	if res.SessionID == "" || res.RequestID == "" {
		t.Errorf("missing ids: %+v", res)
	}
	if !hasModule(res, "product_carousel") {
		t.Errorf("no carousel in %d messages", len(res.Messages))
	}
}

func TestConciergeContinuationAcrossTurns(t *testing.T) {
	h := newTestHandlers()
	first := postMessage(t, h, ConciergeRequest{Message: "I want a ring under $300 as a gift"})

	second := postMessage(t, h, ConciergeRequest{SessionID: first.SessionID, Message: "show me more"})
	if string(second.Intent) != "find_product" || second.Reason != "context_continuation" {
		t.Errorf("second turn = intent %q reason %q", second.Intent, second.Reason)
	}
	if second.SessionID != first.SessionID {
		t.Errorf("session changed: %q -> %q", first.SessionID, second.SessionID)
	}
}

func TestConciergeActionRoutesWithoutText(t *testing.T) {
	h := newTestHandlers()
	res := postMessage(t, h, ConciergeRequest{
		Action: &handler.Action{Kind: handler.ActionOrderLookup, OrderNumber: "GG-55001"},
	})
	if string(res.Intent) != "track_order" || res.Reason != "module_action" {
		t.Fatalf("intent = %q reason = %q", res.Intent, res.Reason)
	}
	if !hasModule(res, "order_timeline") {
		t.Error("no order timeline module")
	}
}

func TestConciergeBadJSON(t *testing.T) {
	h := newTestHandlers()
	rec := httptest.NewRecorder()
	h.ConciergeMessage(rec, httptest.NewRequest(http.MethodPost, "/v1/concierge/message", bytes.NewReader([]byte("{"))))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}
