package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/handler"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

type ConciergeRequest struct {
	SessionID string          `json:"sessionId"`
	Message   string          `json:"message"`
	Action    *handler.Action `json:"action,omitempty"`
}

type ConciergeResponse struct {
	SessionID      string            `json:"sessionId"`
	RequestID      string            `json:"requestId"`
	Intent         intent.Intent     `json:"intent"`
	Confidence     float64           `json:"confidence"`
	Reason         string            `json:"reason,omitempty"`
	Messages       []session.Message `json:"messages"`
	OfferTriggered string            `json:"offerTriggered,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// actionIntents routes a module submission straight to its flow; typed
// text only decides the intent when no structured action came in.
var actionIntents = map[string]intent.Intent{
	handler.ActionFilters:      intent.FindProduct,
	handler.ActionOrderLookup:  intent.TrackOrder,
	handler.ActionReturnOption: intent.ReturnExchange,
	handler.ActionEscalation:   intent.StylistContact,
	handler.ActionCsat:         intent.Csat,
}

func (h *Handlers) ConciergeMessage(w http.ResponseWriter, r *http.Request) {
	var req ConciergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	requestID := uuid.NewString()
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	snap, found, err := h.Sessions.Get(r.Context(), sessionID)
	if err != nil {
		// A broken store never blocks the turn; start from a blank session.
		log.Printf("concierge req=%s session=%s load failed: %v", requestID, sessionID, err)
		found = false
	}
	if !found {
		snap = session.New(sessionID)
	}

	var decision intent.Decision
	if req.Action != nil {
		if it, ok := actionIntents[req.Action.Kind]; ok {
			decision = intent.Decision{Intent: it, Confidence: 1, Reason: "module_action"}
		}
	}
	if decision.Intent == "" {
		decision = h.Engine.Decide(req.Message, snap)
	}

	res := h.Engine.Execute(r.Context(), handler.Request{
		Message:   req.Message,
		Action:    req.Action,
		Decision:  decision,
		Session:   snap,
		RequestID: requestID,
	})

	patch := res.Patch
	if patch.LastIntent == "" && decision.Intent != intent.Clarify {
		patch.LastIntent = decision.Intent
	}
	updated := snap.Apply(patch)
	if err := h.Sessions.Save(r.Context(), updated); err != nil {
		log.Printf("concierge req=%s session=%s save failed: %v", requestID, sessionID, err)
	}

	log.Printf("concierge req=%s session=%s intent=%s conf=%.2f reason=%s msgs=%d err=%s",
		requestID, sessionID, decision.Intent, decision.Confidence, decision.Reason, len(res.Messages), res.Err)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ConciergeResponse{
		SessionID:      sessionID,
		RequestID:      requestID,
		Intent:         decision.Intent,
		Confidence:     decision.Confidence,
		Reason:         decision.Reason,
		Messages:       res.Messages,
		OfferTriggered: res.OfferTriggered,
		Error:          res.Err,
	})
}
