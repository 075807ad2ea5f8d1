package handler

import (
	"context"
	"log"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// csatScale maps the widget's categorical ratings onto the 1-5 scale the
// downstream survey system expects. The mapping is part of the reporting
// contract; changing it would skew historical CSAT numbers.
var csatScale = map[string]int{
	"great":           5,
	"good":            4,
	"okay":            3,
	"needs_follow_up": 2,
	"poor":            1,
}

// Csat shows the rating prompt or forwards a submitted rating. Submission is
// fire-and-forget: a failed survey post never interrupts the guest.
func Csat(ctx context.Context, deps Deps, req Request) (Result, error) {
	shown := true
	act := req.action(ActionCsat)
	if act == nil {
		return Result{
			Messages: []session.Message{module(csatPromptModule())},
			Patch: session.Patch{
				LastIntent:   intent.Csat,
				HasShownCsat: &shown,
			},
		}, nil
	}

	if rating, ok := csatScale[act.Rating]; ok {
		resp := provider.CsatResponse{
			SessionID: req.Session.ID,
			Intent:    string(req.Session.LastIntent),
			Rating:    rating,
		}
		if req.Session.LastOrder != nil {
			resp.OrderNumber = req.Session.LastOrder.OrderNumber
		}
		if err := deps.Support.SubmitCsat(ctx, resp, req.RequestID); err != nil {
			log.Printf("concierge req=%s csat submit failed: %v", req.RequestID, err)
		}
	} else {
		log.Printf("concierge req=%s csat rating %q not on scale, skipped", req.RequestID, act.Rating)
	}

	return Result{
		Messages: []session.Message{
			concierge("Thanks for the feedback — it genuinely helps."),
		},
		Patch: session.Patch{
			LastIntent:   intent.Csat,
			HasShownCsat: &shown,
		},
	}, nil
}
