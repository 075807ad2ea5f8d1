package handler

import (
	"context"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// StylistContact collects contact details, opens a ticket carrying the
// session shortlist, and always closes with a CSAT prompt.
func StylistContact(ctx context.Context, deps Deps, req Request) (Result, error) {
	act := req.action(ActionEscalation)
	if act == nil {
		return Result{
			Messages: []session.Message{
				concierge("Of course — leave your details and a stylist will reach out within one business day."),
				module(escalationFormModule("How can a stylist reach you?")),
			},
			Patch: session.Patch{LastIntent: intent.StylistContact},
		}, nil
	}

	ticket := provider.Ticket{
		SessionID: req.Session.ID,
		Name:      act.Name,
		Email:     act.Email,
		Phone:     act.Phone,
		Note:      act.Note,
		Shortlist: req.Session.Shortlist,
	}
	receipt, err := deps.Support.CreateStylistTicket(ctx, ticket, req.RequestID)
	if err != nil {
		return Result{}, err
	}

	text := receipt.Message
	if text == "" {
		text = "You're all set — a stylist has your request and your shortlist."
	}

	shown := true
	return Result{
		Messages: []session.Message{
			concierge(text),
			module(csatPromptModule()),
		},
		Patch: session.Patch{
			LastIntent:   intent.StylistContact,
			HasShownCsat: &shown,
		},
	}, nil
}

func csatPromptModule() session.Module {
	return session.Module{
		Kind: session.ModuleCsatPrompt,
		CsatPrompt: &session.CsatPromptModule{
			Question: "Before you go — how was this chat?",
			Ratings:  []string{"great", "good", "okay", "needs_follow_up", "poor"},
		},
	}
}
