package handler

import (
	"context"
	"log"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

var returnOptions = []session.ReturnOption{
	{ID: "resize", Label: "Resize it", Description: "Free resizing within 60 days."},
	{ID: "return", Label: "Return it", Description: "Full refund within 30 days."},
	{ID: "care_refresh", Label: "Care refresh", Description: "Cleaning and re-polish, on us."},
}

// ReturnExchange presents the fixed option menu, then files the selected
// option, pre-filling the order reference from the session when the
// selection didn't carry one. An escalation-form offer always follows,
// whether filing succeeded or not.
func ReturnExchange(ctx context.Context, deps Deps, req Request) (Result, error) {
	act := req.action(ActionReturnOption)
	if act == nil {
		return Result{
			Messages: []session.Message{
				concierge("No problem — what would you like to do with your piece?"),
				module(session.Module{
					Kind:          session.ModuleReturnOptions,
					ReturnOptions: &session.ReturnOptionsModule{Options: returnOptions},
				}),
			},
			Patch: session.Patch{LastIntent: intent.ReturnExchange},
		}, nil
	}

	r := provider.ReturnRequest{
		OptionID:    act.OptionID,
		OrderID:     act.OrderID,
		OrderNumber: act.OrderNumber,
		Note:        act.Note,
	}
	if r.OrderID == "" && r.OrderNumber == "" && req.Session.LastOrder != nil {
		r.OrderID = req.Session.LastOrder.OrderID
		r.OrderNumber = req.Session.LastOrder.OrderNumber
	}

	var text string
	receipt, err := deps.Orders.FileReturn(ctx, r, req.RequestID)
	switch {
	case err != nil:
		log.Printf("concierge req=%s file return failed: %v", req.RequestID, err)
		text = "I hit a snag filing that just now. A stylist can sort it out directly — details below."
	case receipt.Message != "":
		text = receipt.Message
	default:
		text = "All set — your request is in. You'll get a confirmation email shortly."
	}

	return Result{
		Messages: []session.Message{
			concierge(text),
			module(escalationFormModule("Anything else about this order? A stylist can help.")),
		},
		Patch:          session.Patch{LastIntent: intent.ReturnExchange},
		OfferTriggered: "escalation_form",
	}, nil
}

func escalationFormModule(prompt string) session.Module {
	return session.Module{
		Kind: session.ModuleEscalationForm,
		EscalationForm: &session.EscalationFormModule{
			Prompt: prompt,
			Fields: []string{"name", "email", "phone", "note"},
		},
	}
}
