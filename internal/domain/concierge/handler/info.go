package handler

import (
	"context"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// The three informational intents are single-turn: one explanatory message,
// one escalation form, no branching.

func SizingRepairs(ctx context.Context, deps Deps, req Request) (Result, error) {
	return infoResult(intent.SizingRepairs,
		"Most rings can be resized up or down one full size, free within 60 days. "+
			"Repairs for broken clasps, prongs, and chains are covered for the first year."), nil
}

func CareWarranty(ctx context.Context, deps Deps, req Request) (Result, error) {
	return infoResult(intent.CareWarranty,
		"Every piece ships with a lifetime warranty against manufacturing defects. "+
			"For day-to-day care, a soft cloth and warm soapy water keep lab stones bright — skip the harsh dips."), nil
}

func Financing(ctx context.Context, deps Deps, req Request) (Result, error) {
	return infoResult(intent.Financing,
		"You can split any order into 4 interest-free payments at checkout, or take 12-month "+
			"financing on orders over $500. No hard credit check for the 4-pay option."), nil
}

func infoResult(it intent.Intent, text string) Result {
	return Result{
		Messages: []session.Message{
			concierge(text),
			module(escalationFormModule("Want a stylist to walk you through it?")),
		},
		Patch: session.Patch{LastIntent: it},
	}
}
