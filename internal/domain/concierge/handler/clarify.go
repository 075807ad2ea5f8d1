package handler

import (
	"context"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// Clarify handles the non-intent outcome: ask the guest to narrow things
// down and surface the quick starts so they have somewhere to tap.
func Clarify(ctx context.Context, deps Deps, req Request) (Result, error) {
	msgs := []session.Message{
		concierge("I want to point you the right way — are you shopping, checking an order, or something else?"),
	}
	if opts := quickStartOptions(deps); len(opts) > 0 {
		msgs = append(msgs, module(session.Module{
			Kind:        session.ModuleQuickStarts,
			QuickStarts: &session.QuickStartsModule{Options: opts},
		}))
	}
	return Result{Messages: msgs}, nil
}
