package handler

import (
	"context"
	"strings"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// TrackOrder prompts for an order reference, then renders the milestone
// timeline and remembers the resolved reference for later flows.
func TrackOrder(ctx context.Context, deps Deps, req Request) (Result, error) {
	act := req.action(ActionOrderLookup)
	if act == nil {
		return Result{
			Messages: []session.Message{
				concierge("I can check on that. What's your order number? Email plus postal code works too."),
				module(session.Module{
					Kind:        session.ModuleOrderLookup,
					OrderLookup: &session.OrderLookupModule{Prompt: "Look up your order"},
				}),
			},
			Patch: session.Patch{LastIntent: intent.TrackOrder},
		}, nil
	}

	q := provider.OrderQuery{
		OrderID:     strings.TrimSpace(act.OrderID),
		OrderNumber: strings.TrimSpace(act.OrderNumber),
		Email:       strings.TrimSpace(act.Email),
		PostalCode:  strings.TrimSpace(act.PostalCode),
	}
	// A bare re-submit reuses the reference resolved earlier in the session.
	if q.OrderID == "" && q.OrderNumber == "" && q.Email == "" && req.Session.LastOrder != nil {
		ref := req.Session.LastOrder
		q.OrderID = ref.OrderID
		q.OrderNumber = ref.OrderNumber
		q.Email = ref.Email
		q.PostalCode = ref.PostalCode
	}

	status, err := deps.Orders.LookupStatus(ctx, q, req.RequestID)
	if err != nil {
		return Result{}, err
	}

	ref := session.OrderRef{
		OrderID:     q.OrderID,
		OrderNumber: q.OrderNumber,
		Email:       q.Email,
		PostalCode:  q.PostalCode,
	}
	if ref.OrderNumber == "" {
		ref.OrderNumber = status.Reference
	}

	return Result{
		Messages: []session.Message{
			concierge("Found it — here's where your order is right now."),
			module(session.Module{
				Kind: session.ModuleOrderTimeline,
				OrderTimeline: &session.OrderTimelineModule{
					Reference: status.Reference,
					Entries:   status.Entries,
				},
			}),
		},
		Patch: session.Patch{
			LastIntent: intent.TrackOrder,
			LastOrder:  &ref,
		},
	}, nil
}
