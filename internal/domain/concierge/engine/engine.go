// Package engine dispatches classified turns to intent handlers. Execute is
// the one safety boundary of the concierge: whatever a handler does — error,
// panic, or simply not exist — the caller always gets a well-formed reply.
package engine

import (
	"context"
	"log"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/handler"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// ErrTagRequestFailed marks a turn whose handler failed; the guest sees an
// apology, the caller sees this tag.
const ErrTagRequestFailed = "request_failed"

// Engine holds the static dispatch table and the handler dependencies.
type Engine struct {
	deps     handler.Deps
	handlers map[intent.Intent]handler.Func
}

func New(deps handler.Deps) *Engine {
	return &Engine{
		deps: deps,
		handlers: map[intent.Intent]handler.Func{
			intent.FindProduct:    handler.FindProduct,
			intent.TrackOrder:     handler.TrackOrder,
			intent.ReturnExchange: handler.ReturnExchange,
			intent.SizingRepairs:  handler.SizingRepairs,
			intent.CareWarranty:   handler.CareWarranty,
			intent.Financing:      handler.Financing,
			intent.StylistContact: handler.StylistContact,
			intent.Csat:           handler.Csat,
			intent.Clarify:        handler.Clarify,
		},
	}
}

// Decide classifies one message against the session's prior turn.
func (e *Engine) Decide(message string, snap session.Session) intent.Decision {
	return intent.Decide(message, &intent.Context{
		LastIntent:  snap.LastIntent,
		LastFilters: snap.LastFilters,
	})
}

// Execute runs the handler for the decided intent. It never returns an
// error and never panics: every call path ends in at least one message.
func (e *Engine) Execute(ctx context.Context, req handler.Request) (res handler.Result) {
	it := req.Decision.Intent

	defer func() {
		if r := recover(); r != nil {
			log.Printf("concierge req=%s intent=%s handler panic: %v", req.RequestID, it, r)
			res = failedResult(it)
		}
	}()

	fn, ok := e.handlers[it]
	if !ok {
		log.Printf("concierge req=%s intent=%s no handler", req.RequestID, it)
		return handler.Result{
			Messages: []session.Message{
				session.NewText(session.RoleConcierge,
					"That flow isn't built into chat yet — a stylist can help with it right away."),
			},
			Patch: session.Patch{LastIntent: it},
		}
	}

	res, err := fn(ctx, e.deps, req)
	if err != nil {
		log.Printf("concierge req=%s intent=%s handler failed: %v", req.RequestID, it, err)
		return failedResult(it)
	}

	// Stamp the intent on outgoing messages for the widget's analytics.
	for i := range res.Messages {
		if res.Messages[i].Intent == "" {
			res.Messages[i].Intent = it
		}
	}
	return res
}

func failedResult(it intent.Intent) handler.Result {
	msg := session.NewText(session.RoleConcierge,
		"Sorry — something went wrong on my end just now. Mind trying again, or I can connect you with a stylist.")
	msg.Intent = it
	return handler.Result{
		Messages: []session.Message{msg},
		Patch:    session.Patch{LastIntent: it},
		Err:      ErrTagRequestFailed,
	}
}
