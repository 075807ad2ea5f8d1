package handler

import (
	"context"
	"log"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/fallback"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/intent"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/session"
)

// FindProduct runs the product discovery step. Without a filter submission
// it prompts for criteria; with one it merges any quick-start preset under
// the caller's filters, normalizes, and runs the relaxation search loop.
func FindProduct(ctx context.Context, deps Deps, req Request) (Result, error) {
	act := req.action(ActionFilters)
	if act == nil {
		// The classifier may already have extracted filters from free text;
		// treat those as a submission so "rings under $300" searches
		// immediately instead of prompting.
		if req.Decision.Filters != nil {
			return searchAndRespond(ctx, deps, req, *req.Decision.Filters)
		}
		return promptForFilters(deps), nil
	}

	raw := act.Filters
	if raw == nil {
		raw = map[string]interface{}{}
	}
	if act.Preset != "" {
		raw = deps.Presets.MergeUnder(act.Preset, raw)
	}
	return searchAndRespond(ctx, deps, req, filters.NormalizeFilters(raw))
}

func promptForFilters(deps Deps) Result {
	msgs := []session.Message{
		concierge("Happy to help you find something. What are you shopping for?"),
		module(session.Module{
			Kind: session.ModuleFilterPrompt,
			FilterPrompt: &session.FilterPromptModule{
				Prompt: "Pick a category, metal, or budget to get started.",
				Facets: []string{"category", "metal", "stone", "priceMax", "readyToShip"},
			},
		}),
	}
	if opts := quickStartOptions(deps); len(opts) > 0 {
		msgs = append(msgs, module(session.Module{
			Kind:        session.ModuleQuickStarts,
			QuickStarts: &session.QuickStartsModule{Options: opts},
		}))
	}
	return Result{Messages: msgs, Patch: session.Patch{LastIntent: intent.FindProduct}}
}

func quickStartOptions(deps Deps) []session.QuickStartOption {
	if deps.Presets == nil {
		return nil
	}
	all := deps.Presets.All()
	out := make([]session.QuickStartOption, 0, len(all))
	for _, p := range all {
		out = append(out, session.QuickStartOption{Slug: p.Slug, Label: p.Label})
	}
	return out
}

func searchAndRespond(ctx context.Context, deps Deps, req Request, base filters.Filters) (Result, error) {
	products, err := deps.Catalog.SearchProducts(ctx, base, req.RequestID)
	if err != nil {
		return Result{}, err
	}

	applied := base
	var loosened []string
	if len(products) == 0 {
		// Relaxation attempts run sequentially and stop at the first hit;
		// firing them concurrently would waste provider calls and blur
		// which variant actually won.
		for _, variant := range fallback.BuildProductFallbacks(base) {
			loosened = append(loosened, variant.Reason)
			products, err = deps.Catalog.SearchProducts(ctx, variant.Filters, req.RequestID)
			if err != nil {
				return Result{}, err
			}
			if len(products) > 0 {
				applied = variant.Filters
				break
			}
		}
	}

	if len(products) == 0 {
		log.Printf("concierge req=%s find_product no match after %d fallbacks", req.RequestID, len(loosened))
		msgs := []session.Message{
			concierge("I couldn't find a match for that, even after loosening things up. Want to try different filters, or talk to a stylist?"),
		}
		if deps.DataMode == "stub" {
			msgs = append(msgs, concierge("Heads up: I'm searching a small sample catalog right now, so the full collection may have more."))
		}
		return Result{Messages: msgs, Patch: session.Patch{LastIntent: intent.FindProduct}}, nil
	}

	view := applied.SearchView()
	text := "Here's what I found for you."
	if len(loosened) > 0 {
		text = "I loosened the filters a little to find these."
	}
	msgs := []session.Message{
		concierge(text),
		module(session.Module{
			Kind: session.ModuleProductCarousel,
			ProductCarousel: &session.ProductCarouselModule{
				Products: products,
				Applied:  &view,
				Loosened: loosened,
			},
		}),
	}
	return Result{
		Messages: msgs,
		Patch: session.Patch{
			LastIntent:  intent.FindProduct,
			LastFilters: &view,
		},
	}, nil
}
