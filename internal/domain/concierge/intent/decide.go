package intent

import (
	"regexp"
	"strings"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/filters"
)

var (
	orderNumberRe = regexp.MustCompile(`\b(?:GG-)?\d{5,12}\b`)
	emailRe       = regexp.MustCompile(`(?i)\b[A-Z0-9._%+\-]+@[A-Z0-9.\-]+\.[A-Z]{2,}\b`)
	postalRe      = regexp.MustCompile(`(?i)\b(?:\d{5}(?:-\d{4})?|[A-Z]\d[A-Z] ?\d[A-Z]\d)\b`)
)

// Decide classifies one guest message, optionally informed by the previous
// turn. Deterministic and synchronous; never fails.
func Decide(message string, ctx *Context) Decision {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Decision{Intent: Clarify, Confidence: 0, Reason: "empty_message"}
	}

	// 1. Slash commands.
	if it, ok := slashCommands[strings.ToLower(trimmed)]; ok {
		return Decision{Intent: it, Confidence: 0.95, Reason: "slash_command"}
	}

	// 2. Order references beat everything except explicit commands: a guest
	// pasting an order number wants status, whatever else the text says.
	if orderNumberRe.MatchString(trimmed) {
		return Decision{Intent: TrackOrder, Confidence: 0.92, Reason: "order_number_detected"}
	}
	if emailRe.MatchString(trimmed) && postalRe.MatchString(trimmed) {
		return Decision{Intent: TrackOrder, Confidence: 0.92, Reason: "email_postal_detected"}
	}

	// 3. Keyword table, in order.
	if rule, ok := matchKeywordRule(trimmed); ok {
		d := Decision{Intent: rule.intent, Confidence: rule.confidence, Reason: rule.reason}
		if rule.intent == FindProduct {
			if raw, any := extractFilterSignals(trimmed); any {
				f := filters.NormalizeFilters(raw)
				d.Filters = &f
			}
		}
		return d
	}

	// 4. Structured product signals.
	if raw, any := extractFilterSignals(trimmed); any {
		f := filters.NormalizeFilters(raw)
		return Decision{Intent: FindProduct, Confidence: 0.75, Filters: &f, Reason: "filters_extracted"}
	}
	if hasProductCue(trimmed) && ctx != nil && ctx.LastIntent == FindProduct && ctx.LastFilters != nil {
		inherited := ctx.LastFilters.Clone()
		return Decision{Intent: FindProduct, Confidence: 0.55, Filters: &inherited, Reason: "inherited_last_filters"}
	}

	// 5. Bare continuation of a product conversation.
	if ctx != nil && ctx.LastIntent == FindProduct && ctx.LastFilters != nil && wantsMoreOptions(trimmed) {
		inherited := ctx.LastFilters.Clone()
		return Decision{Intent: FindProduct, Confidence: 0.5, Filters: &inherited, Reason: "context_continuation"}
	}

	// 6. Nothing matched.
	return Decision{Intent: Clarify, Confidence: 0.2, Reason: "no_rule_matched"}
}
