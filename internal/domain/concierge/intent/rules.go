package intent

import "regexp"

// slashCommands maps exact commands (case-insensitive, trimmed) to intents.
var slashCommands = map[string]Intent{
	"/shop":      FindProduct,
	"/track":     TrackOrder,
	"/return":    ReturnExchange,
	"/resize":    SizingRepairs,
	"/care":      CareWarranty,
	"/financing": Financing,
	"/stylist":   StylistContact,
	"/feedback":  Csat,
}

type keywordRule struct {
	intent     Intent
	patterns   []*regexp.Regexp
	confidence float64
	reason     string
}

// keywordRules is scanned top to bottom; the first rule with any pattern
// match wins. Return/resize rules sit above the generic product rule because
// phrases like "swap this ring" read as both. Confidences are hand-tuned
// constants inherited from production traffic; do not re-derive them.
var keywordRules = []keywordRule{
	{
		intent: ReturnExchange,
		patterns: compile(
			`\breturn\b`,
			`\bexchange\b`,
			`\brefund\b`,
			`\bswap (?:this|it|my)\b`,
			`\bsend (?:it|this|them) back\b`,
			`\bwrong (?:size|item)\b`,
		),
		confidence: 0.9,
		reason:     "return_keywords",
	},
	{
		intent: TrackOrder,
		patterns: compile(
			`\bwhere(?:'s| is) my order\b`,
			`\btrack\b`,
			`\bshipping status\b`,
			`\bdelivery (?:update|status)\b`,
			`\bhas (?:it|my order) shipped\b`,
		),
		confidence: 0.88,
		reason:     "tracking_keywords",
	},
	{
		intent: SizingRepairs,
		patterns: compile(
			`\bresiz\w*\b`,
			`\bring size\b`,
			`\brepair\b`,
			`\b(?:broke|broken|snapped|bent)\b`,
			`\bprong\b`,
			`\bclasp\b`,
		),
		confidence: 0.85,
		reason:     "sizing_keywords",
	},
	{
		intent: Financing,
		patterns: compile(
			`\bfinanc\w*\b`,
			`\binstallment\w*\b`,
			`\bpayment plan\b`,
			`\bsplit (?:the |my )?payment\b`,
			`\b(?:afterpay|klarna|affirm)\b`,
		),
		confidence: 0.85,
		reason:     "financing_keywords",
	},
	{
		intent: CareWarranty,
		patterns: compile(
			`\bwarranty\b`,
			`\btarnish\w*\b`,
			`\bpolish\w*\b`,
			`\bclean(?:ing)? (?:my|the|it)\b`,
			`\bhow (?:do i|to) care\b`,
		),
		confidence: 0.8,
		reason:     "care_keywords",
	},
	{
		intent: StylistContact,
		patterns: compile(
			`\bstylist\b`,
			`\b(?:real|actual) (?:person|human)\b`,
			`\btalk to (?:someone|a human|an agent)\b`,
			`\bhuman\b`,
			`\bconsult\w*\b`,
		),
		confidence: 0.86,
		reason:     "stylist_keywords",
	},
	{
		intent: Csat,
		patterns: compile(
			`\bfeedback\b`,
			`\brate (?:this|the|my) (?:chat|experience)\b`,
			`\bsurvey\b`,
		),
		confidence: 0.78,
		reason:     "csat_keywords",
	},
	{
		intent: FindProduct,
		patterns: compile(
			`\brecommend\w*\b`,
			`\bsuggest\w*\b`,
			`\blooking for\b`,
			`\bshopping for\b`,
			`\bhelp me (?:find|choose|pick)\b`,
			`\bbrowse\b`,
		),
		confidence: 0.72,
		reason:     "product_keywords",
	},
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

func matchKeywordRule(message string) (keywordRule, bool) {
	for _, rule := range keywordRules {
		for _, re := range rule.patterns {
			if re.MatchString(message) {
				return rule, true
			}
		}
	}
	return keywordRule{}, false
}
