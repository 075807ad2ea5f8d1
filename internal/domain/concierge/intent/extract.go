package intent

import (
	"regexp"
	"strconv"
	"strings"
)

var categoryTokens = []struct {
	pattern  *regexp.Regexp
	category string
}{
	{regexp.MustCompile(`(?i)\brings?\b`), "ring"},
	{regexp.MustCompile(`(?i)\bnecklaces?\b`), "necklace"},
	{regexp.MustCompile(`(?i)\bpendants?\b`), "necklace"},
	{regexp.MustCompile(`(?i)\bbracelets?\b`), "bracelet"},
	{regexp.MustCompile(`(?i)\bbangles?\b`), "bracelet"},
	{regexp.MustCompile(`(?i)\bearrings?\b`), "earrings"},
	{regexp.MustCompile(`(?i)\bhoops?\b`), "earrings"},
	{regexp.MustCompile(`(?i)\bstuds?\b`), "earrings"},
	{regexp.MustCompile(`(?i)\bchains?\b`), "necklace"},
}

var metalTokens = []struct {
	pattern *regexp.Regexp
	metal   string
}{
	{regexp.MustCompile(`(?i)\brose gold\b`), "rose gold"},
	{regexp.MustCompile(`(?i)\bwhite gold\b`), "white gold"},
	{regexp.MustCompile(`(?i)\byellow gold\b`), "yellow gold"},
	{regexp.MustCompile(`(?i)\bgold\b`), "gold"},
	{regexp.MustCompile(`(?i)\bsilver\b`), "silver"},
	{regexp.MustCompile(`(?i)\bplatinum\b`), "platinum"},
}

var (
	readyToShipRe = regexp.MustCompile(`(?i)\b(?:ready[ -]to[ -]ship|in stock|ships? (?:now|today|fast)|quick shipping)\b`)
	madeToOrderRe = regexp.MustCompile(`(?i)\b(?:made[ -]to[ -]order|custom(?:ized|-made)?|bespoke)\b`)
	giftRe        = regexp.MustCompile(`(?i)\b(?:gifts?|present for|anniversary|birthday|for my (?:mom|mum|wife|husband|partner|girlfriend|boyfriend|sister|friend))\b`)

	priceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bunder \$?(\d+(?:\.\d+)?)\b`),
		regexp.MustCompile(`(?i)\bbelow \$?(\d+(?:\.\d+)?)\b`),
		regexp.MustCompile(`(?i)\bless than \$?(\d+(?:\.\d+)?)\b`),
		regexp.MustCompile(`(?i)\$?(\d+(?:\.\d+)?) or less\b`),
		regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?) (?:dollars|bucks)\b`),
		regexp.MustCompile(`(?i)\bbudget (?:of |is )?\$?(\d+(?:\.\d+)?)\b`),
	}

	// Generic product nouns that signal "keep shopping" without carrying any
	// concrete filter of their own.
	productCueRe = regexp.MustCompile(`(?i)\b(?:jewelry|jewellery|piece|pieces|style|styles|design|designs|ideas|something (?:nice|pretty|sparkly|special))\b`)
)

// extractFilterSignals pulls structured product criteria out of free text.
// It returns the raw map for the normalizer and whether any signal fired.
func extractFilterSignals(message string) (map[string]interface{}, bool) {
	raw := map[string]interface{}{}

	for _, tok := range categoryTokens {
		if tok.pattern.MatchString(message) {
			raw["category"] = tok.category
			break
		}
	}
	for _, tok := range metalTokens {
		if tok.pattern.MatchString(message) {
			raw["metal"] = tok.metal
			break
		}
	}

	// "made to order" negates a ready-to-ship mention in the same breath.
	if readyToShipRe.MatchString(message) && !madeToOrderRe.MatchString(message) {
		raw["readyToShip"] = true
	}

	for _, re := range priceRes {
		m := re.FindStringSubmatch(message)
		if len(m) < 2 {
			continue
		}
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			raw["priceLt"] = n
			break
		}
	}

	if giftRe.MatchString(message) {
		raw["tags"] = []string{"gift"}
	}

	return raw, len(raw) > 0
}

func hasProductCue(message string) bool {
	return productCueRe.MatchString(message)
}

var continuationRe = regexp.MustCompile(`(?i)\b(?:more|another|different|other|else|next)\b`)

func wantsMoreOptions(message string) bool {
	return continuationRe.MatchString(strings.ToLower(message))
}
