package design

import (
	"github.com/givebridge/sharepage/internal/placeholder"
	"github.com/microcosm-cc/bluemonday"
)

// ValueSanitizer is the opt-in hardening policy: it strips script-capable
// markup from resolved scalar values before they are merged into authored
// HTML. Substitution itself stays non-escaping either way, so enabling the
// sanitizer only changes output for values that carried active markup.
type ValueSanitizer struct {
	policy *bluemonday.Policy
}

// NewValueSanitizer builds a sanitizer around bluemonday's UGC policy, which
// keeps harmless formatting tags and drops scripts and event handlers.
func NewValueSanitizer() *ValueSanitizer {
	return &ValueSanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize returns a copy of the token map with every profile-derived value
// run through the policy. The campaigns block is system-generated with known
// inline-styled markup and passes through untouched; UGC rules would strip
// its style attributes.
func (s *ValueSanitizer) Sanitize(tokens map[placeholder.Token]string) map[placeholder.Token]string {
	out := make(map[placeholder.Token]string, len(tokens))
	for token, value := range tokens {
		if token == placeholder.TokenCampaignsHTML {
			out[token] = value
			continue
		}
		out[token] = s.policy.Sanitize(value)
	}
	return out
}
