// Package design owns the authored template side of share pages: the default
// design, the token substitution engine, and the optional value hardening
// policy.
package design

import (
	"strings"

	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/placeholder"
)

// Merge combines a stored design with a resolved token map into one complete
// standalone HTML document, CSS inlined in a <style> block.
//
// Replacement is literal, exact-string and token-by-token: every occurrence
// of a known token is substituted, map order is irrelevant since tokens never
// nest, and markers outside the map are left verbatim (treated as literal
// text, never an error). Values are not HTML-escaped here; hardening, when
// enabled, happens on the value map before this call.
func Merge(d model.TemplateDesign, tokens map[placeholder.Token]string) string {
	body := d.HTML
	for token, value := range tokens {
		body = strings.ReplaceAll(body, string(token), value)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n<style>\n")
	b.WriteString(d.CSS)
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>")
	return b.String()
}
