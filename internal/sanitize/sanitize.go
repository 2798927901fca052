// Package sanitize strips a few obviously dangerous patterns from free text
// before it is placed into generated messages or links.
//
// Text, Email, Phone and Address are a best-effort filter, not a security
// boundary. They only remove angle brackets, "javascript:" and inline event
// handler attributes such as "onclick=". Anything rendered into HTML must be
// escaped by a context-aware library; StrictHTML is the one used here.
package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsProtocol    = regexp.MustCompile(`(?i)javascript:`)
	eventHandler  = regexp.MustCompile(`(?i)on\w+=`)
	phoneAllowed  = regexp.MustCompile(`[^0-9+\-\s()]`)

	strictPolicy = bluemonday.StrictPolicy()
)

// strip repeats until nothing changes. Every pass that changes s makes it
// shorter, so the loop ends.
func strip(s string) string {
	for {
		next := angleBrackets.ReplaceAllString(s, "")
		next = jsProtocol.ReplaceAllString(next, "")
		next = eventHandler.ReplaceAllString(next, "")
		if next == s {
			return s
		}
		s = next
	}
}

// Text removes "<", ">", "javascript:" and "on<word>=" and trims the result.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strip(s))
}

// Email applies the Text rules and lower-cases the address.
func Email(s string) string {
	if s == "" {
		return ""
	}
	return Text(strings.ToLower(s))
}

// Phone keeps digits, "+", "-", whitespace and parentheses.
func Phone(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(phoneAllowed.ReplaceAllString(s, ""))
}

// Address applies the Text rules.
func Address(s string) string {
	return Text(s)
}

// StrictHTML drops every HTML element and attribute, keeping only plain text.
// Entities escaped by the policy are decoded again and the Text rules applied,
// so an encoded "&lt;script&gt;" cannot come back as markup.
func StrictHTML(s string) string {
	if s == "" {
		return ""
	}
	return Text(html.UnescapeString(strictPolicy.Sanitize(s)))
}
