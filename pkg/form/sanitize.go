package form

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans raw input before it is stored.
type Sanitizer func(string) string

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// StripMarkup removes every HTML element from input while keeping its text.
// bluemonday escapes the surviving text, so entities are decoded afterwards
// to keep values such as "H&P" intact. It is lossy for plain text: a "<"
// followed by a letter opens a tag, so "BUN<Cr" becomes "BUN". Opt in only
// where values arrive as pasted HTML fragments.
func StripMarkup(raw string) string {
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	return html.UnescapeString(markupPolicy().Sanitize(raw))
}

// NoSanitize stores input untouched.
func NoSanitize(raw string) string { return raw }

func markupPolicy() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}
