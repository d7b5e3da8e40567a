// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package validate provides pure syntax predicates for user input.
package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlRe   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
)

// Email reports whether s looks like a syntactically valid email address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// URL reports whether s looks like a syntactically valid http(s) URL.
func URL(s string) bool {
	return urlRe.MatchString(s)
}
