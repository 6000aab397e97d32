// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Group slugs are the page anchors of the link board (e.g. "dev-tools" for
// "Dev Tools"). Accents are folded, so "Café Links" becomes "cafe-links".
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength caps a slug; longer results are cut at the last separator.
const MaxLength = 80

// From converts s into a lowercase slug of [a-z0-9] runs joined by single
// hyphens. Characters with no ASCII base letter act as separators.
func From(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var builder strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			builder.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}

	return truncate(builder.String())
}

func truncate(result string) string {
	if len(result) <= MaxLength {
		return result
	}
	result = result[:MaxLength]
	if cut := strings.LastIndexByte(result, '-'); cut > 0 {
		result = result[:cut]
	}
	return strings.TrimRight(result, "-")
}

// FromOr is [From] with a fallback for input that reduces to nothing,
// such as a name written only in emoji.
func FromOr(s, fallback string) string {
	if result := From(s); result != "" {
		return result
	}
	return fallback
}
