// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm normalizes short display names before they are stored.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Capitalize trims s, composes it to NFC and upper-cases its first rune.
// The rest of the string is left untouched, so "gitHub" becomes "GitHub".
func Capitalize(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// Length returns the number of user-perceived characters after NFC composition.
func Length(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
