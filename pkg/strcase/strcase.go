/*
 * Copyright (c) 2024-present Provgen authors
 */

// Package strcase converts identifiers between the snake_case used in schema
// documents and the UpperCamelCase used for generated type names.
package strcase

import (
	"strings"
	"unicode"
)

// UpperCamel converts a snake_case or mixed-case identifier to UpperCamelCase.
//
// Segments are split on underscores and on lower-to-upper case boundaries, so
// already-camel input passes through normalized: "foo_bar", "fooBar" and
// "FooBar" all yield "FooBar".
func UpperCamel(s string) string {
	var b strings.Builder
	for _, seg := range split(s) {
		r := []rune(seg)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// LowerCamel converts an identifier to lowerCamelCase.
func LowerCamel(s string) string {
	c := UpperCamel(s)
	if c == "" {
		return c
	}
	r := []rune(c)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// Snake converts an identifier to snake_case.
func Snake(s string) string {
	segs := split(s)
	for i, seg := range segs {
		segs[i] = strings.ToLower(seg)
	}
	return strings.Join(segs, "_")
}

// split breaks an identifier into its segments. Empty segments produced by
// doubled or trailing underscores are dropped.
func split(s string) []string {
	segs := make([]string, 0, 4)
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			segs = append(segs, cur.String())
			cur.Reset()
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
		prev = r
	}
	flush()
	return segs
}
