package main

import (
	"strings"
	"unicode"
)

type Canonicalizer struct{}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{}
}

// Canonicalize makes cell ids and raw inputs case-insensitive: the surrounding
// whitespace is dropped and letters are upper-cased.
func (c *Canonicalizer) Canonicalize(s string) string {
	return strings.ToUpper(strings.TrimFunc(s, unicode.IsSpace))
}
