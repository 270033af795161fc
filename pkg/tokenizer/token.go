/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

// Type tags reserved by the engine. Grammars may use any other string.
const (
	TypeWhitespace = "whitespace"
	TypeUnknown    = "unknown"
)

type Location struct {
	Start int
	End   int
}

// Token is a classified span of source text. Content is fixed at creation;
// type tags may be appended afterwards by grammar reclassification, but
// never removed.
type Token struct {
	Content  string
	Types    []string
	Location Location
}

func New(content string, types ...string) *Token {
	return &Token{
		Content: content,
		Types:   types,
	}
}

func (t *Token) HasType(tag string) bool {
	for _, v := range t.Types {
		if v == tag {
			return true
		}
	}
	return false
}

// AddType appends a tag, preserving insertion order. Adding a tag the token
// already carries is a no-op.
func (t *Token) AddType(tag string) {
	if t.HasType(tag) {
		return
	}
	t.Types = append(t.Types, tag)
}

// SameTypeSet reports whether two tokens carry identical tag sets, ignoring
// order and content. This is deliberately not Token equality: it exists only
// so the combiner can recognize adjacent same-class tokens as mergeable.
func SameTypeSet(a, b *Token) bool {
	if len(a.Types) != len(b.Types) {
		return false
	}
	for _, tag := range a.Types {
		if !b.HasType(tag) {
			return false
		}
	}
	return true
}
