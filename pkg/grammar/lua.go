/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package grammar

import (
	"regexp"

	"github.com/dburkart/tint/pkg/tokenizer"
)

// Lua is the scripting grammar. Identifiers come out of the matcher tagged
// "var"; the step pass layers on "keyword", "nil", or "constant" without
// ever removing the base tag, so theme rule order decides what a reader
// actually sees.
type Lua struct {
	reserved map[string]struct{}
}

var allCaps = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

func NewLua() *Lua {
	g := &Lua{reserved: make(map[string]struct{})}
	for _, word := range []string{
		"and", "break", "do", "else", "elseif", "end", "false", "for",
		"function", "if", "in", "local", "nil", "not", "or", "repeat",
		"return", "then", "true", "until", "while",
	} {
		g.reserved[word] = struct{}{}
	}
	return g
}

func (g *Lua) Initialize(state *tokenizer.State) {
	state.Patterns = []tokenizer.Pattern{
		tokenizer.MustPattern("comment", `--\[\[(?s).*?\]\]|--[^\n]*`),
		tokenizer.MustPattern("string", `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`),
		tokenizer.MustPattern("number", `0[xX][0-9a-fA-F]+|\b[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?\b`),
		tokenizer.MustPattern("operator", `==|~=|<=|>=|\.\.\.?|[+\-*/%^#=<>]`),
		tokenizer.MustPattern("punctuation", `[(){}\[\];,.]`),
		tokenizer.MustPattern("var", `[A-Za-z_][A-Za-z0-9_]*`),
	}
}

func (g *Lua) Step(state *tokenizer.State) []*tokenizer.Token {
	batch := tokenizer.NextTokens(state)

	for _, tok := range batch {
		if !tok.HasType("var") {
			continue
		}

		switch {
		case tok.Content == "nil":
			// The null literal gets its own tag so themes can single
			// it out from the rest of the reserved words.
			tok.AddType("nil")
		case g.isReserved(tok.Content):
			tok.AddType("keyword")
		case allCaps.MatchString(tok.Content):
			tok.AddType("constant")
		}
	}

	return batch
}

func (g *Lua) isReserved(word string) bool {
	_, ok := g.reserved[word]
	return ok
}
