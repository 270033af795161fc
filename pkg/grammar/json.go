/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package grammar

import (
	"github.com/dburkart/tint/pkg/tokenizer"
)

// JSON is the data-description grammar. Strings on the left-hand side of a
// ':' are object keys; the step pass marks them with an extra "index" tag
// so themes can style keys and values differently.
type JSON struct{}

func (g *JSON) Initialize(state *tokenizer.State) {
	state.Patterns = []tokenizer.Pattern{
		tokenizer.MustPattern("string", `"(\\.|[^"\\])*"`),
		tokenizer.MustPattern("number", `-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`),
		tokenizer.MustPattern("boolean", `\b(true|false)\b`),
		tokenizer.MustPattern("null", `\bnull\b`),
		tokenizer.MustPattern("assignment", `:`),
		tokenizer.MustPattern("punctuation", `[{}\[\],]`),
	}
}

func (g *JSON) Step(state *tokenizer.State) []*tokenizer.Token {
	batch := tokenizer.NextTokens(state)

	for i, tok := range batch {
		if !tok.HasType("assignment") {
			continue
		}
		// A string immediately before an assignment is an index key.
		prev := lookback(state, batch, i)
		if prev != nil && prev.HasType("string") {
			prev.AddType("index")
		}
	}

	return batch
}
