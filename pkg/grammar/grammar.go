/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package grammar holds the language-specific pattern tables and
// reclassification rules that plug into the tokenizer engine.
package grammar

import (
	"github.com/pkg/errors"

	"github.com/dburkart/tint/pkg/tokenizer"
)

// Lookup returns the grammar registered under name.
func Lookup(name string) (tokenizer.Grammar, error) {
	switch name {
	case "json":
		return &JSON{}, nil
	case "lua":
		return NewLua(), nil
	}
	return nil, errors.Errorf("unknown grammar %q", name)
}

// Names lists the registered grammar names, for completion and usage text.
func Names() []string {
	return []string{"json", "lua"}
}

// lookback returns the nearest non-whitespace token before batch[i],
// continuing into previously accumulated tokens when the batch is
// exhausted. Reclassification rules use it to reach across step
// boundaries.
func lookback(state *tokenizer.State, batch []*tokenizer.Token, i int) *tokenizer.Token {
	for j := i - 1; j >= 0; j-- {
		if !batch[j].HasType(tokenizer.TypeWhitespace) {
			return batch[j]
		}
	}
	for j := len(state.Tokens) - 1; j >= 0; j-- {
		if !state.Tokens[j].HasType(tokenizer.TypeWhitespace) {
			return state.Tokens[j]
		}
	}
	return nil
}
