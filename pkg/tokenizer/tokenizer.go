/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package tokenizer turns raw source text into a sequence of typed tokens
// using a priority-ordered pattern cascade. Grammars plug in an ordered
// pattern table and optional per-step reclassification; the engine supplies
// the matching, skipped-text handling, and run-length combination.
//
// It classifies contiguous runs of text and nothing more: no tree is built,
// no grammar correctness is checked, and no syntax errors are reported.
package tokenizer

// State is the transient lexer state owned by a single Tokenize call.
type State struct {
	Source   string
	Cursor   int
	Tokens   []*Token
	Patterns []Pattern
}

// Grammar is the pluggable unit: Initialize populates the pattern table on
// the state, Step produces the next batch of tokens. A Step implementation
// normally calls NextTokens and then reclassifies tokens in the batch (or
// earlier tokens, by lookback through state.Tokens) before returning it.
type Grammar interface {
	Initialize(state *State)
	Step(state *State) []*Token
}

// NextTokens runs one matching step against the state's pattern table and
// advances the cursor. Every call makes strict forward progress.
func NextTokens(state *State) []*Token {
	tokens, cursor := Match(state.Source, state.Cursor, state.Patterns)
	state.Cursor = cursor
	return tokens
}

// Tokenize drives the grammar to exhaustion over source. Concatenating the
// contents of the returned tokens reconstructs source exactly.
func Tokenize(source string, grammar Grammar) []*Token {
	state := &State{Source: source}
	grammar.Initialize(state)

	for state.Cursor < len(state.Source) {
		batch := grammar.Step(state)
		state.Tokens = append(state.Tokens, batch...)
	}

	return state.Tokens
}
