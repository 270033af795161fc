/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer_test

import (
	"testing"

	"github.com/dburkart/tint/pkg/tokenizer"
)

// wordGrammar recognizes words and digit runs, nothing else.
type wordGrammar struct{}

func (g *wordGrammar) Initialize(state *tokenizer.State) {
	state.Patterns = []tokenizer.Pattern{
		tokenizer.MustPattern("word", `[a-zA-Z]+`),
		tokenizer.MustPattern("number", `[0-9]+`),
	}
}

func (g *wordGrammar) Step(state *tokenizer.State) []*tokenizer.Token {
	return tokenizer.NextTokens(state)
}

// emptyGrammar supplies no patterns at all.
type emptyGrammar struct{}

func (g *emptyGrammar) Initialize(state *tokenizer.State) {}

func (g *emptyGrammar) Step(state *tokenizer.State) []*tokenizer.Token {
	return tokenizer.NextTokens(state)
}

func TestTokenizeCoversInput(t *testing.T) {
	input := "abc 123 !? def56"

	tokens := tokenizer.Tokenize(input, &wordGrammar{})

	var got string
	for _, tok := range tokens {
		got += tok.Content
	}

	if got != input {
		t.Errorf("wanted concatenated content to equal input, got %q", got)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens := tokenizer.Tokenize("", &wordGrammar{})

	if len(tokens) != 0 {
		t.Error("wanted no tokens for empty input, got", len(tokens))
	}
}

func TestTokenizeWithoutPatternsDegrades(t *testing.T) {
	tokens := tokenizer.Tokenize("hi there", &emptyGrammar{})

	// Character-by-character unknowns with whitespace runs in between.
	wantContent := []string{"h", "i", " ", "t", "h", "e", "r", "e"}

	if len(tokens) != len(wantContent) {
		t.Fatalf("wanted %d tokens, got %d", len(wantContent), len(tokens))
	}

	for i, tok := range tokens {
		if tok.Content != wantContent[i] {
			t.Errorf("token %d: wanted %q, got %q", i, wantContent[i], tok.Content)
		}
	}
}

func TestTokenizeTerminatesOnAdversarialInput(t *testing.T) {
	// A pattern that never matches forces the fallback path: one step per
	// character, still bounded by the input length.
	input := "...................."

	tokens := tokenizer.Tokenize(input, &wordGrammar{})

	if len(tokens) != len(input) {
		t.Error("wanted one token per character, got", len(tokens))
	}
}
