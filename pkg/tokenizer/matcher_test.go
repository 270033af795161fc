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

func TestPriorityBeatsPosition(t *testing.T) {
	// "later" matches at position 5, "earlier" at position 1. The first
	// pattern in the table wins anyway; the text in front of it is emitted
	// as skipped content.
	patterns := []tokenizer.Pattern{
		tokenizer.MustPattern("later", `zz`),
		tokenizer.MustPattern("earlier", `ab`),
	}

	tokens, cursor := tokenizer.Match(" ab  zz", 0, patterns)

	if cursor != 7 {
		t.Error("wanted cursor 7, got", cursor)
	}

	last := tokens[len(tokens)-1]
	if !last.HasType("later") || last.Content != "zz" {
		t.Errorf("wanted winning token 'zz' as later, got %q %v", last.Content, last.Types)
	}

	// Skipped prefix " ab  " retokenized with the full table.
	wantContent := []string{" ", "ab", "  ", "zz"}
	wantType := []string{tokenizer.TypeWhitespace, "earlier", tokenizer.TypeWhitespace, "later"}

	if len(tokens) != len(wantContent) {
		t.Fatalf("wanted %d tokens, got %d", len(wantContent), len(tokens))
	}

	for i := range tokens {
		if tokens[i].Content != wantContent[i] {
			t.Errorf("token %d: wanted content %q, got %q", i, wantContent[i], tokens[i].Content)
		}
		if !tokens[i].HasType(wantType[i]) {
			t.Errorf("token %d: wanted type %q, got %v", i, wantType[i], tokens[i].Types)
		}
	}
}

func TestFallbacksGuaranteeProgress(t *testing.T) {
	// No grammar patterns at all: input degrades to whitespace runs and
	// single unknown characters.
	tokens, cursor := tokenizer.Match("@  ", 0, nil)

	if cursor != 1 {
		t.Error("wanted cursor 1, got", cursor)
	}

	if len(tokens) != 1 || tokens[0].Content != "@" || !tokens[0].HasType(tokenizer.TypeUnknown) {
		t.Errorf("wanted single unknown '@', got %v", tokens)
	}

	tokens, cursor = tokenizer.Match("@  ", 1, nil)
	if cursor != 3 {
		t.Error("wanted cursor 3, got", cursor)
	}

	if len(tokens) != 1 || tokens[0].Content != "  " || !tokens[0].HasType(tokenizer.TypeWhitespace) {
		t.Errorf("wanted whitespace run, got %v", tokens)
	}
}

func TestZeroWidthMatchesAreSkipped(t *testing.T) {
	// `b*` matches the empty string at the cursor. A zero-width match can
	// never advance, so the rule is passed over in favor of the next one.
	patterns := []tokenizer.Pattern{
		tokenizer.MustPattern("maybe", `b*`),
		tokenizer.MustPattern("letter", `a`),
	}

	tokens, cursor := tokenizer.Match("a", 0, patterns)

	if cursor != 1 {
		t.Error("wanted cursor 1, got", cursor)
	}

	if !tokens[0].HasType("letter") {
		t.Error("wanted 'letter' to win over the zero-width rule, got", tokens[0].Types)
	}
}

func TestNestedSkippedText(t *testing.T) {
	// The winner's gap contains a match for a lower-priority rule which in
	// turn sits past more unmatched text, so gaps nest.
	patterns := []tokenizer.Pattern{
		tokenizer.MustPattern("alpha", `zz`),
		tokenizer.MustPattern("beta", `yy`),
	}

	tokens, cursor := tokenizer.Match("-yy-zz", 0, patterns)

	if cursor != 6 {
		t.Error("wanted cursor 6, got", cursor)
	}

	var got string
	for _, tok := range tokens {
		got += tok.Content
	}
	if got != "-yy-zz" {
		t.Errorf("wanted full coverage of input, got %q", got)
	}

	wantType := []string{tokenizer.TypeUnknown, "beta", tokenizer.TypeUnknown, "alpha"}
	for i, tok := range tokens {
		if !tok.HasType(wantType[i]) {
			t.Errorf("token %d: wanted type %q, got %v", i, wantType[i], tok.Types)
		}
	}
}

func TestMatchRecordsLocations(t *testing.T) {
	patterns := []tokenizer.Pattern{
		tokenizer.MustPattern("word", `[a-z]+`),
	}

	tokens, _ := tokenizer.Match("  ab", 0, patterns)

	last := tokens[len(tokens)-1]
	if last.Location.Start != 2 || last.Location.End != 4 {
		t.Errorf("wanted location [2,4), got [%d,%d)", last.Location.Start, last.Location.End)
	}
}
