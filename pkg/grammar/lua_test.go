/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package grammar_test

import (
	"testing"

	"github.com/dburkart/tint/pkg/grammar"
	"github.com/dburkart/tint/pkg/tokenizer"
)

func TestLuaKeywordAndConstant(t *testing.T) {
	g := grammar.NewLua()

	tokens := tokenizer.Combine(tokenizer.Tokenize("local X_Y = 1", g))

	if len(tokens) != 7 {
		t.Fatal("wanted 7 tokens, got", len(tokens))
	}

	if tokens[0].Content != "local" || !tokens[0].HasType("keyword") {
		t.Errorf("wanted 'local' as keyword, got %q %v", tokens[0].Content, tokens[0].Types)
	}

	if tokens[2].Content != "X_Y" || !tokens[2].HasType("var") || !tokens[2].HasType("constant") {
		t.Errorf("wanted 'X_Y' as var+constant, got %q %v", tokens[2].Content, tokens[2].Types)
	}

	if tokens[4].Content != "=" || !tokens[4].HasType("operator") {
		t.Errorf("wanted '=' as operator, got %q %v", tokens[4].Content, tokens[4].Types)
	}

	if tokens[6].Content != "1" || !tokens[6].HasType("number") {
		t.Errorf("wanted '1' as number, got %q %v", tokens[6].Content, tokens[6].Types)
	}

	// Whitespace runs collapse to single separators.
	for _, i := range []int{1, 3, 5} {
		if !tokens[i].HasType(tokenizer.TypeWhitespace) {
			t.Errorf("token %d: wanted whitespace separator, got %v", i, tokens[i].Types)
		}
	}
}

func TestLuaNilGetsDedicatedTag(t *testing.T) {
	g := grammar.NewLua()

	tokens := tokenizer.Tokenize("x = nil", g)

	last := tokens[len(tokens)-1]
	if last.Content != "nil" || !last.HasType("nil") {
		t.Errorf("wanted 'nil' with its own tag, got %q %v", last.Content, last.Types)
	}

	if last.HasType("keyword") {
		t.Error("'nil' should be tagged nil, not keyword, got", last.Types)
	}
}

func TestLuaComments(t *testing.T) {
	g := grammar.NewLua()

	tokens := tokenizer.Tokenize("-- line comment\nx = 1", g)

	if tokens[0].Content != "-- line comment" || !tokens[0].HasType("comment") {
		t.Errorf("wanted line comment token, got %q %v", tokens[0].Content, tokens[0].Types)
	}

	tokens = tokenizer.Tokenize("--[[ multi\nline ]] y", g)

	if tokens[0].Content != "--[[ multi\nline ]]" || !tokens[0].HasType("comment") {
		t.Errorf("wanted block comment token, got %q %v", tokens[0].Content, tokens[0].Types)
	}
}

func TestLuaStrings(t *testing.T) {
	g := grammar.NewLua()

	tokens := tokenizer.Tokenize(`print('it', "works")`, g)

	var strs []string
	for _, tok := range tokens {
		if tok.HasType("string") {
			strs = append(strs, tok.Content)
		}
	}

	if len(strs) != 2 || strs[0] != "'it'" || strs[1] != `"works"` {
		t.Error("wanted both quote styles tokenized as strings, got", strs)
	}
}

func TestLuaOperators(t *testing.T) {
	g := grammar.NewLua()

	tokens := tokenizer.Tokenize(`a ~= b .. "c"`, g)

	var ops []string
	for _, tok := range tokens {
		if tok.HasType("operator") {
			ops = append(ops, tok.Content)
		}
	}

	if len(ops) != 2 || ops[0] != "~=" || ops[1] != ".." {
		t.Error("wanted operators [~= ..], got", ops)
	}
}

func TestLuaCoverage(t *testing.T) {
	input := "function F()\n  return BAR + 0x1F -- done\nend\n"

	tokens := tokenizer.Tokenize(input, grammar.NewLua())

	var got string
	for _, tok := range tokens {
		got += tok.Content
	}

	if got != input {
		t.Errorf("wanted concatenated content to equal input, got %q", got)
	}
}
