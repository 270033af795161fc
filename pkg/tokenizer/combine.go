/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

// Combine merges each maximal run of adjacent tokens carrying identical
// type-tag sets into a single token, concatenating content in order. The
// merged token takes the first token's tag list and spans the whole run.
// Input tokens are not modified.
//
// This is a run-length reduction, not a semantic merge: without it the
// matcher emits one token per character for tag-uniform spans such as
// whitespace or skipped-text runs.
func Combine(tokens []*Token) []*Token {
	var out []*Token

	for _, tok := range tokens {
		n := len(out)
		if n == 0 || !SameTypeSet(out[n-1], tok) {
			out = append(out, tok)
			continue
		}

		prev := out[n-1]
		out[n-1] = &Token{
			Content:  prev.Content + tok.Content,
			Types:    append([]string(nil), prev.Types...),
			Location: Location{Start: prev.Location.Start, End: tok.Location.End},
		}
	}

	return out
}
