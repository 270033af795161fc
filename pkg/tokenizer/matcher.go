/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

// Match performs one matching step: it selects the winning pattern at or
// after cursor, tokenizes any skipped text in front of it, and returns the
// resulting tokens together with the advanced cursor.
//
// Selection is by declaration order, not by match position. The first
// pattern that matches anywhere in the remaining input wins, even if a
// later pattern matches closer to the cursor. Grammars are written against
// this skip-ahead behavior, so it must not be "fixed" to leftmost-match.
func Match(source string, cursor int, patterns []Pattern) ([]*Token, int) {
	if cursor >= len(source) {
		return nil, cursor
	}

	start, end, tag := findMatch(source, cursor, len(source), patterns)

	var tokens []*Token
	if start > cursor {
		tokens = tokenizeRange(source, cursor, start, patterns)
	}

	tok := New(source[start:end], tag)
	tok.Location = Location{Start: start, End: end}

	return append(tokens, tok), end
}

// findMatch returns the span and tag of the winning match in
// source[cursor:limit]. Zero-width matches cannot advance the cursor and
// are treated as non-matches; the anchored fallbacks make the result total
// for any cursor < limit.
func findMatch(source string, cursor, limit int, patterns []Pattern) (int, int, string) {
	window := source[cursor:limit]

	for _, p := range patterns {
		loc := p.re.FindStringIndex(window)
		if loc == nil || loc[0] == loc[1] {
			continue
		}
		return cursor + loc[0], cursor + loc[1], p.Type
	}

	if loc := whitespaceRun.FindStringIndex(window); loc != nil {
		return cursor, cursor + loc[1], TypeWhitespace
	}

	loc := anyCharacter.FindStringIndex(window)
	return cursor, cursor + loc[1], TypeUnknown
}

// pending is a winning match whose skipped-text prefix is still being
// tokenized. resume and limit restore the walk once the gap is exhausted.
type pending struct {
	tok    *Token
	resume int
	limit  int
}

// tokenizeRange tokenizes source[lo:hi] with the full pattern list. Each
// winning match inside the range may itself sit past more skipped text, so
// gaps nest; an explicit stack of pending matches keeps the walk iterative,
// bounding stack depth on adversarial input.
func tokenizeRange(source string, lo, hi int, patterns []Pattern) []*Token {
	var tokens []*Token
	var stack []pending

	cursor := lo
	for {
		for cursor < hi {
			start, end, tag := findMatch(source, cursor, hi, patterns)

			tok := New(source[start:end], tag)
			tok.Location = Location{Start: start, End: end}

			if start > cursor {
				// Descend into the gap; emit tok once it is done.
				stack = append(stack, pending{tok, end, hi})
				hi = start
				continue
			}

			tokens = append(tokens, tok)
			cursor = end
		}

		if len(stack) == 0 {
			break
		}

		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tokens = append(tokens, p.tok)
		cursor, hi = p.resume, p.limit
	}

	return tokens
}
