/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

import (
	"regexp"

	"github.com/pkg/errors"
)

// Pattern pairs a type tag with the regular expression that recognizes it.
// A grammar declares its patterns in priority order; earlier entries win
// even when a later entry matches closer to the cursor.
type Pattern struct {
	Type string
	re   *regexp.Regexp
}

func NewPattern(tag, expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "compiling pattern for %q", tag)
	}
	return Pattern{Type: tag, re: re}, nil
}

// MustPattern is for grammar tables built from literals.
func MustPattern(tag, expr string) Pattern {
	p, err := NewPattern(tag, expr)
	if err != nil {
		panic(err)
	}
	return p
}

// The engine appends two implicit rules after every grammar table: a
// whitespace run and a single-character fallback, both anchored at the
// cursor. Together they guarantee forward progress, so a grammar with no
// patterns at all still terminates.
var (
	whitespaceRun = regexp.MustCompile(`^[ \t\r\n]+`)
	anyCharacter  = regexp.MustCompile(`(?s)^.`)
)
