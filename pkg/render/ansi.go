/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package render

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/dburkart/tint/pkg/theme"
	"github.com/dburkart/tint/pkg/tokenizer"
)

// ANSI renders tokens for a terminal using the same theme rules as the
// rich-text target. Content needs no escaping here; a token matching no
// rule, or one whose rule has an unparseable color, passes through
// unstyled.
func ANSI(tokens []*tokenizer.Token, th theme.Theme) string {
	var b strings.Builder

	for _, tok := range tokens {
		rule, ok := matchRule(tok, th.Rules)
		if !ok {
			b.WriteString(tok.Content)
			continue
		}

		r, g, bl, ok := parseHexColor(rule.Color)
		if !ok {
			b.WriteString(tok.Content)
			continue
		}

		c := color.RGB(r, g, bl)
		if rule.Italic {
			c = c.Add(color.Italic)
		}
		if rule.Bold {
			c = c.Add(color.Bold)
		}

		b.WriteString(c.Sprint(tok.Content))
	}

	return b.String()
}

// parseHexColor decodes a "#RRGGBB" color.
func parseHexColor(s string) (int, int, int, bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}

	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), true
}
