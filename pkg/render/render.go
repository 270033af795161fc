/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package render converts token sequences into styled output. The primary
// target is rich-text markup (font/i/b tags); an ANSI target renders the
// same themes on a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/dburkart/tint/pkg/theme"
	"github.com/dburkart/tint/pkg/tokenizer"
)

// Escaper rewrites token content so it can be embedded in the target
// markup. It is applied to content only, never to the styling wrappers.
type Escaper func(string) string

var richTextEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// EscapeRichText replaces the five markup-unsafe characters with their
// entity equivalents in a single pass, so already-written entities are
// never escaped twice.
func EscapeRichText(s string) string {
	return richTextEscaper.Replace(s)
}

// Render emits markup for tokens using an ordered rule list: the first rule
// whose type a token carries styles it. Tokens matching no rule pass
// through as escaped content with no wrapper at all. Wrappers nest with the
// color innermost, then italic, then bold.
func Render(tokens []*tokenizer.Token, rules []theme.Rule, escape Escaper) string {
	var b strings.Builder

	for _, tok := range tokens {
		content := escape(tok.Content)

		rule, ok := matchRule(tok, rules)
		if !ok {
			b.WriteString(content)
			continue
		}

		if rule.Color != "" {
			content = fmt.Sprintf("<font color=%q>%s</font>", rule.Color, content)
		}
		if rule.Italic {
			content = "<i>" + content + "</i>"
		}
		if rule.Bold {
			content = "<b>" + content + "</b>"
		}

		b.WriteString(content)
	}

	return b.String()
}

// RichText renders tokens with a theme as rich-text markup.
func RichText(tokens []*tokenizer.Token, th theme.Theme) string {
	return Render(tokens, th.Rules, EscapeRichText)
}

func matchRule(tok *tokenizer.Token, rules []theme.Rule) (theme.Rule, bool) {
	for _, rule := range rules {
		if tok.HasType(rule.Type) {
			return rule, true
		}
	}
	return theme.Rule{}, false
}
