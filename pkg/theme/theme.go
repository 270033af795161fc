/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package theme maps token types to styling. A theme is an ordered rule
// list: at render time the first rule whose type a token carries wins, so
// rule order is the tie-break for tokens with several tags.
package theme

import (
	"github.com/pkg/errors"
)

type Rule struct {
	Type   string `toml:"type"`
	Color  string `toml:"color"`
	Bold   bool   `toml:"bold"`
	Italic bool   `toml:"italic"`
}

type Theme struct {
	Name  string `toml:"name"`
	Rules []Rule `toml:"rules"`
}

// Lookup returns a built-in theme by name.
func Lookup(name string) (Theme, error) {
	switch name {
	case "dark":
		return Dark(), nil
	case "light":
		return Light(), nil
	}
	return Theme{}, errors.Errorf("unknown theme %q", name)
}

// Names lists the built-in theme names.
func Names() []string {
	return []string{"dark", "light"}
}

// Dark is the default theme. The index rule sits above string so object
// keys read differently from string values.
func Dark() Theme {
	return Theme{
		Name: "dark",
		Rules: []Rule{
			{Type: "comment", Color: "#808080", Italic: true},
			{Type: "keyword", Color: "#CC7832", Bold: true},
			{Type: "nil", Color: "#CC7832", Italic: true},
			{Type: "boolean", Color: "#CC7832"},
			{Type: "null", Color: "#CC7832", Italic: true},
			{Type: "index", Color: "#9876AA"},
			{Type: "string", Color: "#6A8759"},
			{Type: "number", Color: "#6897BB"},
			{Type: "constant", Color: "#9876AA", Bold: true},
			{Type: "operator", Color: "#A9B7C6"},
			{Type: "assignment", Color: "#A9B7C6"},
			{Type: "punctuation", Color: "#A9B7C6"},
		},
	}
}

func Light() Theme {
	return Theme{
		Name: "light",
		Rules: []Rule{
			{Type: "comment", Color: "#8C8C8C", Italic: true},
			{Type: "keyword", Color: "#0033B3", Bold: true},
			{Type: "nil", Color: "#0033B3", Italic: true},
			{Type: "boolean", Color: "#0033B3"},
			{Type: "null", Color: "#0033B3", Italic: true},
			{Type: "index", Color: "#871094"},
			{Type: "string", Color: "#067D17"},
			{Type: "number", Color: "#1750EB"},
			{Type: "constant", Color: "#871094", Bold: true},
			{Type: "operator", Color: "#000000"},
			{Type: "assignment", Color: "#000000"},
			{Type: "punctuation", Color: "#000000"},
		},
	}
}
