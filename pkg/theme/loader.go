/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package theme

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Resolve treats spec as a built-in theme name first, then as a path to a
// TOML theme file.
func Resolve(spec string) (Theme, error) {
	if th, err := Lookup(spec); err == nil {
		return th, nil
	}

	if _, err := os.Stat(spec); err != nil {
		return Theme{}, errors.Errorf("no built-in theme or theme file %q", spec)
	}

	return FromFile(spec)
}

// FromFile loads a theme from a TOML file of the form:
//
//	name = "mine"
//
//	[[rules]]
//	type = "keyword"
//	color = "#CC7832"
//	bold = true
//
// Rule order in the file is styling priority.
func FromFile(path string) (Theme, error) {
	var th Theme

	if _, err := toml.DecodeFile(path, &th); err != nil {
		return Theme{}, errors.Wrapf(err, "parsing theme file %s", path)
	}

	if len(th.Rules) == 0 {
		return Theme{}, errors.Errorf("theme file %s defines no rules", path)
	}

	return th, nil
}
