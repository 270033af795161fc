/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package render

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/tint/pkg/grammar"
	"github.com/dburkart/tint/pkg/render"
	"github.com/dburkart/tint/pkg/theme"
	"github.com/dburkart/tint/pkg/tokenizer"
)

var (
	Command = &cobra.Command{
		Use:   "render [file]",
		Short: "Highlight a file (or stdin) as styled markup",
		Args:  cobra.MaximumNArgs(1),

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			source, err := readSource(args)
			if err != nil {
				log.Fatal().Err(err).Msg("unable to read input")
			}

			g, err := grammar.Lookup(viper.GetString("tint.grammar"))
			if err != nil {
				log.Fatal().Err(err).Strs("available", grammar.Names()).Msg("unknown grammar")
			}

			th, err := theme.Resolve(viper.GetString("tint.theme"))
			if err != nil {
				log.Fatal().Err(err).Msg("unable to load theme")
			}

			tokens := tokenizer.Combine(tokenizer.Tokenize(source, g))

			var out string
			switch target := viper.GetString("tint.target"); target {
			case "richtext":
				out = render.RichText(tokens, th)
			case "ansi":
				out = render.ANSI(tokens, th)
			default:
				log.Fatal().Str("target", target).Msg("unknown render target")
			}

			fmt.Println(out)
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().String("target", "richtext", "Render target [richtext, ansi]")

	// Bind flags to viper
	viper.BindPFlag("tint.target", Command.Flags().Lookup("target"))
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}

	b, err := os.ReadFile(args[0])
	return string(b), err
}
