/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokens

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/tint/pkg/grammar"
	"github.com/dburkart/tint/pkg/tokenizer"
)

var (
	Command = &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token table for a file (or stdin)",
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

			tokens := tokenizer.Tokenize(source, g)
			if viper.GetBool("tint.combine") {
				tokens = tokenizer.Combine(tokens)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Start", "End", "Types", "Content"})
			table.AppendBulk(rows(tokens))
			table.Render()

			log.Info().
				Str("input", humanize.Bytes(uint64(len(source)))).
				Str("tokens", humanize.Comma(int64(len(tokens)))).
				Msg("tokenized")
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().Bool("combine", false, "Combine adjacent same-class tokens before printing")

	// Bind flags to viper
	viper.BindPFlag("tint.combine", Command.Flags().Lookup("combine"))
}

func rows(tokens []*tokenizer.Token) [][]string {
	ret := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		ret = append(ret, []string{
			fmt.Sprint(tok.Location.Start),
			fmt.Sprint(tok.Location.End),
			strings.Join(tok.Types, "+"),
			fmt.Sprintf("%q", tok.Content),
		})
	}
	return ret
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}

	b, err := os.ReadFile(args[0])
	return string(b), err
}
