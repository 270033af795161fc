/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/tint/pkg/grammar"
	"github.com/dburkart/tint/pkg/render"
	"github.com/dburkart/tint/pkg/theme"
	"github.com/dburkart/tint/pkg/tokenizer"
)

var log zerolog.Logger

var (
	Command = &cobra.Command{
		Use:   "repl",
		Short: "Interactive prompt that highlights each line as you enter it",

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			g, err := grammar.Lookup(viper.GetString("tint.grammar"))
			if err != nil {
				log.Fatal().Err(err).Strs("available", grammar.Names()).Msg("unknown grammar")
			}

			th, err := theme.Resolve(viper.GetString("tint.theme"))
			if err != nil {
				log.Fatal().Err(err).Msg("unable to load theme")
			}

			readlinePrompt(g, th)
		},
	}
)

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Caller().
		Logger()
}

func grammarOptions() []readline.PrefixCompleterInterface {
	ret := []readline.PrefixCompleterInterface{}
	for _, name := range grammar.Names() {
		ret = append(ret, readline.PcItem(name))
	}
	return ret
}

func themeOptions() []readline.PrefixCompleterInterface {
	ret := []readline.PrefixCompleterInterface{}
	for _, name := range theme.Names() {
		ret = append(ret, readline.PcItem(name))
	}
	return ret
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(g tokenizer.Grammar, th theme.Theme) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("grammar", grammarOptions()...),
		readline.PcItem("theme", themeOptions()...),
		readline.PcItem("exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "HELP"):
			fmt.Println("usage:")
			fmt.Println(completer.Tree("    "))
			continue
		case strings.EqualFold(line, "EXIT"):
			os.Exit(0)
		case strings.HasPrefix(line, "grammar "):
			next, err := grammar.Lookup(strings.TrimSpace(line[8:]))
			if err != nil {
				log.Error().Err(err).Send()
				continue
			}
			g = next
			continue
		case strings.HasPrefix(line, "theme "):
			next, err := theme.Resolve(strings.TrimSpace(line[6:]))
			if err != nil {
				log.Error().Err(err).Send()
				continue
			}
			th = next
			continue
		}

		tokens := tokenizer.Combine(tokenizer.Tokenize(line, g))
		fmt.Println(render.ANSI(tokens, th))
	}
}
