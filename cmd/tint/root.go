/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tint

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/tint/cmd/tint/render"
	"github.com/dburkart/tint/cmd/tint/repl"
	"github.com/dburkart/tint/cmd/tint/server"
	"github.com/dburkart/tint/cmd/tint/tokens"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "tint",
		Short: "Tint is a small, extensible syntax highlighter",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the tint config file (default ./config.toml)")
	rootCmd.PersistentFlags().StringP("grammar", "g", "lua", "Grammar used to tokenize input")
	rootCmd.PersistentFlags().StringP("theme", "t", "dark", "Theme name, or path to a TOML theme file")

	// Bind viper config to the root flags
	viper.BindPFlag("tint.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("tint.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("tint.grammar", rootCmd.PersistentFlags().Lookup("grammar"))
	viper.BindPFlag("tint.theme", rootCmd.PersistentFlags().Lookup("theme"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("tint version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	render.Command.Version = rootCmd.Version
	tokens.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	server.Command.Version = rootCmd.Version
	rootCmd.AddCommand(render.Command)
	rootCmd.AddCommand(tokens.Command)
	rootCmd.AddCommand(repl.Command)
	rootCmd.AddCommand(server.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
