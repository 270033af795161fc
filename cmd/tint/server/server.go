/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/tint/pkg/server"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "HTTP service for rendering highlighted markup",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		srv := server.New(
			logger,
			viper.GetInt("tint.port"),
			viper.GetInt("tint.prom-port"),
		)

		// Serve the render endpoint
		go srv.ServeRender()

		// Serve the metrics endpoint
		srv.ServeMetrics()
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8180, "Port to listen for render requests")
	Command.Flags().Int("prom-port", 2112, "Port to serve prometheus metrics on")

	// Bind flags to viper
	viper.BindPFlag("tint.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("tint.prom-port", Command.Flags().Lookup("prom-port"))
}
