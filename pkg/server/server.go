/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package server exposes the highlighter over HTTP: POST /render takes a
// JSON request and answers with rendered markup, and a separate port serves
// Prometheus metrics.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dburkart/tint/pkg/grammar"
	"github.com/dburkart/tint/pkg/render"
	"github.com/dburkart/tint/pkg/theme"
	"github.com/dburkart/tint/pkg/tokenizer"
)

// MaxSourceBytes caps request sizes. Tokenization work is linear in the
// input, so the cap is also the time bound for one request.
const MaxSourceBytes = 1 << 20

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore

	port        int
	metricsPort int
}

type RenderRequest struct {
	Grammar string `json:"grammar"`
	Theme   string `json:"theme"`
	Target  string `json:"target"`
	Source  string `json:"source"`
}

type RenderResponse struct {
	Markup string `json:"markup"`
	Tokens int    `json:"tokens"`
}

func New(log zerolog.Logger, port, metricsPort int) Server {
	return Server{
		log,
		NewMetricsStore(),
		port,
		metricsPort,
	}
}

func (s Server) ServeRender() {
	s.log.Info().Int("port", s.port).Msg("listening for render requests")

	err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Handler())
	if err != nil {
		s.log.Error().Err(err).Msg("error listening and serving")
	}
}

// Handler returns the render mux, split out so tests can drive it without
// binding a port.
func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", s.handleRender)
	return mux
}

func (s Server) ServeMetrics() {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	http.Handle("/metrics", s.metrics.Handler())
	http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), nil)
}

func (s Server) handleRender(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	log := s.log.With().Str("request", requestID).Logger()

	if r.Method != http.MethodPost {
		http.Error(w, "render requires POST", http.StatusMethodNotAllowed)
		return
	}

	var req RenderRequest
	body := http.MaxBytesReader(w, r.Body, MaxSourceBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("rejecting malformed request body")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	g, err := grammar.Lookup(req.Grammar)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Theme == "" {
		req.Theme = "dark"
	}
	th, err := theme.Lookup(req.Theme)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Target == "" {
		req.Target = "richtext"
	}

	start := time.Now()
	tokens := tokenizer.Combine(tokenizer.Tokenize(req.Source, g))

	var markup string
	switch req.Target {
	case "richtext":
		markup = render.RichText(tokens, th)
	case "ansi":
		markup = render.ANSI(tokens, th)
	default:
		http.Error(w, fmt.Sprintf("unknown target %q", req.Target), http.StatusBadRequest)
		return
	}

	elapsed := time.Since(start)
	s.metrics.IncRequests(req.Grammar, req.Target)
	s.metrics.ObserveRenderNS(req.Grammar, req.Target, elapsed.Nanoseconds())
	s.metrics.ObserveInputBytes(len(req.Source))

	log.Debug().
		Str("grammar", req.Grammar).
		Str("size", humanize.Bytes(uint64(len(req.Source)))).
		Int("tokens", len(tokens)).
		Dur("elapsed", elapsed).
		Msg("rendered")

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(RenderResponse{Markup: markup, Tokens: len(tokens)})
	if err != nil {
		log.Error().Err(err).Msg("unable to write response")
	}
}
