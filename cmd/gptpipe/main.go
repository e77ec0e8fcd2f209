package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/gptpipe/gptpipe/internal/config"
	"github.com/gptpipe/gptpipe/internal/metrics"
	"github.com/gptpipe/gptpipe/internal/observability"
	"github.com/gptpipe/gptpipe/internal/pipeline"
	"github.com/gptpipe/gptpipe/internal/prompt"
	"github.com/gptpipe/gptpipe/internal/provider/openrouter"
	"github.com/gptpipe/gptpipe/internal/routing"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("gptpipe: ")

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TelemetryURL != "" {
		tp, err := observability.Setup(ctx, cfg.TelemetryURL, Version)
		if err != nil {
			return fmt.Errorf("failed to set up tracing: %w", err)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Printf("tracing shutdown: %v", err)
			}
		}()
	}

	tiers := routing.Tiers{Small: cfg.SmallModel, Large: cfg.LargeModel, Threshold: cfg.TokenThreshold}
	if cfg.ModelsPath != "" {
		if tiers, err = routing.LoadTiers(cfg.ModelsPath, tiers); err != nil {
			return fmt.Errorf("failed to load models: %w", err)
		}
	}
	router, err := routing.New(tiers)
	if err != nil {
		return fmt.Errorf("invalid model tiers: %w", err)
	}

	runner := &pipeline.Runner{
		Provider: openrouter.New(openrouter.Options{
			Endpoint: cfg.EndpointURL,
			Timeout:  cfg.Timeout,
			AppURL:   cfg.AppURL,
			AppTitle: cfg.AppTitle,
		}),
		Router:       router,
		APIKey:       cfg.APIKey,
		SystemPrompt: cfg.SystemPrompt,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Usage:        &metrics.Usage{},
	}
	runner.Highlight = highlighter()
	if cfg.Verbose {
		runner.Logger = log.New(os.Stderr, "gptpipe: ", log.Ltime)
	}

	instruction := prompt.JoinArgs(os.Args[1:])
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Waiting for input on stdin...")
	}

	if err := runner.Run(ctx, instruction, os.Stdin); err != nil {
		return err
	}
	if runner.Logger != nil {
		runner.Logger.Printf("estimate was off by %+d prompt tokens", runner.Usage.Overestimate())
	}
	return nil
}

// highlighter colors the answer green. color turns itself off when stdout
// is not a terminal or NO_COLOR is set.
func highlighter() func(string) string {
	green := color.New(color.FgGreen).SprintFunc()
	return func(s string) string { return green(s) }
}
