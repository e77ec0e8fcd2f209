// Package pipeline runs one question against piped input: estimate, route,
// build, send, extract, print.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel/codes"

	"github.com/gptpipe/gptpipe/internal/guardrails"
	"github.com/gptpipe/gptpipe/internal/metrics"
	"github.com/gptpipe/gptpipe/internal/observability"
	"github.com/gptpipe/gptpipe/internal/prompt"
	"github.com/gptpipe/gptpipe/internal/provider"
	"github.com/gptpipe/gptpipe/internal/routing"
	"github.com/gptpipe/gptpipe/internal/tokenizer"
)

// Runner holds everything one invocation needs.
type Runner struct {
	Provider     provider.Provider
	Router       *routing.Router
	APIKey       string
	SystemPrompt string

	// Stdout receives progress and the answer, Stderr the wait notices.
	Stdout io.Writer
	Stderr io.Writer
	// Highlight decorates the answer, e.g. with color. Nil prints it as is.
	Highlight func(string) string

	Usage  *metrics.Usage
	Logger *log.Logger
}

// Run reads all of stdin, asks instruction about it and prints the answer.
// On error nothing is written to Stdout after the failing step.
func (r *Runner) Run(ctx context.Context, instruction string, stdin io.Reader) (err error) {
	ctx, span := observability.Tracer().Start(ctx, "gptpipe.run")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if err := guardrails.CheckInput(data); err != nil {
		return err
	}
	input := string(data)

	estimate := tokenizer.Estimate(input)
	fmt.Fprintf(r.Stdout, "Received ~%d tokens as input.\n", estimate)

	decision := r.Router.Route(estimate)
	if decision.Large {
		fmt.Fprintf(r.Stdout, "Using large model %s (%d > %d)\n",
			decision.Model, estimate, r.Router.Tiers().Threshold)
	}
	span.SetAttributes(
		observability.Estimate(estimate),
		observability.Model(decision.Model),
		observability.LargeModel(decision.Large),
	)

	req := prompt.Build(input, instruction, decision.Model, r.SystemPrompt)

	fmt.Fprintln(r.Stderr, "Waiting for response...")
	raw, err := r.Provider.Send(ctx, &req, r.APIKey)
	if raw != nil {
		span.SetAttributes(observability.StatusCode(raw.StatusCode))
	}
	if err != nil {
		return err
	}

	resp, answer, err := provider.Extract(raw.Body)
	if err != nil {
		return err
	}
	if r.Usage != nil {
		r.Usage.Record(estimate, resp.Usage)
	}
	r.debugf("usage: prompt=%d completion=%d total=%d (estimated %d)",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens, estimate)

	if r.Highlight != nil {
		answer = r.Highlight(answer)
	}
	_, err = fmt.Fprintf(r.Stdout, "\n%s\n", answer)
	return err
}

func (r *Runner) debugf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
