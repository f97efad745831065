// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/BeBeatrice/Parallel-Computing/internal/config"
	"github.com/BeBeatrice/Parallel-Computing/internal/logging"
	"github.com/BeBeatrice/Parallel-Computing/internal/telemetry"
	"github.com/BeBeatrice/Parallel-Computing/wavefront"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// app is the state shared by every subcommand once the root pre-run has
// resolved configuration, logging and tracing.
type app struct {
	out, errOut io.Writer

	configPath string
	cfg        config.Config
	log        *slog.Logger
	shutdown   func(context.Context) error
	span       trace.Span
}

// run executes the command line args. Tracing is flushed on every exit
// path, including a failing subcommand.
func run(ctx context.Context, args []string, out, errOut io.Writer) (err error) {
	a := &app{out: out, errOut: errOut, cfg: config.Default()}
	defer func() {
		if cerr := a.close(ctx, err); err == nil {
			err = cerr
		}
	}()

	root := newRootCmd(a)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "wavefront",
		Short:         "Parallel edit distance over anti-diagonal wavefronts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file (default ./"+config.DefaultPath+" if present)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: auto, text, json")
	pf.Bool("trace", false, "export OpenTelemetry spans to stderr")

	root.AddCommand(
		newRunCmd(a),
		newSeqCmd(a),
		newGenerateCmd(a),
		newHubCmd(a),
		newCoordinateCmd(a),
		newWorkerCmd(a),
	)

	return root
}

// setup loads the configuration, applies changed flags on top of it and
// builds the logger and tracer.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logging.New(cfg.LogLevel, cfg.LogFormat, a.errOut); err != nil {
		return err
	}
	slog.SetDefault(a.log)

	if a.shutdown, err = telemetry.Init(cmd.Context(), cfg.Tracing, a.errOut); err != nil {
		return err
	}

	ctx, span := otel.Tracer(telemetry.ServiceName).Start(cmd.Context(), "wavefront."+cmd.Name())
	a.span = span
	cmd.SetContext(ctx)

	return nil
}

// close ends the command span and flushes the tracer. cause is the error
// the command finished with, if any.
func (a *app) close(ctx context.Context, cause error) error {
	if a.span != nil {
		if cause != nil {
			a.span.RecordError(cause)
			a.span.SetStatus(codes.Error, "command failed")
		}
		a.span.End()
	}
	if a.shutdown == nil {
		return nil
	}

	return a.shutdown(context.WithoutCancel(ctx))
}

// applyFlags copies every flag the user set onto cfg. Flags are looked up by
// name so that subcommands only declare the ones they use.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	set := func(name string, apply func(string) error) error {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			return nil
		}
		if err := apply(f.Value.String()); err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}

		return nil
	}
	atoi := func(dst *int) func(string) error {
		return func(v string) (err error) { *dst, err = strconv.Atoi(v); return err }
	}
	str := func(dst *string) func(string) error {
		return func(v string) error { *dst = v; return nil }
	}

	steps := []struct {
		name  string
		apply func(string) error
	}{
		{"log-level", str(&cfg.LogLevel)},
		{"log-format", str(&cfg.LogFormat)},
		{"trace", func(v string) (err error) { cfg.Tracing, err = strconv.ParseBool(v); return err }},
		{"workers", atoi(&cfg.Workers)},
		{"threads", atoi(&cfg.LocalParallelism)},
		{"step-timeout", func(v string) (err error) { cfg.StepTimeout, err = time.ParseDuration(v); return err }},
		{"listen", str(&cfg.Hub.Listen)},
		{"hub", str(&cfg.Hub.URL)},
		{"alphabet", str(&cfg.Generator.Alphabet)},
		{"seed", func(v string) (err error) { cfg.Generator.Seed, err = strconv.ParseInt(v, 10, 64); return err }},
	}
	for _, s := range steps {
		if err := set(s.name, s.apply); err != nil {
			return err
		}
	}

	return nil
}

// engineOptions maps the configuration onto wavefront options.
func (a *app) engineOptions() []wavefront.Option {
	return []wavefront.Option{
		wavefront.WithLogger(a.log),
		wavefront.WithStepTimeout(a.cfg.StepTimeout),
		wavefront.WithLocalParallelism(a.cfg.LocalParallelism),
	}
}

// report prints the two result lines of a parallel run.
func (a *app) report(distance, workers int, elapsed time.Duration) {
	fmt.Fprintf(a.out, "Edit Distance: %d\n", distance)
	fmt.Fprintf(a.out, "Execution Time (%d processes): %s seconds\n", workers, seconds(elapsed))
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', 6, 64)
}
