package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstrace/internal/config"
	"github.com/katalvlaran/mstrace/internal/logging"
	"github.com/katalvlaran/mstrace/internal/observability"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	tracer *observability.TracerProvider

	// initTracing builds the tracer provider; tests swap in an in-memory exporter.
	initTracing func(context.Context, *observability.TracingConfig) (*observability.TracerProvider, error)
}

// newRootCmd builds the command tree. Run it with app.execute so tracing is
// shut down whatever the command returns.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{initTracing: observability.InitTracing}

	root := &cobra.Command{
		Use:   "mstrace",
		Short: "Kruskal minimum spanning trees with a replayable step trace",
		Long: "mstrace sorts the edges of a weighted undirected graph, runs Kruskal's algorithm\n" +
			"over a union-find structure and reports every accept/reject decision.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file path (YAML); MSTRACE_* env vars override")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newReplayCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newGenCmd(a))

	return root, a
}

// execute runs root and then flushes tracing. cobra skips post-run hooks
// when a command fails, and those are the spans carrying the error.
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()

	return errors.Join(err, a.teardown())
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, warnings, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())
	log := logging.New("config")
	for _, w := range warnings {
		log.Warn(w)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tp, err := a.initTracing(ctx, &observability.TracingConfig{
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
		OTLPEndpoint:   cfg.Tracing.OTLPEndpoint,
		SampleRate:     cfg.Tracing.SampleRate,
	})
	if err != nil {
		return err
	}
	a.cfg, a.tracer = cfg, tp

	return nil
}

func (a *app) teardown() error {
	if a.tracer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tp := a.tracer
	a.tracer = nil

	return tp.Shutdown(ctx)
}
