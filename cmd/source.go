package cmd

import (
	"context"
	"fmt"
	"io"

	"seed-manager/core/config"
	"seed-manager/core/ingest"
	"seed-manager/core/ingest/builtin"
	"seed-manager/core/logger"
	"seed-manager/core/storage"

	"go.uber.org/zap"
)

// sourceFlags are shared by commands that read one source.
type sourceFlags struct {
	format string
	object bool
}

// app bundles what the one-shot commands need.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	loader *ingest.Loader
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &app{
		cfg:    cfg,
		logger: logg,
		loader: builtin.NewLoader(cfg.Ingest, logg),
	}, nil
}

// load reads source as the declared format. With object set, source is a key
// in the configured bucket; otherwise it is a local path. "-" reads stdin.
func (a *app) load(ctx context.Context, source string, flags sourceFlags, stdin io.Reader) (ingest.RecordSet, error) {
	format := ingest.ParseFormat(flags.format)
	if format == "" {
		format = ingest.FormatFromExtension(source)
	}

	var in ingest.Input
	switch {
	case flags.object:
		client, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			return nil, err
		}
		r, err := storage.ReadObject(ctx, client, a.cfg.Storage.Bucket, source)
		if err != nil {
			return nil, &ingest.Error{Kind: ingest.KindSourceUnreadable, Format: format, Source: source, Err: err}
		}
		in = ingest.FromReader(r)
	case source == "-":
		in = ingest.FromReader(stdin)
	default:
		in = ingest.FromPath(source)
	}

	a.logger.Debug("Loading source", zap.String("source", in.Name()), zap.String("format", format.String()))
	res, err := a.loader.Load(in, format)
	if err != nil {
		return nil, err
	}
	return res.RecordSet()
}
