package options

import (
	"context"
	"io"
	"log/slog"
	"os"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Verbose bool
	File    string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug detail.")
	cmd.PersistentFlags().StringVar(&o.File, "log-file", "",
		"Write JSON logs to this file. The interactive picker only logs to a file.")
}

// Context returns ctx carrying the configured logger. stderr receives text
// logs when no file is set; pass nil to discard them. The returned func
// closes the log file.
func (o *LogOptions) Context(ctx context.Context, stderr io.Writer) (context.Context, func() error, error) {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if o.File != "" {
		f, err := os.OpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return ctx, nil, err
		}
		return ctxlog.NewJSONLogger(ctx, f, opts), f.Close, nil
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return ctxlog.WithLogger(ctx, slog.New(slog.NewTextHandler(stderr, opts))), func() error { return nil }, nil
}
