package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/config"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/store"
)

// env is what most commands need: the loaded config, the resolved picker
// settings and the store.
type env struct {
	ctx    context.Context
	done   func() error
	cfg    *config.Config
	picker picker.Config
	store  store.Persistence
}

func loadEnv(cmd *cobra.Command, po *options.PickerOptions, logs io.Writer) (*env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, done, err := lo.Context(ctx, logs)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		_ = done()
		return nil, err
	}
	opts := cfg.Options
	if po != nil {
		po.Apply(cmd, &opts)
	}
	pc, err := picker.Resolve(opts)
	if err != nil {
		_ = done()
		return nil, err
	}
	p, err := store.Open(cfg)
	if err != nil {
		_ = done()
		return nil, err
	}
	return &env{ctx: ctx, done: done, cfg: cfg, picker: pc, store: p}, nil
}

func (e *env) close() {
	_ = e.done()
}
