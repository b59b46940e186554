// Package ui runs the interactive picker.
package ui

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/logging/ctxlog"

	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/store"
	"tableflip.dev/datepicker/pkg/tui/app"
)

type UI struct {
	Persistence store.Persistence
	Name        string
	Config      picker.Config
	Text        string
	ReadOnly    bool
	Inline      bool
	// Out receives the final field text once the program exits.
	Out io.Writer
}

func (u *UI) Do(ctx context.Context) error {
	m, err := app.Run(ctx, app.Options{
		Config:   u.Config,
		Text:     u.Text,
		ReadOnly: u.ReadOnly,
		Inline:   u.Inline,
		Store:    u.Persistence,
		Name:     u.Name,
		Logger:   ctxlog.Logger(ctx),
	})
	if err != nil {
		return err
	}
	if u.Out != nil && m != nil {
		_, _ = fmt.Fprintln(u.Out, m.Text())
	}
	return nil
}
