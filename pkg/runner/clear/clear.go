// Package clear removes a saved selection.
package clear

import (
	"context"
	"errors"
	"io"

	"cloudeng.io/logging/ctxlog"

	"tableflip.dev/datepicker/pkg/printers"
	"tableflip.dev/datepicker/pkg/store"
)

type Clear struct {
	Persistence store.Persistence
	Name        string
	Out         io.Writer
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("can not clear, no persistence")
	}
	err := c.Persistence.Delete(c.Name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		ctxlog.Logger(ctx).Debug("nothing to clear", "name", c.Name)
	case err != nil:
		return err
	default:
		ctxlog.Logger(ctx).Info("selection cleared", "name", c.Name)
	}
	pp := printers.New(c.Out)
	pp.TitleWithCount(c.Name, 0)
	return nil
}
