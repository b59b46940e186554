// Package key provides the CLI helper that prints the picker key bindings.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepicker/pkg/key"
)

// Key prints the key binding table.
type Key struct {
	Out io.Writer
}

// Do renders the bindings to Out, or stdout.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Keys"), bold.Sprint("Meaning"))
	for _, b := range key.Default() {
		meaning := b.Meaning
		if b.Hidden {
			meaning += " (while closed)"
		}
		tbl.AddRow(b.Display(), meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
