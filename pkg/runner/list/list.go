// Package list prints every saved selection.
package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepicker/pkg/store"
)

type List struct {
	Persistence store.Persistence
	Out         io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Dates"), bold.Sprint("Updated"))
	for _, r := range l.Persistence.List(ctx) {
		tbl.AddRow(r.Name, strconv.Itoa(len(r.Dates)), r.Updated.Local().Format("2006-01-02 15:04"))
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
