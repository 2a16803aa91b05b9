package internal

import (
	"context"
	"io"

	"github.com/mpyw/cfnctl/internal/cli/output"
	"github.com/mpyw/cfnctl/internal/cli/pager"
	"github.com/mpyw/cfnctl/internal/paging"
)

// Invocation describes one executor run from a command's point of view.
type Invocation[Req, Resp any] struct {
	Operation paging.Operation[Req, Resp]
	Request   *Req
	// Selector is used when --select is not given.
	Selector paging.Selector[Req, Resp]
	// Columns are the text and table columns for the default selection.
	Columns []string
}

// Execute runs inv and renders its records to stdout.
//
// The selector is resolved before any remote call, so a bad --select never
// reaches the API. Error records are not rendered; the error is returned and
// printed once by main. In single-page mode a resume hint goes to stderr.
func Execute[Req, Resp any](
	ctx context.Context,
	stdout, stderr io.Writer,
	inv Invocation[Req, Resp],
	pg PagingOptions,
	out OutputOptions,
) error {
	selector, err := paging.ParseSelector(out.Select, inv.Selector)
	if err != nil {
		return err
	}

	w, err := NewRecordWriter(stderr, out, out.Select == "", inv.Columns)
	if err != nil {
		return err
	}

	opts := paging.Options[Req, Resp]{
		Mode:           paging.ModeFor(pg.NextToken, pg.NoAutoIteration),
		StartingCursor: pg.NextToken,
		Selector:       selector,
	}

	var next string

	err = pager.WithPagerWriter(stdout, out.NoPager, func(pw io.Writer) error {
		w.Out = pw

		runErr := paging.Run(ctx, inv.Operation, inv.Request, opts, Sink[Resp](w, &next))
		if flushErr := w.Flush(); runErr == nil {
			return flushErr
		}

		return runErr
	})
	if err != nil {
		return err
	}

	if opts.Mode == paging.ManualSinglePage {
		w.More(next)
	}

	return nil
}

// NewRecordWriter builds the writer for out. Output is attached later.
// defaultColumns applies only when the default selection is in effect and
// the format is columnar.
func NewRecordWriter(stderr io.Writer, out OutputOptions, defaultSelection bool, defaultColumns []string) (*output.RecordWriter, error) {
	w := &output.RecordWriter{
		Err:     stderr,
		Format:  out.Format,
		Columns: out.Columns,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if len(w.Columns) == 0 && defaultSelection && out.Format.Columnar() {
		w.Columns = defaultColumns
	}

	return w, nil
}

// Sink adapts w to the executor. It remembers the last continuation token in next.
func Sink[Resp any](w *output.RecordWriter, next *string) paging.Sink[Resp] {
	return paging.SinkFunc[Resp](func(_ context.Context, rec paging.Record[Resp]) error {
		if rec.Err != nil {
			return nil
		}

		*next = rec.Next

		return w.Write(rec.Value)
	})
}
