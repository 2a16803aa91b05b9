// Package paging drives CloudFormation operations through their continuation
// tokens and projects every page onto an output sink.
//
// A single invocation is synchronous: one call at a time, each call blocking
// before the next one starts. The request is built once by the caller; the
// executor only rewrites its cursor field between calls.
//
// Emission rules:
//   - ManualSinglePage performs exactly one call, whatever cursor comes back.
//   - AutoIterate keeps calling until the returned cursor is empty.
//   - A pass-through selector suppresses per-page emission; the loop runs
//     silently and a single record is emitted once it completes. That record
//     carries the cursor returned by the last call.
//   - A failed call emits one error record and ends the invocation.
package paging

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mpyw/cfnctl/internal/logging"
)

// Mode selects how continuation tokens are followed.
type Mode int

const (
	// AutoIterate follows continuation tokens until the results are exhausted.
	AutoIterate Mode = iota
	// ManualSinglePage fetches one page and leaves the returned token to the caller.
	ManualSinglePage
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ManualSinglePage:
		return "ManualSinglePage"
	default:
		return "AutoIterate"
	}
}

// ModeFor derives the paging mode from the caller's switches.
// Supplying a starting cursor or disabling auto-iteration selects ManualSinglePage.
func ModeFor(startingCursor string, noAutoIteration bool) Mode {
	if noAutoIteration || startingCursor != "" {
		return ManualSinglePage
	}

	return AutoIterate
}

// Operation binds one remote operation to the executor.
//
// SetCursor and Cursor are nil for operations that do not paginate; such
// operations are always called exactly once.
type Operation[Req, Resp any] struct {
	// Name identifies the operation in logs, e.g. "ListStacks".
	Name string
	// Call performs the remote request.
	Call func(ctx context.Context, req *Req) (*Resp, error)
	// SetCursor writes the continuation token into the request. A nil cursor requests the first page.
	SetCursor func(req *Req, cursor *string)
	// Cursor reads the continuation token from a response.
	Cursor func(resp *Resp) *string
	// RequestID optionally extracts the service request ID for diagnostics.
	RequestID func(resp *Resp) string
}

// Paginated reports whether the operation carries a continuation token.
func (o Operation[Req, Resp]) Paginated() bool {
	return o.SetCursor != nil && o.Cursor != nil
}

// Record is one unit of executor output.
// Exactly one of Err and (Value, Raw) is meaningful.
type Record[Resp any] struct {
	// Value is the projected result.
	Value any
	// Raw is the response the value was projected from. Nil for pass-through records.
	Raw *Resp
	// Next is the continuation token returned with Raw, empty on the last page.
	// Pass-through records carry the token returned by the final call.
	Next string
	// Err is set on the terminal error record.
	Err error
}

// Sink receives records in emission order.
type Sink[Resp any] interface {
	Emit(ctx context.Context, rec Record[Resp]) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc[Resp any] func(ctx context.Context, rec Record[Resp]) error

// Emit calls f.
func (f SinkFunc[Resp]) Emit(ctx context.Context, rec Record[Resp]) error {
	return f(ctx, rec)
}

// Options configures one invocation.
type Options[Req, Resp any] struct {
	Mode Mode
	// StartingCursor resumes from a specific page. Empty starts from the first page.
	StartingCursor string
	// Selector projects responses. The zero value selects the whole response.
	Selector Selector[Req, Resp]
}

// Run executes op with req and writes records to sink.
//
// The returned error is the same error carried by the terminal error record,
// so hosts can derive an exit status without inspecting the record stream.
// A sink failure stops the invocation and is returned as-is.
func Run[Req, Resp any](ctx context.Context, op Operation[Req, Resp], req *Req, opts Options[Req, Resp], sink Sink[Resp]) error {
	if op.Call == nil {
		return fmt.Errorf("%w: %q has no call function", ErrInvalidOperation, op.Name)
	}

	if req == nil {
		req = new(Req)
	}

	logger := logging.FromContext(ctx).With(
		zap.String("operation", op.Name),
		zap.Stringer("mode", opts.Mode),
	)

	// Decided once: pass-through and per-page emission never mix.
	passThrough := opts.Selector.PassThrough()
	paginated := op.Paginated()

	var cursor *string
	if opts.StartingCursor != "" {
		cursor = lo.ToPtr(opts.StartingCursor)
	}

	var last string

	for page := 1; ; page++ {
		if paginated {
			op.SetCursor(req, cursor)
		}

		resp, err := invoke(ctx, logger, op, req, page, cursor)
		if err != nil {
			return fail(ctx, logger, sink, err)
		}

		var next string
		if paginated {
			next = lo.FromPtr(op.Cursor(resp))
		}

		last = next

		if !passThrough {
			rec := Record[Resp]{
				Value: opts.Selector.Select(req, resp),
				Raw:   resp,
				Next:  next,
			}
			if err := sink.Emit(ctx, rec); err != nil {
				return err
			}
		}

		if !paginated || opts.Mode == ManualSinglePage || next == "" {
			break
		}

		cursor = lo.ToPtr(next)
	}

	if passThrough {
		return sink.Emit(ctx, Record[Resp]{Value: opts.Selector.Select(req, nil), Next: last})
	}

	return nil
}

func invoke[Req, Resp any](
	ctx context.Context,
	logger *zap.Logger,
	op Operation[Req, Resp],
	req *Req,
	page int,
	cursor *string,
) (*Resp, error) {
	// A cancelled invocation never starts another call.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("calling remote operation", zap.Int("page", page), zap.Stringp("cursor", cursor))

	resp, err := op.Call(ctx, req)
	if err != nil {
		return nil, enrich(err)
	}

	// Pages that arrive after cancellation are dropped.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoResponse, op.Name)
	}

	fields := []zap.Field{zap.Int("page", page)}
	if op.RequestID != nil {
		fields = append(fields, zap.String("request_id", op.RequestID(resp)))
	}

	if op.Paginated() {
		fields = append(fields, zap.Stringp("next", op.Cursor(resp)))
	}

	logger.Debug("received page", fields...)

	return resp, nil
}

func fail[Resp any](ctx context.Context, logger *zap.Logger, sink Sink[Resp], err error) error {
	logger.Debug("remote operation failed", zap.Error(err))

	if emitErr := sink.Emit(ctx, Record[Resp]{Err: err}); emitErr != nil {
		return errors.Join(err, emitErr)
	}

	return err
}

// Collector is a Sink that keeps every record in memory.
type Collector[Resp any] struct {
	Records []Record[Resp]
}

// Emit appends rec.
func (c *Collector[Resp]) Emit(_ context.Context, rec Record[Resp]) error {
	c.Records = append(c.Records, rec)

	return nil
}

// Values returns the projected values of all successful records.
func (c *Collector[Resp]) Values() []any {
	values := make([]any, 0, len(c.Records))
	for _, rec := range c.Records {
		if rec.Err == nil {
			values = append(values, rec.Value)
		}
	}

	return values
}
