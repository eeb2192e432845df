package column

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	errs "github.com/23skdu/colfilter/internal/errors"
	"github.com/23skdu/colfilter/internal/filter"
	"github.com/23skdu/colfilter/internal/metrics"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Compactor applies row selections to Arrow arrays and records.
type Compactor struct {
	mem         memory.Allocator
	logger      zerolog.Logger
	concurrency int
}

// Option configures a Compactor.
type Option func(*Compactor)

// WithConcurrency bounds the number of columns compacted at once by Record.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(c *Compactor) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// NewCompactor creates a Compactor allocating output buffers from mem.
func NewCompactor(mem memory.Allocator, logger zerolog.Logger, opts ...Option) *Compactor {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	c := &Compactor{
		mem:         mem,
		logger:      logger.With().Str("component", "compactor").Logger(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Array returns a new array holding the rows of arr selected by sel.
// The caller owns the result and must Release it.
func (c *Compactor) Array(arr arrow.Array, sel []byte) (arrow.Array, error) {
	start := time.Now()
	out, err := c.compact(arr, sel)
	if err != nil {
		metrics.CompactErrorsTotal.WithLabelValues("array", errorLabel(err)).Inc()
		return nil, err
	}
	metrics.CompactDurationSeconds.WithLabelValues("array").Observe(time.Since(start).Seconds())
	return out, nil
}

// Record returns a new record holding the rows of rec selected by sel.
// Columns are compacted concurrently. The caller owns the result and must
// Release it.
func (c *Compactor) Record(ctx context.Context, rec arrow.Record, sel []byte) (arrow.Record, error) {
	start := time.Now()
	out, err := c.record(ctx, rec, sel)
	if err != nil {
		metrics.CompactErrorsTotal.WithLabelValues("record", errorLabel(err)).Inc()
		c.logger.Warn().Err(err).Int64("rows", rec.NumRows()).Msg("record compaction failed")
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.CompactDurationSeconds.WithLabelValues("record").Observe(elapsed.Seconds())
	c.logger.Debug().
		Int64("rows", rec.NumRows()).
		Int64("kept", out.NumRows()).
		Int64("columns", rec.NumCols()).
		Dur("elapsed", elapsed).
		Msg("compacted record")
	return out, nil
}

func (c *Compactor) record(ctx context.Context, rec arrow.Record, sel []byte) (arrow.Record, error) {
	n := int(rec.NumRows())
	if err := checkSelection(n, sel); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cols := make([]arrow.Array, rec.NumCols())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := range cols {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := c.compact(rec.Column(i), sel)
			if err != nil {
				var se *errs.StructuredError
				if errors.As(err, &se) {
					se.WithContext("column", rec.ColumnName(i))
				}
				return err
			}
			cols[i] = out
			return nil
		})
	}

	defer func() {
		for _, col := range cols {
			if col != nil {
				col.Release()
			}
		}
	}()
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return array.NewRecord(rec.Schema(), cols, int64(filter.SelectedCount(sel, n))), nil
}

func (c *Compactor) compact(arr arrow.Array, sel []byte) (arrow.Array, error) {
	n := arr.Len()
	if err := checkSelection(n, sel); err != nil {
		return nil, err
	}
	kept := filter.SelectedCount(sel, n)

	var valid []bool
	if arr.NullN() > 0 {
		valid = compactValidity(arr, sel, kept)
	}

	var out arrow.Array
	switch a := arr.(type) {
	case *array.Int8:
		out = build(array.NewInt8Builder(c.mem), compactValues(a.Int8Values(), sel, kept), valid)
	case *array.Int16:
		out = build(array.NewInt16Builder(c.mem), compactValues(a.Int16Values(), sel, kept), valid)
	case *array.Int32:
		out = build(array.NewInt32Builder(c.mem), compactValues(a.Int32Values(), sel, kept), valid)
	case *array.Int64:
		out = build(array.NewInt64Builder(c.mem), compactValues(a.Int64Values(), sel, kept), valid)
	case *array.Uint8:
		out = build(array.NewUint8Builder(c.mem), compactValues(a.Uint8Values(), sel, kept), valid)
	case *array.Uint16:
		out = build(array.NewUint16Builder(c.mem), compactValues(a.Uint16Values(), sel, kept), valid)
	case *array.Uint32:
		out = build(array.NewUint32Builder(c.mem), compactValues(a.Uint32Values(), sel, kept), valid)
	case *array.Uint64:
		out = build(array.NewUint64Builder(c.mem), compactValues(a.Uint64Values(), sel, kept), valid)
	case *array.Float32:
		out = build(array.NewFloat32Builder(c.mem), compactValues(a.Float32Values(), sel, kept), valid)
	case *array.Float64:
		out = build(array.NewFloat64Builder(c.mem), compactValues(a.Float64Values(), sel, kept), valid)
	case *array.Boolean:
		out = build(array.NewBooleanBuilder(c.mem), compactValues(materialize(n, a.Value), sel, kept), valid)
	case *array.String:
		out = build(array.NewStringBuilder(c.mem), compactValues(materialize(n, a.Value), sel, kept), valid)
	default:
		return nil, errs.NewValidationError("compact", fmt.Sprintf("unsupported column type %s", arr.DataType())).
			WithContext("type", arr.DataType().Name())
	}

	typ := arr.DataType().Name()
	metrics.CompactRowsScannedTotal.WithLabelValues(typ).Add(float64(n))
	metrics.CompactRowsSelectedTotal.WithLabelValues(typ).Add(float64(kept))
	return out, nil
}

func checkSelection(n int, sel []byte) error {
	if need := filter.BitmapBytes(n); len(sel) < need {
		return errs.NewValidationError("compact", "selection bitmap shorter than column").
			WithContext("rows", n).
			WithContext("selection_bytes", len(sel))
	}
	return nil
}

// compactValues returns the selected elements of values.
func compactValues[T any](values []T, sel []byte, kept int) []T {
	out := make([]T, kept)
	filter.Compact(out, values, sel)
	return out
}

// compactValidity returns the validity flags of the selected rows.
func compactValidity(arr arrow.Array, sel []byte, kept int) []bool {
	return compactValues(materialize(arr.Len(), arr.IsValid), sel, kept)
}

func materialize[T any](n int, at func(int) T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = at(i)
	}
	return out
}

type valuesBuilder[T any] interface {
	array.Builder
	AppendValues(v []T, valid []bool)
}

func build[T any, B valuesBuilder[T]](b B, values []T, valid []bool) arrow.Array {
	defer b.Release()
	b.AppendValues(values, valid)
	return b.NewArray()
}

func errorLabel(err error) string {
	var se *errs.StructuredError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.As(err, &se):
		return string(se.Type)
	default:
		return "unknown"
	}
}
