// SPDX-License-Identifier: MIT

package estim

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/sparseblock/sparse"
	"golang.org/x/sync/errgroup"
)

// faultHook, when set, runs at the start of every parallel task.
var faultHook func(group int) error

// rowsAsColumns presents the rows of a row-major block as columns.
type rowsAsColumns struct{ sparse.RowMajor }

func (t rowsAsColumns) Rows() int                        { return t.RowMajor.Cols() }
func (t rowsAsColumns) Cols() int                        { return t.RowMajor.Rows() }
func (t rowsAsColumns) Column(i int) ([]int, []float64) { return t.RowMajor.Row(i) }

// Estimator prices column groups of one source block.
type Estimator struct {
	src Source
	opt Options
}

// New prepares an estimator over src.
//
// Column-major sources are read in place. Other layouts are converted to CSC
// once. Under WithTransposed, row-major sources are read in place and others
// go through (*sparse.CSC).RowView.
//
// Errors: sparse.ErrNilBlock; conversion errors from package sparse.
func New(src sparse.Block, opts ...Option) (*Estimator, error) {
	if src == nil {
		return nil, fmt.Errorf("estim.New: %w", sparse.ErrNilBlock)
	}
	o := gatherOptions(opts...)

	var s Source
	switch b := src.(type) {
	case sparse.RowMajor:
		if o.transposed {
			s = rowsAsColumns{b}
			break
		}
		c, err := sparse.NewCSCFrom(b)
		if err != nil {
			return nil, fmt.Errorf("estim.New: %w", err)
		}
		s = c
	case *sparse.CSC:
		if o.transposed {
			s = rowsAsColumns{b.RowView()}
			break
		}
		s = b
	case sparse.ColumnMajor:
		if !o.transposed {
			s = b
			break
		}
		c, err := sparse.NewCSCFrom(b)
		if err != nil {
			return nil, fmt.Errorf("estim.New: %w", err)
		}
		s = rowsAsColumns{c.RowView()}
	default:
		return nil, fmt.Errorf("estim.New(%s): %w", src.Kind(), sparse.ErrUnsupportedLayout)
	}

	return &Estimator{src: s, opt: o}, nil
}

// NumRows and NumCols describe the (possibly transposed) source.
func (e *Estimator) NumRows() int { return e.src.Rows() }
func (e *Estimator) NumCols() int { return e.src.Cols() }

// EstimateGroup prices a single column group.
func (e *Estimator) EstimateGroup(cols []int) (GroupInfo, error) {
	if err := checkGroup(cols, e.src.Cols()); err != nil {
		return GroupInfo{}, fmt.Errorf("Estimator.EstimateGroup(%v): %w", cols, err)
	}
	info := e.estimate(cols)
	groupsEstimated.WithLabelValues(modeSequential).Inc()

	return info, nil
}

// EstimateAllColumns prices every column as one group.
func (e *Estimator) EstimateAllColumns() (GroupInfo, error) {
	cols := make([]int, e.src.Cols())
	for i := range cols {
		cols[i] = i
	}

	return e.EstimateGroup(cols)
}

// EstimateColumns prices each column on its own, using up to k workers.
// The result is indexed by column.
func (e *Estimator) EstimateColumns(k int) []GroupInfo {
	groups := make([][]int, e.src.Cols())
	for i := range groups {
		groups[i] = []int{i}
	}
	out, _ := e.EstimateGroups(groups, k)

	return out
}

// EstimateGroups prices each group, using up to k workers. out[i] belongs to
// groups[i].
//
// Errors: ErrBadGroup when any group is invalid, reported before any work
// starts. Worker faults are never returned.
func (e *Estimator) EstimateGroups(groups [][]int, k int) ([]GroupInfo, error) {
	for i, g := range groups {
		if err := checkGroup(g, e.src.Cols()); err != nil {
			return nil, fmt.Errorf("Estimator.EstimateGroups: group %d: %w", i, err)
		}
	}

	start := time.Now()
	if k > 1 && len(groups) > 1 {
		e.opt.logger.Debug("estim: dispatch", "mode", modeParallel, "groups", len(groups), "workers", k)
		out, err := e.parallel(groups, k)
		if err == nil {
			e.record(modeParallel, len(groups), start)
			return out, nil
		}
		fallbacks.Inc()
		e.opt.logger.Warn("estim: parallel batch failed, recomputing sequentially",
			"groups", len(groups), "workers", k, "err", err)
	} else {
		e.opt.logger.Debug("estim: dispatch", "mode", modeSequential, "groups", len(groups))
	}

	out := make([]GroupInfo, len(groups))
	for i, g := range groups {
		out[i] = e.estimate(g)
	}
	e.record(modeSequential, len(groups), start)

	return out, nil
}

func (e *Estimator) record(mode string, n int, start time.Time) {
	groupsEstimated.WithLabelValues(mode).Add(float64(n))
	batchDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

// parallel runs one task per group on at most k goroutines. The first
// failure cancels the tasks not yet started.
func (e *Estimator) parallel(groups [][]int, k int) ([]GroupInfo, error) {
	out := make([]GroupInfo, len(groups))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(k)
	for i := range groups {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: group %d: %v", ErrWorkerFault, i, r)
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}
			if faultHook != nil {
				if err := faultHook(i); err != nil {
					return err
				}
			}
			out[i] = e.estimate(groups[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (e *Estimator) estimate(cols []int) GroupInfo {
	return newGroupInfo(buildBitmap(e.src, cols), e.opt.valid)
}
