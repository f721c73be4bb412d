package ethinca

import (
	"context"
	"errors"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gwtools/record"
)

// Pair is one surviving pair from a ScanPairs run: indices into the two
// input slices and the metric value for the pair.
type Pair struct {
	A     int
	B     int
	Value float64
}

// ScanPairs computes the overlap statistic for every (a, b) pair and returns
// the coincident ones, ordered by (A, B). Rows deemed not coincident are
// skipped, any other failure aborts the scan.
//
// The scan partitions rowsA across worker goroutines. Rows are only read;
// the caller must not mutate them until ScanPairs returns.
func (c *Calculator) ScanPairs(ctx context.Context, rowsA, rowsB []*record.SnglInspiral) ([]Pair, error) {
	workers := c.scanWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(rowsA) {
		workers = len(rowsA)
	}
	if workers == 0 {
		return nil, nil
	}

	results := make([][]Pair, workers)

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(rowsA) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(rowsA))

		g.Go(func() error {
			var pairs []Pair
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for j, b := range rowsB {
					v, err := c.EThinca(rowsA[i], b)
					if errors.Is(err, ErrNotCoincident) {
						continue
					}
					if err != nil {
						return err
					}
					pairs = append(pairs, Pair{A: i, B: j, Value: v})
				}
			}
			results[w] = pairs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.LogScan(ctx, len(rowsA), len(rowsB), 0, err)
		return nil, err
	}

	var pairs []Pair
	for _, r := range results {
		pairs = append(pairs, r...)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	c.logger.LogScan(ctx, len(rowsA), len(rowsB), len(pairs), nil)
	return pairs, nil
}
