// Package parallel provides the deterministic data-parallel fork/join
// discipline every cores-parameterized kernel in this module uses: a
// fixed-size worker pool processing disjoint index ranges, grounded on
// the pond.New(n, 0, pond.MinWorkers(n), pond.Context(ctx)) pattern used
// for fan-out in the teacher's cmd/main.go. cores is always an explicit
// argument, never a hidden global, per the concurrency model.
package parallel

import (
	"context"

	"github.com/alitto/pond"
)

// For runs fn(i) for i in [0, n) using cores workers. cores <= 1 runs
// inline without spinning up a pool, so the common single-threaded path
// carries no pool overhead. Each invocation of fn must touch only data at
// index i (or a disjoint slice keyed by i) so that the result is
// bit-identical regardless of cores.
func For(n, cores int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if cores <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	if cores > n {
		cores = n
	}

	pool := pond.New(cores, 0, pond.MinWorkers(cores), pond.Context(context.Background()))

	for i := 0; i < n; i++ {
		idx := i
		pool.Submit(func() {
			fn(idx)
		})
	}

	pool.StopAndWait()
}
