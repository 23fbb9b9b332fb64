// Package census runs many patterns headlessly and summarizes how each one
// evolves: its population curve and, once the board repeats, its period.
package census

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"rect-lives/pkg/lives"
)

// Job describes one pattern run.
type Job struct {
	Name    string
	Pattern lives.Pattern
	Grid    lives.GridConfig
	Steps   int
}

// Result summarizes a finished job.
type Result struct {
	Name string
	Rule lives.Rule
	// Population holds the live count for generation 0 through the last
	// generation simulated.
	Population []int
	// Period is the cycle length once the board repeats, zero otherwise.
	Period int
	// Settled is the first generation of the cycle when Period is set.
	Settled int
	// Final is the last simulated generation in unpadded coordinates.
	Final lives.Pattern
	Grid  *lives.Grid
}

// Initial returns the starting population.
func (r Result) Initial() int { return r.Population[0] }

// Last returns the population of the final generation.
func (r Result) Last() int { return r.Population[len(r.Population)-1] }

// Generations returns how many generations were simulated.
func (r Result) Generations() int { return len(r.Population) - 1 }

// Simulate steps one job until Steps generations have run or the board
// repeats an earlier state, whichever comes first.
func Simulate(ctx context.Context, job Job) (Result, error) {
	g := lives.NewGrid(job.Pattern, job.Grid)
	res := Result{Name: job.Name, Rule: g.Rule(), Grid: g}

	var seen history
	record := func() bool {
		res.Population = append(res.Population, g.Population())
		cells := g.AliveCells()
		if first, ok := seen.visit(stateKey(cells), g.Generation(), cells); ok {
			res.Period = g.Generation() - first
			res.Settled = first
			return true
		}
		return false
	}

	if !record() {
		for gen := 0; gen < job.Steps; gen++ {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("census: %s: %w", job.Name, err)
			}
			g.Step()
			g.ClearQueues()
			if record() {
				break
			}
		}
	}
	res.Final = g.Snapshot()
	res.Final.Name = job.Name
	return res, nil
}

// stateKey hashes live cell coordinates.
func stateKey(cells []lives.Point) uint64 {
	h := fnv.New64a()
	var buf [16]byte
	for _, p := range cells {
		binary.LittleEndian.PutUint64(buf[:8], uint64(p.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(p.Y))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// history remembers every board state seen so far, bucketed by hash.
type history struct {
	states map[uint64][]state
}

type state struct {
	gen   int
	cells []lives.Point
}

// visit returns the generation of an earlier identical state. Otherwise it
// records cells as seen at gen. Hash collisions are resolved by comparing the
// cells themselves.
func (h *history) visit(key uint64, gen int, cells []lives.Point) (int, bool) {
	for _, st := range h.states[key] {
		if slices.Equal(st.cells, cells) {
			return st.gen, true
		}
	}
	if h.states == nil {
		h.states = map[uint64][]state{}
	}
	h.states[key] = append(h.states[key], state{gen: gen, cells: cells})
	return 0, false
}

// Run simulates every job on up to workers goroutines. Results keep the
// order of jobs. The first failure cancels the remaining jobs.
func Run(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, job := range jobs {
		eg.Go(func() error {
			res, err := Simulate(ctx, job)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
