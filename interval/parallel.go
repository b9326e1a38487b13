package interval

import (
	"runtime"

	"github.com/grailbio/base/traverse"
)

// Parallel sweep variants.  Every sweep in this package is chromosome-local,
// so a sorted Set partitions cleanly by chromosome: each worker owns a
// disjoint slice of records and no locks are needed.  Results are
// concatenated in chromosome order, so output is identical to the sequential
// form.  parallelism <= 0 means runtime.NumCPU().

// MergeParallel is Merge with per-chromosome fan-out.
func (s *Set[I, C, T]) MergeParallel(parallelism int) (*Set[I, C, T], error) {
	var zero T
	return s.MergeWithinParallel(zero, parallelism)
}

// MergeWithinParallel is MergeWithin with per-chromosome fan-out.
func (s *Set[I, C, T]) MergeWithinParallel(dist T, parallelism int) (*Set[I, C, T], error) {
	var zeroDist T
	if dist < zeroDist {
		return nil, ErrNegativeDistance
	}
	if !s.sorted {
		return nil, ErrUnsortedSet
	}
	runs := s.chromRuns()
	results := make([][]I, len(runs))
	err := eachRun(len(runs), parallelism, func(g int) error {
		results[g] = mergeRun[I, C, T](s.records[runs[g].lo:runs[g].hi], dist)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := &Set[I, C, T]{sorted: true}
	for _, recs := range results {
		out.records = append(out.records, recs...)
	}
	return out, nil
}

// IntersectParallel is Intersect with per-chromosome fan-out.
func (s *Set[I, C, T]) IntersectParallel(other *Set[I, C, T], parallelism int) ([]I, error) {
	if !s.sorted || !other.sorted {
		return nil, ErrUnsortedSet
	}
	runs := s.chromRuns()
	results := make([][]I, len(runs))
	err := eachRun(len(runs), parallelism, func(g int) error {
		lo, hi := other.chromRange(s.records[runs[g].lo].Chrom())
		results[g] = intersectRun(s.records[runs[g].lo:runs[g].hi], other.records[lo:hi])
		return nil
	})
	if err != nil {
		return nil, err
	}
	var out []I
	for _, recs := range results {
		out = append(out, recs...)
	}
	if !coordSorted[I, C, T](out) {
		sortRecords[I, C, T](out)
	}
	return out, nil
}

// eachRun fans nRuns work items out over min(parallelism, nRuns) jobs, each
// job owning a contiguous block of runs.
func eachRun(nRuns, parallelism int, op func(run int) error) error {
	if nRuns == 0 {
		return nil
	}
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > nRuns {
		parallelism = nRuns
	}
	return traverse.Each(parallelism, func(job int) error {
		lo := job * nRuns / parallelism
		hi := (job + 1) * nRuns / parallelism
		for g := lo; g < hi; g++ {
			if err := op(g); err != nil {
				return err
			}
		}
		return nil
	})
}
