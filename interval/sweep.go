package interval

import (
	"cmp"
	"sort"
)

// Sweep operations.  Each requires its Set argument(s) to be sorted and
// fails with ErrUnsortedSet before producing any output.  Inputs are never
// mutated; results are new Sets or slices of derived records.

// Merge coalesces overlapping and touching records into their minimal
// disjoint cover, per chromosome.  The output is sorted and pairwise
// disjoint and covers exactly the input's positions.  Each output record is
// derived (via Update) from the first record of its run, so payload fields
// of that record survive.
func (s *Set[I, C, T]) Merge() (*Set[I, C, T], error) {
	var zero T
	return s.MergeWithin(zero)
}

// MergeWithin is Merge with a tolerance: records separated by a gap of at
// most dist are coalesced as if they touched.  dist must be non-negative.
func (s *Set[I, C, T]) MergeWithin(dist T) (*Set[I, C, T], error) {
	var zero T
	if dist < zero {
		return nil, ErrNegativeDistance
	}
	if !s.sorted {
		return nil, ErrUnsortedSet
	}
	out := &Set[I, C, T]{sorted: true}
	for _, run := range s.chromRuns() {
		out.records = append(out.records, mergeRun[I, C, T](s.records[run.lo:run.hi], dist)...)
	}
	return out, nil
}

// mergeRun sweeps one chromosome's sorted records with a running envelope.
func mergeRun[I Coordinates[I, C, T], C cmp.Ordered, T Position](records []I, dist T) []I {
	if len(records) == 0 {
		return nil
	}
	var out []I
	env := records[0]
	for _, rec := range records[1:] {
		if rec.Start() <= env.End()+dist {
			if rec.End() > env.End() {
				env = env.Update(env.Chrom(), env.Start(), rec.End())
			}
			continue
		}
		out = append(out, env)
		env = rec
	}
	return append(out, env)
}

// Intersect returns the intersection span of every overlapping pair drawn
// from s and other, one record per pair, in sorted order.  Output records
// are derived from the s-side record of each pair.
func (s *Set[I, C, T]) Intersect(other *Set[I, C, T]) ([]I, error) {
	if !s.sorted || !other.sorted {
		return nil, ErrUnsortedSet
	}
	var out []I
	for _, run := range s.chromRuns() {
		lo, hi := other.chromRange(s.records[run.lo].Chrom())
		out = append(out, intersectRun(s.records[run.lo:run.hi], other.records[lo:hi])...)
	}
	if !coordSorted[I, C, T](out) {
		// Pairs are emitted grouped by the s-side record; when s-records
		// overlap each other the groups can interleave.
		sortRecords[I, C, T](out)
	}
	return out, nil
}

// intersectRun emits intersection spans for one chromosome.  Both slices are
// sorted by start; j tracks the first b-record that could still overlap the
// current or any later a-record.
func intersectRun[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b []I) []I {
	var out []I
	j := 0
	for _, rec := range a {
		for j < len(b) && b[j].End() <= rec.Start() {
			j++
		}
		for k := j; k < len(b); k++ {
			if b[k].Start() >= rec.End() {
				break
			}
			if spansOverlap(rec.Start(), rec.End(), b[k].Start(), b[k].End()) {
				out = append(out, rec.Update(rec.Chrom(),
					max(rec.Start(), b[k].Start()), min(rec.End(), b[k].End())))
			}
		}
	}
	return out
}

// Subtract removes the positions covered by other from every record of s.
// Records of s untouched by other are emitted unchanged; fully covered
// records are dropped; clipped records yield their uncovered fragments.
// other is merged internally, so overlap among its records is harmless.
func (s *Set[I, C, T]) Subtract(other *Set[I, C, T]) (*Set[I, C, T], error) {
	if !s.sorted {
		return nil, ErrUnsortedSet
	}
	merged, err := other.Merge()
	if err != nil {
		return nil, err
	}
	out := &Set[I, C, T]{}
	for _, run := range s.chromRuns() {
		lo, hi := merged.chromRange(s.records[run.lo].Chrom())
		out.records = append(out.records,
			subtractRun(s.records[run.lo:run.hi], merged.records[lo:hi])...)
	}
	// Fragments of mutually overlapping s-records can interleave; otherwise
	// the output is already in order.
	out.sorted = coordSorted[I, C, T](out.records)
	if !out.sorted {
		out.Sort()
	}
	return out, nil
}

// subtractRun scans one chromosome, clipping each a-record against the
// disjoint sorted b-records left to right.
func subtractRun[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b []I) []I {
	var out []I
	j := 0
	for _, rec := range a {
		for j < len(b) && b[j].End() <= rec.Start() {
			j++
		}
		cur := rec.Start()
		clipped := false
		for k := j; k < len(b); k++ {
			bk := b[k]
			if bk.Start() >= rec.End() {
				break
			}
			if bk.End() <= cur || bk.Start() == bk.End() {
				continue
			}
			clipped = true
			if bk.Start() > cur {
				out = append(out, rec.Update(rec.Chrom(), cur, bk.Start()))
			}
			if bk.End() >= rec.End() {
				cur = rec.End()
				break
			}
			cur = bk.End()
		}
		if !clipped {
			out = append(out, rec)
		} else if cur < rec.End() {
			out = append(out, rec.Update(rec.Chrom(), cur, rec.End()))
		}
	}
	return out
}

// Complement returns the gaps between the merged records of s, per
// chromosome.  Nothing is emitted before the first or after the last record
// of a chromosome; see ComplementBounded for flanking gaps.
func (s *Set[I, C, T]) Complement() (*Set[I, C, T], error) {
	merged, err := s.Merge()
	if err != nil {
		return nil, err
	}
	out := &Set[I, C, T]{sorted: true}
	for i := 1; i < len(merged.records); i++ {
		prev, cur := merged.records[i-1], merged.records[i]
		if prev.Chrom() != cur.Chrom() {
			continue
		}
		if prev.End() < cur.Start() {
			out.records = append(out.records, prev.Update(prev.Chrom(), prev.End(), cur.Start()))
		}
	}
	return out, nil
}

// ComplementBounded is Complement extended to chromosome bounds: for every
// chromosome with an entry in sizes, the gap from position zero to the first
// record and from the last record to the chromosome size are included.  A
// chromosome present in sizes but absent from s is emitted whole, derived
// from an arbitrary record of s (an empty s therefore yields an empty
// complement).  Chromosomes in s without a size entry contribute their
// internal gaps only, exactly as in Complement.
func (s *Set[I, C, T]) ComplementBounded(sizes map[C]T) (*Set[I, C, T], error) {
	merged, err := s.Merge()
	if err != nil {
		return nil, err
	}
	out := &Set[I, C, T]{sorted: true}
	if len(s.records) == 0 {
		return out, nil
	}
	proto := s.records[0]
	var zero T

	runs := merged.chromRuns()
	covered := make(map[C]bool, len(runs))
	chroms := make([]C, 0, len(runs)+len(sizes))
	for _, run := range runs {
		chrom := merged.records[run.lo].Chrom()
		covered[chrom] = true
		chroms = append(chroms, chrom)
	}
	for chrom := range sizes {
		if !covered[chrom] {
			chroms = append(chroms, chrom)
		}
	}
	sortOrdered(chroms)

	for _, chrom := range chroms {
		size, bounded := sizes[chrom]
		if !covered[chrom] {
			if size > zero {
				out.records = append(out.records, proto.Update(chrom, zero, size))
			}
			continue
		}
		lo, hi := merged.chromRange(chrom)
		recs := merged.records[lo:hi]
		if bounded && recs[0].Start() > zero {
			out.records = append(out.records, proto.Update(chrom, zero, recs[0].Start()))
		}
		for i := 1; i < len(recs); i++ {
			if recs[i-1].End() < recs[i].Start() {
				out.records = append(out.records, proto.Update(chrom, recs[i-1].End(), recs[i].Start()))
			}
		}
		if last := recs[len(recs)-1]; bounded && last.End() < size {
			out.records = append(out.records, proto.Update(chrom, last.End(), size))
		}
	}
	return out, nil
}

// Closest returns the record of s nearest to query, where nearness is
// Distance: zero for overlap, gap size otherwise.  The search scans the
// query's chromosome run keeping the running minimum; at equal distance the
// smaller start wins.  Records are sorted by start only, so a record starting
// far before the query can still end nearest to it — a nested set forces the
// scan to consider every record up to the cutoff below.  ok is false when s
// holds no record on the query's chromosome — a normal outcome, not an error.
func (s *Set[I, C, T]) Closest(query I) (record I, ok bool, err error) {
	var zero I
	if !s.sorted {
		return zero, false, ErrUnsortedSet
	}
	lo, hi := s.chromRange(query.Chrom())
	best, haveBest := zero, false
	var bestDist T
	for i := lo; i < hi; i++ {
		rec := s.records[i]
		// Past the query's end, distance is rec.Start - query.End and grows
		// with start; stop once it can no longer beat the best.
		if haveBest && rec.Start() >= query.End() && rec.Start()-query.End() >= bestDist {
			break
		}
		d, derr := Distance[I, C, T](query, rec)
		if derr != nil {
			return zero, false, derr
		}
		if !haveBest || d < bestDist {
			best, bestDist, haveBest = rec, d, true
		}
	}
	return best, haveBest, nil
}

// ClosestUpstream is Closest restricted to records ordered at or before the
// query, i.e. records that do not sort after it.
func (s *Set[I, C, T]) ClosestUpstream(query I) (record I, ok bool, err error) {
	var zero I
	if !s.sorted {
		return zero, false, ErrUnsortedSet
	}
	lo, hi := s.chromRange(query.Chrom())
	best, haveBest := zero, false
	var bestDist T
	for i := lo; i < hi; i++ {
		rec := s.records[i]
		if CompareCoords[I, C, T](rec, query) > 0 {
			break
		}
		d, derr := Distance[I, C, T](query, rec)
		if derr != nil {
			return zero, false, derr
		}
		if !haveBest || d < bestDist {
			best, bestDist, haveBest = rec, d, true
		}
	}
	return best, haveBest, nil
}

// ClosestDownstream is Closest restricted to records starting at or after
// the query's start.
func (s *Set[I, C, T]) ClosestDownstream(query I) (record I, ok bool, err error) {
	var zero I
	if !s.sorted {
		return zero, false, ErrUnsortedSet
	}
	_, hi := s.chromRange(query.Chrom())
	ins := s.lowerBound(query.Chrom(), query.Start())
	if ins >= hi {
		return zero, false, nil
	}
	return s.records[ins], true, nil
}

func sortRecords[I Coordinates[I, C, T], C cmp.Ordered, T Position](records []I) {
	sort.SliceStable(records, func(i, j int) bool {
		return CompareCoords[I, C, T](records[i], records[j]) < 0
	})
}

func sortOrdered[C cmp.Ordered](vals []C) {
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
}
