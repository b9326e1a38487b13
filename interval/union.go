package interval

import (
	"cmp"
	"sort"
)

// This file represents a merged interval set as per-chromosome sorted
// endpoint sequences, and supports position queries and iteration against
// that representation.
//
// For example, given the intervals
//   [5, 15)
//   [7, 17)
//   [20, 25)
// the union is
//   [5, 17) U [20, 25)
// so the endpoint sequence is
//   {5, 17, 20, 25}.
// A position is covered iff the insertion index of pos+1 in that sequence is
// odd.  Note the "+1": it is what lines the binary search up with
// left-closed right-open intervals.
//
// Advantages of this representation over the record slices held by Set
// include cheaper containment queries and reuse of plain []T search
// routines; it is the natural shape for the "is this position covered"
// query that dominates downstream consumers.

// searchEndpoints returns the index of x in a[], or the position where x
// would be inserted if x isn't in a (this could be len(a)).  It's
// sort.SearchInts for any Position type.
func searchEndpoints[T Position](a []T, x T) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= x })
}

// expsearchEndpoints performs exponential search
// (https://en.wikipedia.org/wiki/Exponential_search ), checking a[idx], then
// a[idx + 1], then a[idx + 3], then a[idx + 7], etc., and finishing with
// binary search once it's either found an element larger than the target or
// hit the end of the slice.  It's usually a better choice than
// searchEndpoints when iterating over nondecreasing positions.
func expsearchEndpoints[T Position](a []T, x T, idx int) int {
	nextIncr := 1
	startIdx := idx
	endIdx := len(a)
	for idx < endIdx {
		if a[idx] >= x {
			endIdx = idx
			break
		}
		startIdx = idx + 1
		idx += nextIncr
		nextIncr *= 2
	}
	for startIdx < endIdx {
		midIdx := int(uint(startIdx+endIdx) >> 1)
		if a[midIdx] >= x {
			endIdx = midIdx
		} else {
			startIdx = midIdx + 1
		}
	}
	return startIdx
}

// Union is a chromosome-keyed position-membership index over the merged
// cover of a Set.  It caches per-chromosome search state, so runs of queries
// on one chromosome at nondecreasing positions degrade from O(log n) toward
// O(1) each.  The cache makes Union unsafe for concurrent use; Clone gives
// each goroutine its own search state over the shared endpoint arrays.
type Union[C cmp.Ordered, T Position] struct {
	// chromMap holds a sorted endpoint sequence per chromosome.
	chromMap map[C][]T
	// lastEndpoints points at the most recently queried chromosome's
	// endpoints; lastChrom is valid only when haveLast is set.
	lastEndpoints []T
	lastChrom     C
	haveLast      bool
	// lastPosPlus1/lastIdx cache the previous query while isSequential; a
	// backward query falls back to full binary search.
	lastPosPlus1 T
	lastIdx      int
	isSequential bool
}

// NewUnion builds a Union from the merged cover of s.  Zero-length records
// cover no positions and are dropped.  Fails with ErrUnsortedSet when s is
// unsorted.
func NewUnion[I Coordinates[I, C, T], C cmp.Ordered, T Position](s *Set[I, C, T]) (*Union[C, T], error) {
	merged, err := s.Merge()
	if err != nil {
		return nil, err
	}
	u := &Union[C, T]{chromMap: make(map[C][]T)}
	for _, rec := range merged.Records() {
		if rec.Start() == rec.End() {
			continue
		}
		u.chromMap[rec.Chrom()] = append(u.chromMap[rec.Chrom()], rec.Start(), rec.End())
	}
	return u, nil
}

// Contains reports whether position pos on chrom is covered.
func (u *Union[C, T]) Contains(chrom C, pos T) bool {
	posPlus1 := pos + 1
	if !u.haveLast || chrom != u.lastChrom {
		u.lastChrom = chrom
		u.haveLast = true
		u.lastEndpoints = u.chromMap[chrom]
		if u.lastEndpoints == nil {
			return false
		}
		u.lastIdx = searchEndpoints(u.lastEndpoints, posPlus1)
		u.lastPosPlus1 = posPlus1
		u.isSequential = true
		return u.lastIdx&1 == 1
	}
	if u.lastEndpoints == nil {
		return false
	}
	if u.isSequential {
		if posPlus1 >= u.lastPosPlus1 {
			u.lastIdx = expsearchEndpoints(u.lastEndpoints, posPlus1, u.lastIdx)
			u.lastPosPlus1 = posPlus1
			return u.lastIdx&1 == 1
		}
		u.isSequential = false
	}
	return searchEndpoints(u.lastEndpoints, posPlus1)&1 == 1
}

// Intersects reports whether any position in [start, end) on chrom is
// covered.  An empty range contains no positions and intersects nothing.
func (u *Union[C, T]) Intersects(chrom C, start, end T) bool {
	if end <= start {
		return false
	}
	endpoints := u.chromMap[chrom]
	if endpoints == nil {
		return false
	}
	idx := searchEndpoints(endpoints, start+1)
	if idx&1 == 1 {
		return true
	}
	return idx != len(endpoints) && endpoints[idx] < end
}

// Chroms returns the covered chromosomes in sorted order.
func (u *Union[C, T]) Chroms() []C {
	chroms := make([]C, 0, len(u.chromMap))
	for chrom := range u.chromMap {
		chroms = append(chroms, chrom)
	}
	sortOrdered(chroms)
	return chroms
}

// Endpoints returns chrom's endpoint sequence, or nil when chrom is not
// covered.  Callers must not mutate it.
func (u *Union[C, T]) Endpoints(chrom C) []T {
	return u.chromMap[chrom]
}

// Clone returns a Union sharing the endpoint arrays but with its own search
// state.
func (u *Union[C, T]) Clone() *Union[C, T] {
	return &Union[C, T]{chromMap: u.chromMap}
}

// UnionScanner supports iteration over one chromosome's covered positions.
// Invariant: pos is either contained in an interval, or the scanner is done.
type UnionScanner[T Position] struct {
	endpoints []T
	pos       T
	idx       int
	done      bool
}

// Scanner returns a UnionScanner over chrom, positioned at the first covered
// position.
func (u *Union[C, T]) Scanner(chrom C) *UnionScanner[T] {
	return NewUnionScanner(u.chromMap[chrom])
}

// NewUnionScanner returns a UnionScanner over a sorted endpoint sequence.
func NewUnionScanner[T Position](endpoints []T) *UnionScanner[T] {
	sc := &UnionScanner[T]{endpoints: endpoints}
	if len(endpoints) >= 1 {
		sc.pos = endpoints[0]
		sc.idx = 1
	} else {
		sc.done = true
	}
	return sc
}

// Scan is written so that the following loop iterates over all covered
// positions up to (and not including) limit:
//   for sc.Scan(&start, &end, limit) {
//     for pos := start; pos < end; pos++ {
//       // ...do stuff with pos...
//     }
//   }
// A later Scan call with a larger limit picks up where the previous one
// stopped.
func (sc *UnionScanner[T]) Scan(start, end *T, limit T) bool {
	if sc.done || sc.pos >= limit {
		return false
	}
	*start = sc.pos
	intervalEnd := sc.endpoints[sc.idx]
	if intervalEnd > limit {
		sc.pos = limit
		*end = limit
		return true
	}
	*end = intervalEnd
	sc.idx++
	if sc.idx >= len(sc.endpoints) {
		sc.done = true
	} else {
		sc.pos = sc.endpoints[sc.idx]
		sc.idx++
	}
	return true
}
