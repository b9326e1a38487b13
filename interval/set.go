package interval

import (
	"cmp"
	"sort"
)

// Set is an ordered collection of interval records of a single concrete
// type.  It owns its records (value semantics; nothing is shared across Set
// boundaries) and tracks whether they are in (chromosome, start, end) order
// with an O(1) flag.  Sweep operations require the flag to be set and fail
// with ErrUnsortedSet otherwise: sorting is O(n log n) and deliberately a
// visible, caller-amortized step.
//
// The flag transitions are {unsorted} --Sort--> {sorted} --Insert/Extend-->
// {unsorted}.  The Set only knows about its own mutations; callers that
// modify records obtained through Records cannot rely on the flag.
//
// A Set is not internally synchronized.  Concurrent reads of a sorted Set
// are safe; any concurrent Sort, Insert, or Extend is not.
type Set[I Coordinates[I, C, T], C cmp.Ordered, T Position] struct {
	records []I
	sorted  bool
}

// NewSet returns a Set holding the given records, in unsorted state.  For
// the record types shipped with this package, prefer the NewIntervalSet /
// NewGenomicSet / NewStrandedSet helpers, which infer type parameters.
func NewSet[I Coordinates[I, C, T], C cmp.Ordered, T Position](records ...I) *Set[I, C, T] {
	s := &Set[I, C, T]{}
	s.records = append(s.records, records...)
	return s
}

// FromSorted returns a Set over records that the caller asserts are already
// in (chromosome, start, end) order.  The assertion is validated in one
// pass; out-of-order records fail with ErrUnsortedRecords.
func FromSorted[I Coordinates[I, C, T], C cmp.Ordered, T Position](records []I) (*Set[I, C, T], error) {
	if !coordSorted[I, C, T](records) {
		return nil, ErrUnsortedRecords
	}
	s := NewSet[I, C, T](records...)
	s.sorted = true
	return s, nil
}

// FromUnsorted returns a sorted Set over the given records.
func FromUnsorted[I Coordinates[I, C, T], C cmp.Ordered, T Position](records []I) *Set[I, C, T] {
	s := NewSet[I, C, T](records...)
	s.Sort()
	return s
}

// NewIntervalSet returns an unsorted Set of unmarked intervals.
func NewIntervalSet[T Position](records ...Interval[T]) *Set[Interval[T], int, T] {
	return NewSet[Interval[T], int, T](records...)
}

// NewGenomicSet returns an unsorted Set of genomic intervals.
func NewGenomicSet[C cmp.Ordered, T Position](records ...GenomicInterval[C, T]) *Set[GenomicInterval[C, T], C, T] {
	return NewSet[GenomicInterval[C, T], C, T](records...)
}

// NewStrandedSet returns an unsorted Set of stranded genomic intervals.
func NewStrandedSet[C cmp.Ordered, T Position](records ...StrandedGenomicInterval[C, T]) *Set[StrandedGenomicInterval[C, T], C, T] {
	return NewSet[StrandedGenomicInterval[C, T], C, T](records...)
}

// Insert appends one record and clears the sorted flag.
func (s *Set[I, C, T]) Insert(record I) {
	s.records = append(s.records, record)
	s.sorted = false
}

// Extend appends records and clears the sorted flag.
func (s *Set[I, C, T]) Extend(records ...I) {
	s.records = append(s.records, records...)
	s.sorted = false
}

// Sort establishes (chromosome, start, end) order and sets the sorted flag.
// The sort is stable: records comparing equal keep their insertion order.
func (s *Set[I, C, T]) Sort() {
	sort.SliceStable(s.records, func(i, j int) bool {
		return CompareCoords[I, C, T](s.records[i], s.records[j]) < 0
	})
	s.sorted = true
}

// IsSorted reads the sorted flag.  It does not re-scan the records.
func (s *Set[I, C, T]) IsSorted() bool { return s.sorted }

// Len returns the number of records.
func (s *Set[I, C, T]) Len() int { return len(s.records) }

// IsEmpty reports whether the Set holds no records.
func (s *Set[I, C, T]) IsEmpty() bool { return len(s.records) == 0 }

// At returns the record at index i.
func (s *Set[I, C, T]) At(i int) I { return s.records[i] }

// Records returns the Set's backing slice for read-only iteration.  Callers
// must not mutate it; the sorted flag cannot observe such changes.
func (s *Set[I, C, T]) Records() []I { return s.records }

// Find returns the records overlapping query, in sorted order.  Requires a
// sorted Set.
func (s *Set[I, C, T]) Find(query I) (*Set[I, C, T], error) {
	if !s.sorted {
		return nil, ErrUnsortedSet
	}
	out := &Set[I, C, T]{sorted: true}
	lo, hi := s.chromRange(query.Chrom())
	for i := lo; i < hi; i++ {
		rec := s.records[i]
		if rec.Start() >= query.End() {
			break
		}
		if spansOverlap(rec.Start(), rec.End(), query.Start(), query.End()) {
			out.records = append(out.records, rec)
		}
	}
	return out, nil
}

// lowerBound returns the index of the first record not ordered before
// (chrom, start), ignoring ends.  Requires a sorted Set.
func (s *Set[I, C, T]) lowerBound(chrom C, start T) int {
	return sort.Search(len(s.records), func(i int) bool {
		rec := s.records[i]
		if rec.Chrom() != chrom {
			return rec.Chrom() > chrom
		}
		return rec.Start() >= start
	})
}

// chromRange returns the half-open index range of records on chrom.
// Requires a sorted Set.
func (s *Set[I, C, T]) chromRange(chrom C) (int, int) {
	lo := sort.Search(len(s.records), func(i int) bool {
		return s.records[i].Chrom() >= chrom
	})
	hi := sort.Search(len(s.records), func(i int) bool {
		return s.records[i].Chrom() > chrom
	})
	return lo, hi
}

// indexRun is a half-open index range covering one chromosome's records.
type indexRun struct{ lo, hi int }

// chromRuns partitions a sorted Set's indices by chromosome, in chromosome
// order.
func (s *Set[I, C, T]) chromRuns() []indexRun {
	var runs []indexRun
	for lo := 0; lo < len(s.records); {
		hi := lo + 1
		for hi < len(s.records) && s.records[hi].Chrom() == s.records[lo].Chrom() {
			hi++
		}
		runs = append(runs, indexRun{lo: lo, hi: hi})
		lo = hi
	}
	return runs
}

func coordSorted[I Coordinates[I, C, T], C cmp.Ordered, T Position](records []I) bool {
	for i := 1; i < len(records); i++ {
		if CompareCoords[I, C, T](records[i-1], records[i]) > 0 {
			return false
		}
	}
	return true
}
