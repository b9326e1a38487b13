package interval

import "cmp"

// spansOverlap is the single encoding of the half-open overlap rule:
// [aStart, aEnd) and [bStart, bEnd) share at least one position iff
// aStart < bEnd && bStart < aEnd.  Touching boundaries ([10,20) vs [20,30))
// do not overlap, and a zero-length interval never overlaps itself.
// Every predicate and sweep in this package funnels through here.
func spansOverlap[T Position](aStart, aEnd, bStart, bEnd T) bool {
	return aStart < bEnd && bStart < aEnd
}

// Overlaps reports whether a and b are on the same chromosome and share at
// least one position.
func Overlaps[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) bool {
	return a.Chrom() == b.Chrom() &&
		spansOverlap(a.Start(), a.End(), b.Start(), b.End())
}

// StrandedOverlaps reports whether a and b overlap and lie on the same
// strand.
func StrandedOverlaps[I interface {
	Coordinates[I, C, T]
	Stranded
}, C cmp.Ordered, T Position](a, b I) bool {
	return a.Strand() == b.Strand() && Overlaps[I, C, T](a, b)
}

// Contains reports whether a wholly covers b (same chromosome,
// a.Start <= b.Start and a.End >= b.End).  Every interval contains itself.
func Contains[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) bool {
	return a.Chrom() == b.Chrom() &&
		a.Start() <= b.Start() && a.End() >= b.End()
}

// Borders reports whether a and b touch exactly at a boundary without
// overlapping: a.End == b.Start or b.End == a.Start on the same chromosome.
func Borders[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) bool {
	return a.Chrom() == b.Chrom() &&
		(a.End() == b.Start() || b.End() == a.Start())
}

// Distance returns the size of the gap between a and b: zero when they
// overlap or touch, otherwise the number of positions strictly between them.
// Fails with ErrChromMismatch across chromosomes; there is no meaningful
// inter-chromosome distance and returning zero would be misleading.
func Distance[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) (T, error) {
	var zero T
	if a.Chrom() != b.Chrom() {
		return zero, ErrChromMismatch
	}
	switch {
	case spansOverlap(a.Start(), a.End(), b.Start(), b.End()):
		return zero, nil
	case a.Start() >= b.End():
		return a.Start() - b.End(), nil
	default:
		return b.Start() - a.End(), nil
	}
}

// DirectedDistance is Distance plus orientation: before reports whether a
// lies before b.  Orientation is meaningless (and false) at distance zero.
func DirectedDistance[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) (dist T, before bool, err error) {
	if dist, err = Distance[I, C, T](a, b); err != nil || dist == 0 {
		return dist, false, err
	}
	return dist, a.End() <= b.Start(), nil
}

// OverlapSize returns the number of positions a and b share, and false when
// they do not overlap.
func OverlapSize[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) (T, bool) {
	var zero T
	if !Overlaps[I, C, T](a, b) {
		return zero, false
	}
	return min(a.End(), b.End()) - max(a.Start(), b.Start()), true
}

// Intersect returns the span shared by a and b,
// [max(starts), min(ends)), as a copy of a.  Fails with ErrChromMismatch or
// ErrNoOverlap when the span is undefined.
func Intersect[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) (I, error) {
	var zero I
	if a.Chrom() != b.Chrom() {
		return zero, ErrChromMismatch
	}
	if !spansOverlap(a.Start(), a.End(), b.Start(), b.End()) {
		return zero, ErrNoOverlap
	}
	return a.Update(a.Chrom(), max(a.Start(), b.Start()), min(a.End(), b.End())), nil
}

// Span returns the envelope of a and b, [min(starts), max(ends)), as a copy
// of a.  Unlike Intersect it is defined for disjoint intervals; it still
// fails with ErrChromMismatch across chromosomes.
func Span[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) (I, error) {
	var zero I
	if a.Chrom() != b.Chrom() {
		return zero, ErrChromMismatch
	}
	return a.Update(a.Chrom(), min(a.Start(), b.Start()), max(a.End(), b.End())), nil
}

// SubtractOne returns the fragments of a not covered by b, as copies of a:
// zero fragments when b covers a, one when b clips an edge (or misses
// entirely), two when b splits a.  Subtracting a zero-length interval
// removes no positions and returns a unchanged.
func SubtractOne[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) []I {
	if !Overlaps[I, C, T](a, b) || b.Start() == b.End() {
		return []I{a}
	}
	if b.Start() <= a.Start() && b.End() >= a.End() {
		return nil
	}
	var out []I
	if a.Start() < b.Start() {
		out = append(out, a.Update(a.Chrom(), a.Start(), b.Start()))
	}
	if b.End() < a.End() {
		out = append(out, a.Update(a.Chrom(), b.End(), a.End()))
	}
	return out
}
