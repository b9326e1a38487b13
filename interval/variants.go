package interval

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"
)

// Interval is an unmarked half-open range.  All Intervals report chromosome
// 0, so any two instances live in the same comparison domain.
type Interval[T Position] struct {
	start, end T
}

// NewInterval returns the interval [start, end).  start == end is a valid
// zero-length interval (an insertion site); start > end is rejected.
func NewInterval[T Position](start, end T) (Interval[T], error) {
	if start > end {
		return Interval[T]{}, errors.Wrapf(ErrInvalidInterval, "[%v, %v)", start, end)
	}
	return Interval[T]{start: start, end: end}, nil
}

func (i Interval[T]) Chrom() int { return 0 }
func (i Interval[T]) Start() T   { return i.start }
func (i Interval[T]) End() T     { return i.end }

// Update implements Coordinates.  The chromosome argument is ignored since
// unmarked intervals have none.
func (i Interval[T]) Update(_ int, start, end T) Interval[T] {
	return Interval[T]{start: start, end: end}
}

// SetChrom is a no-op; unmarked intervals have no chromosome.
func (i *Interval[T]) SetChrom(int)     {}
func (i *Interval[T]) SetStart(start T) { i.start = start }
func (i *Interval[T]) SetEnd(end T)     { i.end = end }

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v)", i.start, i.end)
}

// GenomicInterval is a chromosome-scoped half-open range, the Go shape of a
// BED3 record.
type GenomicInterval[C cmp.Ordered, T Position] struct {
	chrom      C
	start, end T
}

// NewGenomicInterval returns the interval [start, end) on chrom.  start > end
// is rejected.
func NewGenomicInterval[C cmp.Ordered, T Position](chrom C, start, end T) (GenomicInterval[C, T], error) {
	if start > end {
		return GenomicInterval[C, T]{}, errors.Wrapf(ErrInvalidInterval, "%v:[%v, %v)", chrom, start, end)
	}
	return GenomicInterval[C, T]{chrom: chrom, start: start, end: end}, nil
}

func (g GenomicInterval[C, T]) Chrom() C { return g.chrom }
func (g GenomicInterval[C, T]) Start() T { return g.start }
func (g GenomicInterval[C, T]) End() T   { return g.end }

// Update implements Coordinates.
func (g GenomicInterval[C, T]) Update(chrom C, start, end T) GenomicInterval[C, T] {
	return GenomicInterval[C, T]{chrom: chrom, start: start, end: end}
}

func (g *GenomicInterval[C, T]) SetChrom(chrom C) { g.chrom = chrom }
func (g *GenomicInterval[C, T]) SetStart(start T) { g.start = start }
func (g *GenomicInterval[C, T]) SetEnd(end T)     { g.end = end }

func (g GenomicInterval[C, T]) String() string {
	return fmt.Sprintf("%v:[%v, %v)", g.chrom, g.start, g.end)
}

// StrandedGenomicInterval is a GenomicInterval with strand orientation, the
// coordinate core of a BED6 record.  The strand does not participate in the
// sort key; it only partitions the stranded overlap predicates.
type StrandedGenomicInterval[C cmp.Ordered, T Position] struct {
	chrom      C
	start, end T
	strand     Strand
}

// NewStrandedGenomicInterval returns the stranded interval [start, end) on
// chrom.  start > end is rejected.
func NewStrandedGenomicInterval[C cmp.Ordered, T Position](chrom C, start, end T, strand Strand) (StrandedGenomicInterval[C, T], error) {
	if start > end {
		return StrandedGenomicInterval[C, T]{}, errors.Wrapf(ErrInvalidInterval, "%v:[%v, %v)", chrom, start, end)
	}
	return StrandedGenomicInterval[C, T]{chrom: chrom, start: start, end: end, strand: strand}, nil
}

func (s StrandedGenomicInterval[C, T]) Chrom() C       { return s.chrom }
func (s StrandedGenomicInterval[C, T]) Start() T       { return s.start }
func (s StrandedGenomicInterval[C, T]) End() T         { return s.end }
func (s StrandedGenomicInterval[C, T]) Strand() Strand { return s.strand }

// Update implements Coordinates; the receiver's strand is preserved.
func (s StrandedGenomicInterval[C, T]) Update(chrom C, start, end T) StrandedGenomicInterval[C, T] {
	return StrandedGenomicInterval[C, T]{chrom: chrom, start: start, end: end, strand: s.strand}
}

func (s *StrandedGenomicInterval[C, T]) SetChrom(chrom C)      { s.chrom = chrom }
func (s *StrandedGenomicInterval[C, T]) SetStart(start T)      { s.start = start }
func (s *StrandedGenomicInterval[C, T]) SetEnd(end T)          { s.end = end }
func (s *StrandedGenomicInterval[C, T]) SetStrand(strand Strand) { s.strand = strand }

func (s StrandedGenomicInterval[C, T]) String() string {
	return fmt.Sprintf("%v:[%v, %v)%v", s.chrom, s.start, s.end, s.strand)
}
