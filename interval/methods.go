package interval

// Method forms of the pairwise relations for the record types shipped with
// this package.  Each is a trivial wrapper over the generic function of the
// same name; caller-defined record types use the functions directly.

func (i Interval[T]) Overlaps(o Interval[T]) bool {
	return Overlaps[Interval[T], int, T](i, o)
}
func (i Interval[T]) Contains(o Interval[T]) bool {
	return Contains[Interval[T], int, T](i, o)
}
func (i Interval[T]) Borders(o Interval[T]) bool {
	return Borders[Interval[T], int, T](i, o)
}
func (i Interval[T]) Distance(o Interval[T]) (T, error) {
	return Distance[Interval[T], int, T](i, o)
}
func (i Interval[T]) Intersect(o Interval[T]) (Interval[T], error) {
	return Intersect[Interval[T], int, T](i, o)
}
func (i Interval[T]) Span(o Interval[T]) (Interval[T], error) {
	return Span[Interval[T], int, T](i, o)
}

func (g GenomicInterval[C, T]) Overlaps(o GenomicInterval[C, T]) bool {
	return Overlaps[GenomicInterval[C, T], C, T](g, o)
}
func (g GenomicInterval[C, T]) Contains(o GenomicInterval[C, T]) bool {
	return Contains[GenomicInterval[C, T], C, T](g, o)
}
func (g GenomicInterval[C, T]) Borders(o GenomicInterval[C, T]) bool {
	return Borders[GenomicInterval[C, T], C, T](g, o)
}
func (g GenomicInterval[C, T]) Distance(o GenomicInterval[C, T]) (T, error) {
	return Distance[GenomicInterval[C, T], C, T](g, o)
}
func (g GenomicInterval[C, T]) Intersect(o GenomicInterval[C, T]) (GenomicInterval[C, T], error) {
	return Intersect[GenomicInterval[C, T], C, T](g, o)
}
func (g GenomicInterval[C, T]) Span(o GenomicInterval[C, T]) (GenomicInterval[C, T], error) {
	return Span[GenomicInterval[C, T], C, T](g, o)
}

func (s StrandedGenomicInterval[C, T]) Overlaps(o StrandedGenomicInterval[C, T]) bool {
	return Overlaps[StrandedGenomicInterval[C, T], C, T](s, o)
}

// StrandedOverlaps additionally requires matching strands.
func (s StrandedGenomicInterval[C, T]) StrandedOverlaps(o StrandedGenomicInterval[C, T]) bool {
	return StrandedOverlaps[StrandedGenomicInterval[C, T], C, T](s, o)
}
func (s StrandedGenomicInterval[C, T]) Contains(o StrandedGenomicInterval[C, T]) bool {
	return Contains[StrandedGenomicInterval[C, T], C, T](s, o)
}
func (s StrandedGenomicInterval[C, T]) Borders(o StrandedGenomicInterval[C, T]) bool {
	return Borders[StrandedGenomicInterval[C, T], C, T](s, o)
}
func (s StrandedGenomicInterval[C, T]) Distance(o StrandedGenomicInterval[C, T]) (T, error) {
	return Distance[StrandedGenomicInterval[C, T], C, T](s, o)
}
func (s StrandedGenomicInterval[C, T]) Intersect(o StrandedGenomicInterval[C, T]) (StrandedGenomicInterval[C, T], error) {
	return Intersect[StrandedGenomicInterval[C, T], C, T](s, o)
}
func (s StrandedGenomicInterval[C, T]) Span(o StrandedGenomicInterval[C, T]) (StrandedGenomicInterval[C, T], error) {
	return Span[StrandedGenomicInterval[C, T], C, T](s, o)
}
