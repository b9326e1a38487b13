package interval

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedGenomicSet(t *testing.T, ivs ...GenomicInterval[string, int]) *Set[GenomicInterval[string, int], string, int] {
	t.Helper()
	set := NewGenomicSet(ivs...)
	set.Sort()
	return set
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []GenomicInterval[string, int]
		want []GenomicInterval[string, int]
	}{
		{
			"overlapping run",
			[]GenomicInterval[string, int]{
				gi(t, "chr1", 10, 20), gi(t, "chr1", 15, 25), gi(t, "chr1", 30, 40),
			},
			[]GenomicInterval[string, int]{
				gi(t, "chr1", 10, 25), gi(t, "chr1", 30, 40),
			},
		},
		{
			"touching intervals coalesce",
			[]GenomicInterval[string, int]{
				gi(t, "chr1", 10, 20), gi(t, "chr1", 20, 30),
			},
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 30)},
		},
		{
			"containment",
			[]GenomicInterval[string, int]{
				gi(t, "chr1", 10, 50), gi(t, "chr1", 20, 30),
			},
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 50)},
		},
		{
			"chromosomes are independent",
			[]GenomicInterval[string, int]{
				gi(t, "chr1", 10, 20), gi(t, "chr2", 15, 25),
			},
			[]GenomicInterval[string, int]{
				gi(t, "chr1", 10, 20), gi(t, "chr2", 15, 25),
			},
		},
		{
			"empty",
			nil,
			nil,
		},
	}
	for _, tt := range tests {
		merged, err := sortedGenomicSet(t, tt.in...).Merge()
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, merged.Records(), tt.name)
		assert.True(t, merged.IsSorted(), tt.name)
	}
}

func TestMergeUnsorted(t *testing.T) {
	set := NewGenomicSet(gi(t, "chr1", 10, 20))
	_, err := set.Merge()
	assert.Equal(t, ErrUnsortedSet, errors.Cause(err))
}

func TestMergeIdempotent(t *testing.T) {
	set := sortedGenomicSet(t,
		gi(t, "chr1", 1, 10), gi(t, "chr1", 2, 5), gi(t, "chr1", 3, 22),
		gi(t, "chr1", 25, 40), gi(t, "chr1", 30, 50),
		gi(t, "chr2", 1, 60), gi(t, "chr2", 2, 70),
	)
	once, err := set.Merge()
	require.NoError(t, err)
	twice, err := once.Merge()
	require.NoError(t, err)
	assert.Equal(t, once.Records(), twice.Records())

	// The merged cover is pairwise disjoint.
	recs := once.Records()
	for i := 1; i < len(recs); i++ {
		assert.False(t, recs[i-1].Overlaps(recs[i]))
	}
}

func TestMergeWithin(t *testing.T) {
	set := sortedGenomicSet(t,
		gi(t, "chr1", 10, 20), gi(t, "chr1", 25, 35), gi(t, "chr1", 50, 60),
	)
	merged, err := set.MergeWithin(5)
	require.NoError(t, err)
	assert.Equal(t, []GenomicInterval[string, int]{
		gi(t, "chr1", 10, 35), gi(t, "chr1", 50, 60),
	}, merged.Records())

	// Distance zero behaves exactly like Merge.
	merged, err = set.MergeWithin(0)
	require.NoError(t, err)
	assert.Equal(t, set.Records(), merged.Records())

	// A negative distance is rejected rather than silently un-merging
	// touching intervals.
	_, err = set.MergeWithin(-1)
	assert.Equal(t, ErrNegativeDistance, errors.Cause(err))
	_, err = set.MergeWithinParallel(-1, 2)
	assert.Equal(t, ErrNegativeDistance, errors.Cause(err))
}

func TestIntersect(t *testing.T) {
	setA := sortedGenomicSet(t,
		gi(t, "chr1", 10, 20), gi(t, "chr1", 30, 40), gi(t, "chr2", 10, 20),
	)
	setB := sortedGenomicSet(t,
		gi(t, "chr1", 15, 35), gi(t, "chr2", 40, 50),
	)

	spans, err := setA.Intersect(setB)
	require.NoError(t, err)
	assert.Equal(t, []GenomicInterval[string, int]{
		gi(t, "chr1", 15, 20), gi(t, "chr1", 30, 35),
	}, spans)

	// Commutative up to span equality.
	flipped, err := setB.Intersect(setA)
	require.NoError(t, err)
	assert.Equal(t, spans, flipped)
}

func TestIntersectNestedRecords(t *testing.T) {
	// Records of A overlap each other; every overlapping pair must still be
	// reported, in sorted order.
	setA := sortedGenomicSet(t,
		gi(t, "chr1", 0, 100), gi(t, "chr1", 5, 90),
	)
	setB := sortedGenomicSet(t, gi(t, "chr1", 10, 20))

	spans, err := setA.Intersect(setB)
	require.NoError(t, err)
	assert.Equal(t, []GenomicInterval[string, int]{
		gi(t, "chr1", 10, 20), gi(t, "chr1", 10, 20),
	}, spans)
}

func TestIntersectUnsorted(t *testing.T) {
	sorted := sortedGenomicSet(t, gi(t, "chr1", 10, 20))
	unsorted := NewGenomicSet(gi(t, "chr1", 10, 20))
	_, err := sorted.Intersect(unsorted)
	assert.Equal(t, ErrUnsortedSet, errors.Cause(err))
	_, err = unsorted.Intersect(sorted)
	assert.Equal(t, ErrUnsortedSet, errors.Cause(err))
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		a, b []GenomicInterval[string, int]
		want []GenomicInterval[string, int]
	}{
		{
			"split",
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 30)},
			[]GenomicInterval[string, int]{gi(t, "chr1", 15, 20)},
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 15), gi(t, "chr1", 20, 30)},
		},
		{
			"no overlap passes through",
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 20)},
			[]GenomicInterval[string, int]{gi(t, "chr1", 30, 40), gi(t, "chr2", 10, 20)},
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 20)},
		},
		{
			"full coverage drops the record",
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 20)},
			[]GenomicInterval[string, int]{gi(t, "chr1", 5, 25)},
			nil,
		},
		{
			"overlapping subtrahends are merged first",
			[]GenomicInterval[string, int]{gi(t, "chr1", 0, 50)},
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 20), gi(t, "chr1", 15, 30)},
			[]GenomicInterval[string, int]{gi(t, "chr1", 0, 10), gi(t, "chr1", 30, 50)},
		},
		{
			"adjacent subtrahend removes nothing",
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 20)},
			[]GenomicInterval[string, int]{gi(t, "chr1", 20, 30)},
			[]GenomicInterval[string, int]{gi(t, "chr1", 10, 20)},
		},
	}
	for _, tt := range tests {
		diff, err := sortedGenomicSet(t, tt.a...).Subtract(sortedGenomicSet(t, tt.b...))
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, diff.Records(), tt.name)
	}
}

func TestSubtractIntersectPartition(t *testing.T) {
	// Subtract(A,B) and Intersect(A,B) together cover exactly A.
	setA := sortedGenomicSet(t,
		gi(t, "chr1", 0, 30), gi(t, "chr1", 50, 80), gi(t, "chr2", 10, 40),
	)
	setB := sortedGenomicSet(t,
		gi(t, "chr1", 20, 60), gi(t, "chr2", 0, 15), gi(t, "chr3", 0, 100),
	)

	diff, err := setA.Subtract(setB)
	require.NoError(t, err)
	spans, err := setA.Intersect(setB)
	require.NoError(t, err)

	combined := NewGenomicSet(append(diff.Records(), spans...)...)
	combined.Sort()
	gotCover, err := combined.Merge()
	require.NoError(t, err)
	wantCover, err := setA.Merge()
	require.NoError(t, err)
	assert.Equal(t, wantCover.Records(), gotCover.Records())
}

func TestComplement(t *testing.T) {
	set := sortedGenomicSet(t,
		gi(t, "chr1", 10, 20), gi(t, "chr1", 30, 40),
		gi(t, "chr1", 50, 60), gi(t, "chr1", 70, 80),
	)
	comp, err := set.Complement()
	require.NoError(t, err)
	assert.Equal(t, []GenomicInterval[string, int]{
		gi(t, "chr1", 20, 30), gi(t, "chr1", 40, 50), gi(t, "chr1", 60, 70),
	}, comp.Records())
}

func TestComplementBounded(t *testing.T) {
	set := sortedGenomicSet(t, gi(t, "chr1", 10, 20), gi(t, "chr1", 30, 40))
	comp, err := set.ComplementBounded(map[string]int{"chr1": 50})
	require.NoError(t, err)
	assert.Equal(t, []GenomicInterval[string, int]{
		gi(t, "chr1", 0, 10), gi(t, "chr1", 20, 30), gi(t, "chr1", 40, 50),
	}, comp.Records())

	// A chromosome absent from the set is emitted whole.
	comp, err = set.ComplementBounded(map[string]int{"chr1": 50, "chr2": 30})
	require.NoError(t, err)
	assert.Equal(t, gi(t, "chr2", 0, 30), comp.At(comp.Len()-1))

	// A chromosome without a size entry contributes internal gaps only, with
	// neither flank.
	set.Extend(gi(t, "chr2", 10, 20), gi(t, "chr2", 30, 40))
	set.Sort()
	comp, err = set.ComplementBounded(map[string]int{"chr1": 50})
	require.NoError(t, err)
	assert.Equal(t, []GenomicInterval[string, int]{
		gi(t, "chr1", 0, 10), gi(t, "chr1", 20, 30), gi(t, "chr1", 40, 50),
		gi(t, "chr2", 20, 30),
	}, comp.Records())
}

func TestComplementRoundTrip(t *testing.T) {
	sizes := map[string]int{"chr1": 100}
	set := sortedGenomicSet(t, gi(t, "chr1", 10, 20), gi(t, "chr1", 30, 40))
	comp, err := set.ComplementBounded(sizes)
	require.NoError(t, err)
	back, err := comp.ComplementBounded(sizes)
	require.NoError(t, err)
	merged, err := set.Merge()
	require.NoError(t, err)
	assert.Equal(t, merged.Records(), back.Records())
}

func TestClosest(t *testing.T) {
	set := sortedGenomicSet(t,
		gi(t, "chr1", 10, 20), gi(t, "chr1", 30, 40), gi(t, "chr1", 50, 60),
	)
	tests := []struct {
		name  string
		query GenomicInterval[string, int]
		want  GenomicInterval[string, int]
	}{
		// Distance 2 to [10,20) beats distance 8 to [30,40).
		{"left neighbor wins", gi(t, "chr1", 22, 22), gi(t, "chr1", 10, 20)},
		// Overlap is distance zero.
		{"overlap wins", gi(t, "chr1", 22, 32), gi(t, "chr1", 30, 40)},
		// Equidistant: the smaller start wins.
		{"tie prefers smaller start", gi(t, "chr1", 24, 26), gi(t, "chr1", 10, 20)},
		{"before all records", gi(t, "chr1", 0, 5), gi(t, "chr1", 10, 20)},
		{"after all records", gi(t, "chr1", 90, 95), gi(t, "chr1", 50, 60)},
	}
	for _, tt := range tests {
		got, ok, err := set.Closest(tt.query)
		require.NoError(t, err, tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestClosestNested(t *testing.T) {
	// Sorted order is by start, so a record starting far before the query can
	// still be the nearest one; the scan must not stop at the insertion
	// point's neighbors.
	set := sortedGenomicSet(t,
		gi(t, "chr1", 0, 100), gi(t, "chr1", 10, 20), gi(t, "chr1", 50, 60),
	)
	query := gi(t, "chr1", 70, 75)

	got, ok, err := set.Closest(query)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, gi(t, "chr1", 0, 100), got)

	up, ok, err := set.ClosestUpstream(query)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, gi(t, "chr1", 0, 100), up)
}

func TestClosestNoResult(t *testing.T) {
	set := sortedGenomicSet(t, gi(t, "chr1", 10, 20))
	_, ok, err := set.Closest(gi(t, "chr2", 10, 20))
	require.NoError(t, err)
	assert.False(t, ok)

	empty := sortedGenomicSet(t)
	_, ok, err = empty.Closest(gi(t, "chr1", 10, 20))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClosestUnsorted(t *testing.T) {
	set := NewGenomicSet(gi(t, "chr1", 10, 20))
	_, _, err := set.Closest(gi(t, "chr1", 30, 40))
	assert.Equal(t, ErrUnsortedSet, errors.Cause(err))
}

func TestClosestUpstreamDownstream(t *testing.T) {
	set := sortedGenomicSet(t,
		gi(t, "chr1", 10, 20), gi(t, "chr1", 30, 40), gi(t, "chr1", 50, 60),
	)
	query := gi(t, "chr1", 32, 45)

	up, ok, err := set.ClosestUpstream(query)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, gi(t, "chr1", 30, 40), up)

	down, ok, err := set.ClosestDownstream(query)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, gi(t, "chr1", 50, 60), down)

	// No record starts before 10.
	_, ok, err = set.ClosestUpstream(gi(t, "chr1", 5, 6))
	require.NoError(t, err)
	assert.False(t, ok)

	// No record starts at or after 90.
	_, ok, err = set.ClosestDownstream(gi(t, "chr1", 90, 95))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestZeroLengthInMerge(t *testing.T) {
	// An insertion site inside a covered region disappears into the
	// envelope; a free-standing one survives as its own record.
	set := sortedGenomicSet(t,
		gi(t, "chr1", 10, 20), gi(t, "chr1", 15, 15), gi(t, "chr1", 40, 40),
	)
	merged, err := set.Merge()
	require.NoError(t, err)
	assert.Equal(t, []GenomicInterval[string, int]{
		gi(t, "chr1", 10, 20), gi(t, "chr1", 40, 40),
	}, merged.Records())
}
