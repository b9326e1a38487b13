package interval

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, iv.Start())
	assert.Equal(t, 20, iv.End())
	assert.Equal(t, 0, iv.Chrom())

	// Zero-length is a valid insertion site.
	_, err = NewInterval(10, 10)
	assert.NoError(t, err)

	_, err = NewInterval(20, 10)
	assert.Equal(t, ErrInvalidInterval, errors.Cause(err))
}

func TestNewGenomicInterval(t *testing.T) {
	iv, err := NewGenomicInterval("chr1", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, "chr1", iv.Chrom())
	assert.Equal(t, 10, iv.Start())
	assert.Equal(t, 20, iv.End())

	_, err = NewGenomicInterval("chr1", 20, 10)
	assert.Equal(t, ErrInvalidInterval, errors.Cause(err))
}

func TestNewStrandedGenomicInterval(t *testing.T) {
	iv, err := NewStrandedGenomicInterval("chr1", 10, 20, StrandReverse)
	require.NoError(t, err)
	assert.Equal(t, StrandReverse, iv.Strand())

	_, err = NewStrandedGenomicInterval("chr1", 20, 10, StrandForward)
	assert.Equal(t, ErrInvalidInterval, errors.Cause(err))
}

func TestUpdatePreservesStrand(t *testing.T) {
	iv := si(t, "chr1", 10, 20, StrandReverse)
	moved := iv.Update("chr2", 30, 40)
	assert.Equal(t, "chr2", moved.Chrom())
	assert.Equal(t, 30, moved.Start())
	assert.Equal(t, 40, moved.End())
	assert.Equal(t, StrandReverse, moved.Strand())
	// The receiver is unchanged.
	assert.Equal(t, si(t, "chr1", 10, 20, StrandReverse), iv)
}

func TestMutators(t *testing.T) {
	iv := gi(t, "chr1", 10, 20)
	iv.SetChrom("chr2")
	iv.SetStart(30)
	iv.SetEnd(40)
	assert.Equal(t, gi(t, "chr2", 30, 40), iv)

	// The pointer forms satisfy Mutable.
	var m Mutable[string, int] = &iv
	m.SetStart(35)
	assert.Equal(t, 35, iv.Start())
}

func TestParseStrand(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Strand
	}{
		{"+", StrandForward},
		{"-", StrandReverse},
		{".", StrandUnknown},
	} {
		got, err := ParseStrand(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.in, got.String())
	}
	_, err := ParseStrand("x")
	assert.Error(t, err)
}
