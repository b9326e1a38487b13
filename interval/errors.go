package interval

import "github.com/pkg/errors"

// All failures in this package are one of the sentinels below, possibly
// wrapped with context; test with errors.Is or errors.Cause.
var (
	// ErrInvalidInterval is returned by constructors when start > end.
	ErrInvalidInterval = errors.New("interval: start exceeds end")

	// ErrChromMismatch is returned by pairwise operations that are only
	// defined within a single chromosome (Distance, Intersect, Span).
	ErrChromMismatch = errors.New("interval: chromosomes differ")

	// ErrNoOverlap is returned by Intersect when the operands are disjoint.
	ErrNoOverlap = errors.New("interval: intervals do not overlap")

	// ErrNegativeDistance is returned by MergeWithin for a coalescing
	// distance below zero.
	ErrNegativeDistance = errors.New("interval: negative merge distance")

	// ErrUnsortedSet is returned by sweep operations invoked on a Set whose
	// sorted flag is not established.  Sorting is an explicit step; nothing
	// in this package sorts behind the caller's back.
	ErrUnsortedSet = errors.New("interval: set is not sorted")

	// ErrUnsortedRecords is returned by FromSorted when the provided records
	// are not in (chromosome, start, end) order.
	ErrUnsortedRecords = errors.New("interval: records are not sorted")
)
