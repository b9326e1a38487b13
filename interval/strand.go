package interval

import "github.com/pkg/errors"

// Strand marks the orientation of a stranded record.  The zero value is
// StrandUnknown, matching the "." column of BED6.
type Strand uint8

const (
	StrandUnknown Strand = iota
	StrandForward
	StrandReverse
)

// ParseStrand converts the BED strand column ("+", "-", or ".") to a Strand.
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return StrandForward, nil
	case "-":
		return StrandReverse, nil
	case ".":
		return StrandUnknown, nil
	}
	return StrandUnknown, errors.Errorf("interval: invalid strand %q", s)
}

func (s Strand) String() string {
	switch s {
	case StrandForward:
		return "+"
	case StrandReverse:
		return "-"
	}
	return "."
}
