package interval

import "cmp"

// Position is the constraint on interval coordinate types.  Any integer type
// works; genomic coordinates are conventionally int or int32 (the BAM limit),
// but unsigned types are accepted since all arithmetic here subtracts the
// smaller value from the larger.
type Position interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Coordinates is the capability contract for interval records.  Any type
// exposing a chromosome and a half-open [start, end) span can participate in
// every algorithm in this package.
//
// The constraint is self-referential: a record type R satisfies
// Coordinates[R, C, T].  Update is the copy-constructor of the contract: it
// returns a copy of the receiver with the given coordinates, preserving any
// payload fields the record carries (name, score, strand, ...).  Algorithms
// use it to derive output records from input records, so results keep their
// source record's metadata.
//
// Chromosomes are opaque identifiers; records on different chromosomes never
// overlap and have no defined distance.  The unmarked Interval type fixes its
// chromosome to a constant so that all instances share one comparison domain.
type Coordinates[I any, C cmp.Ordered, T Position] interface {
	Chrom() C
	Start() T
	End() T
	Update(chrom C, start, end T) I
}

// Mutable is the in-place mutation surface of the contract.  It is satisfied
// by pointers to the record types in this package and exists for external
// encoders and parsers that fill records field by field; the algorithms in
// this package never mutate records through it.
type Mutable[C cmp.Ordered, T Position] interface {
	SetChrom(C)
	SetStart(T)
	SetEnd(T)
}

// Stranded is satisfied by records that carry strand orientation.
type Stranded interface {
	Strand() Strand
}

// CompareCoords orders two records by (chromosome, start, end).  This is the
// sort key of Set and of every sweep in this package.
func CompareCoords[I Coordinates[I, C, T], C cmp.Ordered, T Position](a, b I) int {
	if c := cmp.Compare(a.Chrom(), b.Chrom()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Start(), b.Start()); c != 0 {
		return c
	}
	return cmp.Compare(a.End(), b.End())
}
