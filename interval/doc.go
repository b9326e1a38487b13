/*Package interval implements half-open genomic interval arithmetic: overlap
  and containment predicates, distance, intersection and envelope spans, and
  sorted-set sweep operations (merge, intersect, subtract, complement,
  closest).
  All operations are generic over the Coordinates contract, so they apply to
  the record types shipped here (Interval, GenomicInterval,
  StrandedGenomicInterval) as well as to caller-defined record types.
  Every range is left-closed right-open, [start, end); this is the convention
  of BED files and of every comparison in this package.
*/
package interval
