/*
bed-setops runs bedtools-style set operations over BED3 interval files.

Inputs are plain or gzipped BED files with at least three columns
(chrom, start, end; zero-based half-open).  Input need not be sorted;
bed-setops sorts before sweeping.  Results are written to stdout as BED3.

Operations:

	merge       coalesce overlapping/touching intervals of -a
	            (-merge-distance also coalesces intervals within N bases)
	intersect   intersection spans of every overlapping pair from -a and -b
	subtract    fragments of -a intervals not covered by -b
	complement  gaps between merged -a intervals; with -genome, also the
	            flanking gaps out to each chromosome's length
	closest     the -a interval nearest to -query, with its distance

The -genome argument accepts either a two-column TSV (chrom, length) or a
SAM file, whose header @SQ lines supply the lengths.

Sample usage:

	bed-setops -op merge -a regions.bed.gz
	bed-setops -op subtract -a regions.bed -b mask.bed
	bed-setops -op complement -a regions.bed -genome hg38.chrom.sizes
	bed-setops -op closest -a regions.bed -query chr1:1000-2000
*/
package main
