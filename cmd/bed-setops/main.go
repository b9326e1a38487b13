package main

// See doc.go for documentation

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"

	"github.com/noamteyssier/bedrs/interval"
)

var (
	aPath       = flag.String("a", "", "Primary BED path, or - for stdin (required)")
	bPath       = flag.String("b", "", "Secondary BED path (required for intersect and subtract)")
	op          = flag.String("op", "", "Operation: merge, intersect, subtract, complement, or closest")
	mergeDist   = flag.Int("merge-distance", 0, "Coalesce intervals separated by at most this many bases (merge only)")
	genomePath  = flag.String("genome", "", "Chromosome lengths as a chrom<TAB>length TSV or a SAM file; bounds the complement")
	region      = flag.String("query", "", "Query region for closest, as <chrom>:<1-based first pos>-<last pos>, <chrom>:<1-based pos>, or <chrom>")
	parallelism = flag.Int("parallelism", 0, "Maximum number of simultaneous per-chromosome sweep jobs; 0 = all CPUs")
)

type bedIv = interval.GenomicInterval[string, int]
type bedSet = interval.Set[bedIv, string, int]

func bedSetopsUsage() {
	fmt.Printf("Usage: %s -op OPERATION -a PATH [OPTIONS]\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bedSetopsUsage
	shutdown := grail.Init()
	defer shutdown()

	if *op == "" || *aPath == "" {
		log.Fatalf("-op and -a are required; run with -help for usage")
	}
	setA := readBED(*aPath)
	setA.Sort()

	out := tsv.NewWriter(os.Stdout)
	switch *op {
	case "merge":
		merged, err := setA.MergeWithinParallel(*mergeDist, *parallelism)
		if err != nil {
			log.Fatalf("merge %s: %v", *aPath, err)
		}
		writeBED(out, merged.Records())
	case "intersect":
		setB := readSecondary()
		spans, err := setA.IntersectParallel(setB, *parallelism)
		if err != nil {
			log.Fatalf("intersect %s %s: %v", *aPath, *bPath, err)
		}
		writeBED(out, spans)
	case "subtract":
		setB := readSecondary()
		diff, err := setA.Subtract(setB)
		if err != nil {
			log.Fatalf("subtract %s %s: %v", *aPath, *bPath, err)
		}
		writeBED(out, diff.Records())
	case "complement":
		var comp *bedSet
		var err error
		if *genomePath != "" {
			comp, err = setA.ComplementBounded(readGenome(*genomePath))
		} else {
			comp, err = setA.Complement()
		}
		if err != nil {
			log.Fatalf("complement %s: %v", *aPath, err)
		}
		writeBED(out, comp.Records())
	case "closest":
		if *region == "" {
			log.Fatalf("-query is required for closest")
		}
		query, err := parseRegionString(*region)
		if err != nil {
			log.Fatalf("parse -query: %v", err)
		}
		rec, ok, err := setA.Closest(query)
		if err != nil {
			log.Fatalf("closest %s: %v", *aPath, err)
		}
		if !ok {
			log.Printf("no interval on chromosome %s", query.Chrom())
			break
		}
		dist, err := interval.Distance[bedIv, string, int](query, rec)
		if err != nil {
			log.Fatalf("closest %s: %v", *aPath, err)
		}
		writeClosest(out, rec, dist)
	default:
		log.Fatalf("unknown operation %q", *op)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

func readSecondary() *bedSet {
	if *bPath == "" {
		log.Fatalf("-b is required for -op %s", *op)
	}
	setB := readBED(*bPath)
	setB.Sort()
	return setB
}

// readBED loads a plain or gzipped BED3 into an (unsorted) set.  Only the
// first three columns are read; further columns are ignored.
func readBED(path string) *bedSet {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		ctx := vcontext.Background()
		in, err := file.Open(ctx, path)
		if err != nil {
			log.Fatalf("open %s: %v", path, err)
		}
		defer func() {
			if cerr := in.Close(ctx); cerr != nil {
				log.Fatalf("close %s: %v", path, cerr)
			}
		}()
		reader = in.Reader(ctx)
		if fileio.DetermineType(path) == fileio.Gzip {
			if reader, err = gzip.NewReader(reader); err != nil {
				log.Fatalf("gzip %s: %v", path, err)
			}
		}
	}

	set := interval.NewGenomicSet[string, int]()
	scanner := bufio.NewScanner(reader)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) < 3 {
			log.Fatalf("%s:%d: fewer than 3 columns", path, lineIdx)
		}
		start, err := strconv.Atoi(tokens[1])
		if err != nil {
			log.Fatalf("%s:%d: bad start: %v", path, lineIdx, err)
		}
		end, err := strconv.Atoi(tokens[2])
		if err != nil {
			log.Fatalf("%s:%d: bad end: %v", path, lineIdx, err)
		}
		if start < 0 {
			log.Fatalf("%s:%d: negative start coordinate %d", path, lineIdx, start)
		}
		iv, err := interval.NewGenomicInterval(tokens[0], start, end)
		if err != nil {
			log.Fatalf("%s:%d: %v", path, lineIdx, err)
		}
		set.Insert(iv)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	log.Printf("%s: %d interval(s) loaded", path, set.Len())
	return set
}

// readGenome loads chromosome lengths from a chrom<TAB>length TSV, or from
// the @SQ lines of a SAM file when the path ends in .sam.
func readGenome(path string) map[string]int {
	ctx := vcontext.Background()
	in, err := file.Open(ctx, path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil {
			log.Fatalf("close %s: %v", path, cerr)
		}
	}()
	reader := io.Reader(in.Reader(ctx))

	sizes := make(map[string]int)
	if strings.HasSuffix(path, ".sam") {
		samReader, err := sam.NewReader(reader)
		if err != nil {
			log.Fatalf("read SAM header %s: %v", path, err)
		}
		for _, ref := range samReader.Header().Refs() {
			sizes[ref.Name()] = ref.Len()
		}
		return sizes
	}
	scanner := bufio.NewScanner(reader)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) < 2 {
			log.Fatalf("%s:%d: fewer than 2 columns", path, lineIdx)
		}
		size, err := strconv.Atoi(tokens[1])
		if err != nil {
			log.Fatalf("%s:%d: bad length: %v", path, lineIdx, err)
		}
		sizes[tokens[0]] = size
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	return sizes
}

// parseRegionString parses a region string of one of the forms
//
//	[chrom]:[1-based first pos]-[last pos]
//	[chrom]:[1-based pos]
//	[chrom]
//
// returning a zero-based half-open query interval.  A bare chromosome means
// "anywhere on the chromosome" and yields the interval [0, 0).
func parseRegionString(region string) (bedIv, error) {
	var zero bedIv
	colonPos := strings.IndexByte(region, ':')
	if colonPos == -1 {
		return interval.NewGenomicInterval(region, 0, 0)
	}
	if colonPos == 0 {
		return zero, fmt.Errorf("empty chromosome in region %q", region)
	}
	chrom := region[:colonPos]
	rangeStr := region[colonPos+1:]
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		pos1, err := strconv.Atoi(rangeStr)
		if err != nil {
			return zero, err
		}
		if pos1 <= 0 {
			return zero, fmt.Errorf("position %q out of range", rangeStr)
		}
		return interval.NewGenomicInterval(chrom, pos1-1, pos1)
	}
	start1, err := strconv.Atoi(rangeStr[:dashPos])
	if err != nil {
		return zero, err
	}
	end0, err := strconv.Atoi(rangeStr[dashPos+1:])
	if err != nil {
		return zero, err
	}
	if start1 <= 0 || end0 < start1 {
		return zero, fmt.Errorf("invalid range %q", rangeStr)
	}
	return interval.NewGenomicInterval(chrom, start1-1, end0)
}

func writeBED(out *tsv.Writer, records []bedIv) {
	for _, rec := range records {
		out.WriteString(rec.Chrom())
		out.WriteString(strconv.Itoa(rec.Start()))
		out.WriteString(strconv.Itoa(rec.End()))
		if err := out.EndLine(); err != nil {
			log.Fatalf("write output: %v", err)
		}
	}
}

func writeClosest(out *tsv.Writer, rec bedIv, dist int) {
	out.WriteString(rec.Chrom())
	out.WriteString(strconv.Itoa(rec.Start()))
	out.WriteString(strconv.Itoa(rec.End()))
	out.WriteString(strconv.Itoa(dist))
	if err := out.EndLine(); err != nil {
		log.Fatalf("write output: %v", err)
	}
}
