package main

import (
	"fmt"
	"io"
	"math/bits"
)

// minColumnWidth keeps small outputs aligned the way wc users expect.
const minColumnWidth = 7

// columnWidth sizes the output columns to the largest value that will be
// printed across all rows, with a floor of minColumnWidth.
func columnWidth(opts uint8, results []Result, total Counts) int {
	width := minColumnWidth
	consider := func(c Counts) {
		for _, col := range [...]struct {
			flag uint8
			v    uint64
		}{
			{Lines, c.Lines}, {Words, c.Words}, {Chars, c.Chars},
			{Bytes, c.Bytes}, {MaxLength, c.MaxLength},
		} {
			if opts&col.flag == 0 {
				continue
			}
			if w := digits(col.v); w > width {
				width = w
			}
		}
	}
	for _, r := range results {
		if r.Err == nil {
			consider(r.Counts)
		}
	}
	consider(total)
	return width
}

// digits is a fast integer log10: (((bitlen+1)*1233)>>12)+1. It may
// overshoot by one for powers of ten, which only costs a space of
// padding.
func digits(n uint64) int {
	return ((64-bits.LeadingZeros64(n|1)+1)*1233)>>12 + 1
}

// writeCounts prints one row: the requested columns in the fixed order
// lines, words, chars or bytes, max line length, then the source name.
func writeCounts(w io.Writer, width int, opts uint8, c Counts, name string) {
	if opts&Lines != 0 {
		fmt.Fprintf(w, " %*d", width, c.Lines)
	}
	if opts&Words != 0 {
		fmt.Fprintf(w, " %*d", width, c.Words)
	}
	if opts&Chars != 0 {
		fmt.Fprintf(w, " %*d", width, c.Chars)
	} else if opts&Bytes != 0 {
		fmt.Fprintf(w, " %*d", width, c.Bytes)
	}
	if opts&MaxLength != 0 {
		fmt.Fprintf(w, " %*d", width, c.MaxLength)
	}
	if name != "" {
		fmt.Fprintf(w, " %s", name)
	}
	fmt.Fprintln(w)
}
