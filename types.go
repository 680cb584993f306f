package main

// Metric flags selecting which counts a run should produce. Chars and
// Bytes are mutually exclusive selectors of the same output column; the
// CLI layer resolves the -c/-m toggle before counting starts.
const (
	Lines     uint8 = 1 << iota // newline count
	Words                       // word count
	Chars                       // UTF-8 character count
	Bytes                       // byte count
	MaxLength                   // length of the longest line
)

// Counts holds the accumulated totals for one source. Fields not covered
// by the selected strategy stay zero.
type Counts struct {
	Lines     uint64
	Words     uint64
	Chars     uint64
	Bytes     uint64
	MaxLength uint64
}

// Add folds another source's counts into a running total. MaxLength is a
// maximum, not a sum.
func (c *Counts) Add(o Counts) {
	c.Lines += o.Lines
	c.Words += o.Words
	c.Chars += o.Chars
	c.Bytes += o.Bytes
	if o.MaxLength > c.MaxLength {
		c.MaxLength = o.MaxLength
	}
}

// Source identifies one input. An empty or "-" path means standard input.
type Source struct {
	Path string
}

func (s Source) stdin() bool {
	return s.Path == "" || s.Path == "-"
}

// Result is the outcome of counting one source. Err is set when the
// source could not be opened or read; the counts are then meaningless and
// excluded from totals.
type Result struct {
	Name   string
	Counts Counts
	Err    error
}
