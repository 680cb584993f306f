package main

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"
)

// A strategy is one specialized counting loop. The selector resolves the
// variant once per metric set; the chunk loops then run without any
// per-byte dispatch.
type strategy int

const (
	bytesOnly strategy = iota
	linesOnly
	charsOnly
	linesLongest
	charsLinesLongest
	wordsLinesLongest
	charsWordsLinesLongest
)

// capability describes what a strategy produces and roughly what it
// costs. Ranks order the loops cheapest-first; the ratios come from
// benchmarking the loops against each other and only their order matters.
type capability struct {
	rank     int
	provides uint8
}

var capabilities = [...]capability{
	bytesOnly:              {rank: 0, provides: Bytes},
	linesOnly:              {rank: 1, provides: Lines | Bytes},
	charsOnly:              {rank: 10, provides: Chars | Bytes},
	linesLongest:           {rank: 30, provides: Lines | Bytes | MaxLength},
	charsLinesLongest:      {rank: 120, provides: Chars | Lines | Bytes | MaxLength},
	wordsLinesLongest:      {rank: 150, provides: Words | Lines | Bytes | MaxLength},
	charsWordsLinesLongest: {rank: 400, provides: Chars | Words | Lines | Bytes | MaxLength},
}

// covers reports whether a strategy can satisfy the requested metrics.
// Word and line-length units must match the requested width unit: a
// byte-unit loop cannot answer a character-mode request and a char-unit
// loop must not be picked for a byte-mode one.
func (c capability) covers(opts uint8) bool {
	if opts&^c.provides != 0 {
		return false
	}
	if opts&(Words|MaxLength) != 0 && (c.provides&Chars != 0) != (opts&Chars != 0) {
		return false
	}
	return true
}

// pickStrategy maps a metric set to the cheapest loop that can satisfy
// it. Any request including words inspects every unit of input anyway, so
// those collapse onto the full scans.
func pickStrategy(opts uint8) strategy {
	best := charsWordsLinesLongest
	bestRank := capabilities[best].rank + 1
	for s, c := range capabilities {
		if c.covers(opts) && c.rank < bestRank {
			best, bestRank = strategy(s), c.rank
		}
	}
	return best
}

// scanState is the per-source accumulator threaded through a scanner's
// chunk loop. Exactly one goroutine ever touches it.
type scanState struct {
	counts  Counts
	lineLen uint64
	inWord  bool
	pend    pendingUTF8
}

// endLine closes the current line: fold its length into the maximum and
// bump the line count.
func (st *scanState) endLine() {
	if st.lineLen > st.counts.MaxLength {
		st.counts.MaxLength = st.lineLen
	}
	st.lineLen = 0
	st.counts.Lines++
}

// finish flushes the final unterminated line, if any, and returns the
// completed counts.
func (st *scanState) finish() Counts {
	if st.lineLen > st.counts.MaxLength {
		st.counts.MaxLength = st.lineLen
	}
	return st.counts
}

// asciiSpace is the word-separator set: space, tab, newline, carriage
// return, vertical tab and form feed. Deliberately locale-independent;
// multibyte characters never separate words.
var asciiSpace = [256]bool{' ': true, '\t': true, '\n': true, '\r': true, '\v': true, '\f': true}

var newline = []byte{'\n'}

// scan consumes the whole source through cr, folding every chunk into st.
func (s strategy) scan(cr *chunkReader, st *scanState) error {
	switch s {
	case bytesOnly:
		return scanBytes(cr, st)
	case linesOnly:
		return scanLines(cr, st)
	case charsOnly:
		return scanChars(cr, st)
	case linesLongest:
		return scanLinesLongest(cr, st)
	case charsLinesLongest:
		return scanCharsLinesLongest(cr, st)
	case wordsLinesLongest:
		return scanWordsLinesLongest(cr, st)
	default:
		return scanCharsWordsLinesLongest(cr, st)
	}
}

// scanBytes is the fallback when a source's size cannot be queried:
// read and discard, counting lengths.
func scanBytes(cr *chunkReader, st *scanState) error {
	for {
		buf, err := cr.next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		st.counts.Bytes += uint64(len(buf))
	}
}

// scanLines counts newlines with the vectorized search in bytes.Count
// rather than a per-byte loop.
func scanLines(cr *chunkReader, st *scanState) error {
	for {
		buf, err := cr.next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		st.counts.Bytes += uint64(len(buf))
		st.counts.Lines += uint64(bytes.Count(buf, newline))
	}
}

func scanChars(cr *chunkReader, st *scanState) error {
	emit := func(rune) { st.counts.Chars++ }
	for {
		buf, err := cr.next()
		if err != nil {
			if err == io.EOF {
				st.pend.flush(emit)
				return nil
			}
			return err
		}
		st.counts.Bytes += uint64(len(buf))
		st.pend.runes(buf, emit)
	}
}

// scanLinesLongest measures line lengths in bytes by jumping between
// newline positions instead of walking every byte.
func scanLinesLongest(cr *chunkReader, st *scanState) error {
	for {
		buf, err := cr.next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		st.counts.Bytes += uint64(len(buf))
		for {
			i := bytes.IndexByte(buf, '\n')
			if i < 0 {
				st.lineLen += uint64(len(buf))
				break
			}
			st.lineLen += uint64(i)
			st.endLine()
			buf = buf[i+1:]
		}
	}
}

func scanCharsLinesLongest(cr *chunkReader, st *scanState) error {
	emit := func(r rune) {
		st.counts.Chars++
		if r == '\n' {
			st.endLine()
		} else {
			st.lineLen++
		}
	}
	for {
		buf, err := cr.next()
		if err != nil {
			if err == io.EOF {
				st.pend.flush(emit)
				return nil
			}
			return err
		}
		st.counts.Bytes += uint64(len(buf))
		st.pend.runes(buf, emit)
	}
}

// scanWordsLinesLongest is the byte-mode superset path: every metric
// except chars, with word and line lengths measured in bytes. The in-word
// flag carries word state across chunk boundaries.
func scanWordsLinesLongest(cr *chunkReader, st *scanState) error {
	for {
		buf, err := cr.next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		st.counts.Bytes += uint64(len(buf))
		for _, b := range buf {
			if asciiSpace[b] {
				st.inWord = false
				if b == '\n' {
					st.endLine()
				} else {
					st.lineLen++
				}
			} else {
				if !st.inWord {
					st.counts.Words++
					st.inWord = true
				}
				st.lineLen++
			}
		}
	}
}

// scanCharsWordsLinesLongest is the char-mode superset path: decoded
// characters for the chars count and line lengths, word boundaries still
// on the ASCII separator set.
func scanCharsWordsLinesLongest(cr *chunkReader, st *scanState) error {
	emit := func(r rune) {
		st.counts.Chars++
		if r < utf8.RuneSelf && asciiSpace[byte(r)] {
			st.inWord = false
			if r == '\n' {
				st.endLine()
			} else {
				st.lineLen++
			}
		} else {
			if !st.inWord {
				st.counts.Words++
				st.inWord = true
			}
			st.lineLen++
		}
	}
	for {
		buf, err := cr.next()
		if err != nil {
			if err == io.EOF {
				st.pend.flush(emit)
				return nil
			}
			return err
		}
		st.counts.Bytes += uint64(len(buf))
		st.pend.runes(buf, emit)
	}
}

// countReader runs a strategy over an already-open stream.
func countReader(s strategy, r io.Reader, prog *progressEntry) (Counts, error) {
	st := &scanState{}
	if err := s.scan(newChunkReader(r, prog), st); err != nil {
		return Counts{}, err
	}
	return st.finish(), nil
}

// countSource runs one source end to end. Byte-only requests against a
// regular file are answered from its metadata without a single read.
func countSource(s strategy, src Source, prog *progressEntry) (Counts, error) {
	if src.stdin() {
		return countReader(s, os.Stdin, prog)
	}

	if s == bytesOnly {
		if fi, err := os.Stat(src.Path); err == nil && fi.Mode().IsRegular() {
			n := fi.Size()
			if prog != nil {
				prog.total.Store(n)
				prog.read.Store(n)
			}
			return Counts{Bytes: uint64(n)}, nil
		}
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return Counts{}, err
	}
	defer f.Close()
	fadvise(f)

	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() && prog != nil {
		prog.total.Store(fi.Size())
	}
	return countReader(s, f, prog)
}
