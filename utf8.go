package main

import "unicode/utf8"

// pendingUTF8 carries an incomplete multibyte sequence from the end of
// one chunk to the start of the next, so that character-counting
// strategies see the same rune stream regardless of where reads split
// the input. At most three bytes are ever pending: a complete four-byte
// prefix always decodes one way or another.
type pendingUTF8 struct {
	buf [utf8.UTFMax]byte
	n   int
}

// runes decodes b as UTF-8 and calls fn once per resolved character.
// Malformed input yields utf8.RuneError once per minimal invalid
// subsequence, matching the usual lossy-decoding convention, so fn is
// called a deterministic number of times for arbitrary binary input.
// A trailing sequence that could still become valid is held back for the
// next call.
func (p *pendingUTF8) runes(b []byte, fn func(rune)) {
	for p.n > 0 {
		k := copy(p.buf[p.n:], b)
		if !utf8.FullRune(p.buf[:p.n+k]) {
			// Still a prefix of a valid sequence; k covers all of b
			// because an incomplete prefix is at most three bytes.
			p.n += k
			return
		}
		r, size := utf8.DecodeRune(p.buf[:p.n+k])
		fn(r)
		if size >= p.n {
			b = b[size-p.n:]
			p.n = 0
		} else {
			// The carried bytes contained an invalid subsequence shorter
			// than the carry itself. Keep the rest and reconsider it
			// against the same chunk.
			copy(p.buf[:], p.buf[size:p.n])
			p.n -= size
		}
	}

	for len(b) > 0 {
		if b[0] < utf8.RuneSelf {
			fn(rune(b[0]))
			b = b[1:]
			continue
		}
		if !utf8.FullRune(b) {
			p.n = copy(p.buf[:], b)
			return
		}
		r, size := utf8.DecodeRune(b)
		fn(r)
		b = b[size:]
	}
}

// flush resolves bytes still pending at end of stream. They cannot form a
// complete sequence any more and count as a single invalid character.
func (p *pendingUTF8) flush(fn func(rune)) {
	if p.n > 0 {
		fn(utf8.RuneError)
		p.n = 0
	}
}
