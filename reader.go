package main

import "io"

// readSize is the chunk size used for all scanning reads. Large enough to
// amortize syscall overhead, small enough to bound per-worker memory.
const readSize = 1 << 17

// chunkReader hands out successive chunks of an input source. The
// returned slice aliases an internal buffer and is only valid until the
// next call. Read position is published to the progress entry so the
// signal listener can report on in-flight work without touching the scan.
type chunkReader struct {
	r    io.Reader
	buf  []byte
	err  error
	prog *progressEntry
}

func newChunkReader(r io.Reader, prog *progressEntry) *chunkReader {
	return &chunkReader{r: r, buf: make([]byte, readSize), prog: prog}
}

// next returns the next sequential chunk, or io.EOF at a clean end of
// stream. A read error is terminal: the caller abandons the source.
func (c *chunkReader) next() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	for {
		n, err := c.r.Read(c.buf)
		if n > 0 {
			// Hold any error until the chunk has been consumed.
			c.err = err
			if c.prog != nil {
				c.prog.read.Add(int64(n))
			}
			return c.buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}
