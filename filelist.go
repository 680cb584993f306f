package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// readFileList reads input paths from the named file, one per line, or
// NUL-terminated when nulSep is set (the GNU --files0-from convention).
// "-" reads the list itself from standard input. Empty entries are
// skipped.
func readFileList(path string, nulSep bool) ([]Source, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	s := bufio.NewScanner(r)
	if nulSep {
		s.Split(scanNulTerminated)
	}
	var sources []Source
	for s.Scan() {
		if name := s.Text(); name != "" {
			sources = append(sources, Source{Path: name})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("file list %s: %w", path, err)
	}
	return sources, nil
}

// scanNulTerminated is a bufio.SplitFunc for NUL-separated name lists.
func scanNulTerminated(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0x00); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
