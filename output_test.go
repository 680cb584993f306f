package main

import (
	"strings"
	"testing"
)

func TestWriteCounts(t *testing.T) {
	c := Counts{Lines: 2, Words: 3, Chars: 15, Bytes: 16, MaxLength: 11}
	tests := []struct {
		name string
		opts uint8
		src  string
		want string
	}{
		{"default", Lines | Words | Bytes, "f.txt", "       2       3      16 f.txt\n"},
		{"chars replace bytes", Lines | Words | Chars, "f.txt", "       2       3      15 f.txt\n"},
		{"lines only", Lines, "f.txt", "       2 f.txt\n"},
		{"all with max", Lines | Words | Bytes | MaxLength, "f.txt", "       2       3      16      11 f.txt\n"},
		{"stdin has no name", Lines | Words | Bytes, "", "       2       3      16\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			writeCounts(&sb, 7, tt.opts, c, tt.src)
			if sb.String() != tt.want {
				t.Errorf("got %q, want %q", sb.String(), tt.want)
			}
		})
	}
}

func TestColumnWidth(t *testing.T) {
	small := []Result{{Counts: Counts{Lines: 1, Words: 2, Bytes: 30}}}
	if w := columnWidth(Lines|Words|Bytes, small, Counts{Bytes: 30}); w != minColumnWidth {
		t.Errorf("small counts: width = %d, want %d", w, minColumnWidth)
	}

	big := []Result{{Counts: Counts{Bytes: 123456789012}}}
	if w := columnWidth(Lines|Words|Bytes, big, Counts{Bytes: 123456789012}); w < 12 {
		t.Errorf("large counts: width = %d, want >= 12", w)
	}

	// Values for unrequested metrics must not widen the columns.
	odd := []Result{{Counts: Counts{Lines: 1, Bytes: 987654321098765}}}
	if w := columnWidth(Lines, odd, Counts{Lines: 1}); w != minColumnWidth {
		t.Errorf("unrequested metric widened columns: width = %d", w)
	}

	// Failed sources contribute nothing.
	failed := []Result{{Counts: Counts{Bytes: 999999999999}, Err: errSourceFailed}}
	if w := columnWidth(Bytes, failed, Counts{}); w != minColumnWidth {
		t.Errorf("failed source widened columns: width = %d", w)
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		n   uint64
		min int
	}{
		{0, 1}, {5, 1}, {42, 2}, {999, 3}, {12345678, 8},
	}
	for _, tt := range tests {
		got := digits(tt.n)
		if got < tt.min || got > tt.min+1 {
			t.Errorf("digits(%d) = %d, want %d (or one above)", tt.n, got, tt.min)
		}
	}
}
