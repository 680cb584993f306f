package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"sync"
	"sync/atomic"
)

// progressEntry tracks the live read position of one in-flight source.
// The scanning worker bumps read from its chunk loop; the signal listener
// reads it without any coordination beyond the atomics.
type progressEntry struct {
	name  string
	total atomic.Int64 // source size when known, else 0
	read  atomic.Int64
}

// tracker is the set of in-flight sources inspected on a progress query.
type tracker struct {
	mu      sync.Mutex
	entries map[*progressEntry]struct{}
}

func newTracker() *tracker {
	return &tracker{entries: make(map[*progressEntry]struct{})}
}

func (t *tracker) start(name string) *progressEntry {
	if name == "" {
		name = "-"
	}
	e := &progressEntry{name: name}
	t.mu.Lock()
	t.entries[e] = struct{}{}
	t.mu.Unlock()
	return e
}

func (t *tracker) done(e *progressEntry) {
	t.mu.Lock()
	delete(t.entries, e)
	t.mu.Unlock()
}

// report writes one line per active source: bytes read so far and, when
// the size is known, the total and a percentage.
func (t *tracker) report(w io.Writer) {
	t.mu.Lock()
	active := make([]*progressEntry, 0, len(t.entries))
	for e := range t.entries {
		active = append(active, e)
	}
	t.mu.Unlock()

	sort.Slice(active, func(i, j int) bool { return active[i].name < active[j].name })
	for _, e := range active {
		read, total := e.read.Load(), e.total.Load()
		if total > 0 {
			fmt.Fprintf(w, "%s: %d / %d bytes (%d%%)\n", e.name, read, total, read*100/total)
		} else {
			fmt.Fprintf(w, "%s: %d bytes\n", e.name, read)
		}
	}
}

// watchProgress reports on in-flight sources each time the platform's
// progress-query signal arrives (SIGINFO where it exists, SIGUSR1
// elsewhere). Informational only: counts and exit status are unaffected.
func watchProgress(t *tracker) {
	sigs := progressSignals()
	if len(sigs) == 0 {
		return
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	go func() {
		for range ch {
			t.report(os.Stderr)
		}
	}()
}
