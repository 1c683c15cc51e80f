package haar

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cwbudde/algo-dwt/internal/dwtypes"
)

// WisdomKey identifies a transform configuration on a given CPU.
type WisdomKey struct {
	Size        int
	CPUFeatures uint64
}

// WisdomEntry records the fastest measured kernel strategy for a key.
type WisdomEntry struct {
	Key       WisdomKey
	Strategy  KernelStrategy
	Timestamp time.Time
}

// Wisdom caches measured kernel choices. It is safe for concurrent use.
//
// The text format has one entry per line:
//
//	size:cpu_features:strategy:unix_timestamp
//
// Blank lines and lines starting with '#' are ignored.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[WisdomKey]WisdomEntry
}

// DefaultWisdom is consulted by ResolveStrategy for KernelAuto.
var DefaultWisdom = NewWisdom()

// NewWisdom creates an empty wisdom cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[WisdomKey]WisdomEntry)}
}

// Store adds or replaces an entry.
func (w *Wisdom) Store(entry WisdomEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[entry.Key] = entry
}

// Lookup returns the entry for key, if any.
func (w *Wisdom) Lookup(key WisdomKey) (WisdomEntry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	entry, ok := w.entries[key]

	return entry, ok
}

// LookupStrategy returns the recorded strategy for a size and feature mask.
func (w *Wisdom) LookupStrategy(size int, cpuFeatures uint64) (KernelStrategy, bool) {
	entry, ok := w.Lookup(WisdomKey{Size: size, CPUFeatures: cpuFeatures})
	if !ok {
		return KernelAuto, false
	}

	return entry.Strategy, true
}

// Len returns the number of entries.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	clear(w.entries)
}

// Export writes all entries ordered by size, then CPU features.
func (w *Wisdom) Export(out io.Writer) error {
	w.mu.RLock()
	entries := make([]WisdomEntry, 0, len(w.entries))

	for _, entry := range w.entries {
		entries = append(entries, entry)
	}
	w.mu.RUnlock()

	slices.SortFunc(entries, func(a, b WisdomEntry) int {
		if a.Key.Size != b.Key.Size {
			return a.Key.Size - b.Key.Size
		}

		switch {
		case a.Key.CPUFeatures < b.Key.CPUFeatures:
			return -1
		case a.Key.CPUFeatures > b.Key.CPUFeatures:
			return 1
		default:
			return 0
		}
	})

	bw := bufio.NewWriter(out)
	for _, entry := range entries {
		_, err := fmt.Fprintf(bw, "%d:%d:%s:%d\n",
			entry.Key.Size, entry.Key.CPUFeatures, entry.Strategy, entry.Timestamp.Unix())
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Import reads entries in the Export format and stores them.
// Nothing is stored if any line is malformed.
func (w *Wisdom) Import(in io.Reader) error {
	var parsed []WisdomEntry

	scanner := bufio.NewScanner(in)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseWisdomLine(line)
		if err != nil {
			return fmt.Errorf("wisdom line %d: %w", lineNo, err)
		}

		parsed = append(parsed, entry)
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for _, entry := range parsed {
		w.entries[entry.Key] = entry
	}

	return nil
}

func parseWisdomLine(line string) (WisdomEntry, error) {
	fields := strings.Split(line, ":")
	if len(fields) != 4 {
		return WisdomEntry{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	size, err := strconv.Atoi(fields[0])
	if err != nil || size < 1 {
		return WisdomEntry{}, fmt.Errorf("invalid size %q", fields[0])
	}

	features, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("invalid cpu features %q", fields[1])
	}

	strategy, ok := dwtypes.ParseKernelStrategy(fields[2])
	if !ok || strategy == KernelAuto {
		return WisdomEntry{}, fmt.Errorf("invalid strategy %q", fields[2])
	}

	unix, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("invalid timestamp %q", fields[3])
	}

	return WisdomEntry{
		Key:       WisdomKey{Size: size, CPUFeatures: features},
		Strategy:  strategy,
		Timestamp: time.Unix(unix, 0),
	}, nil
}
