package algodwt

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/algo-dwt/internal/cpu"
	"github.com/cwbudde/algo-dwt/internal/haar"
)

// ImportWisdom loads wisdom data from a file.
// The file should be in the format produced by ExportWisdom.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := haar.DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ExportWisdom saves the current wisdom cache to a file.
// The file can be loaded later with ImportWisdom.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, haar.DefaultWisdom)
}

// ExportWisdomTo saves a specific wisdom cache to a file.
// This is useful for exporting benchmark results from custom wisdom instances.
func ExportWisdomTo(filename string, wisdom *Wisdom) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	defer file.Close()

	if err := wisdom.Export(file); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}

// Wisdom is a type alias for the internal wisdom cache.
// It stores the fastest measured kernel strategy per transform size and
// CPU feature set.
type Wisdom = haar.Wisdom

// WisdomEntry is a single wisdom record.
type WisdomEntry = haar.WisdomEntry

// WisdomKey identifies a wisdom record.
type WisdomKey = haar.WisdomKey

// NewWisdom creates a new empty wisdom cache.
func NewWisdom() *Wisdom {
	return haar.NewWisdom()
}

// ImportWisdomFromString loads wisdom data from a string.
// This is useful for embedding wisdom data in compiled binaries.
func ImportWisdomFromString(data string) error {
	err := haar.DefaultWisdom.Import(strings.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to import wisdom from string: %w", err)
	}

	return nil
}

// RecordWisdom stores strategy as the best choice for size-point transforms
// on the current CPU in the global wisdom cache.
func RecordWisdom(size int, strategy KernelStrategy) {
	haar.DefaultWisdom.Store(NewWisdomEntry(size, strategy))
}

// NewWisdomEntry builds an entry for size-point transforms on the current CPU.
func NewWisdomEntry(size int, strategy KernelStrategy) WisdomEntry {
	return WisdomEntry{
		Key:       WisdomKey{Size: size, CPUFeatures: cpu.DetectFeatures().Mask()},
		Strategy:  strategy,
		Timestamp: time.Now(),
	}
}

// ClearWisdom removes all entries from the wisdom cache.
func ClearWisdom() {
	haar.DefaultWisdom.Clear()
}

// WisdomLen returns the number of entries in the wisdom cache.
func WisdomLen() int {
	return haar.DefaultWisdom.Len()
}
