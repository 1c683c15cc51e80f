// Command benchhaar times the Haar kernel strategies per transform size and
// optionally exports the winners as wisdom.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"

	algodwt "github.com/cwbudde/algo-dwt"
	"github.com/cwbudde/algo-dwt/internal/cpu"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeRoundtrip = "roundtrip"

	variantCopy    = "copy"
	variantInPlace = "inplace"
)

type benchResult struct {
	size     int
	strategy algodwt.KernelStrategy
	nsPerOp  float64
}

func main() {
	var (
		sizeList   = flag.String("sizes", "1024,4096,16384,65536", "comma-separated sizes (powers of two)")
		iters      = flag.Int("iters", 50, "benchmark iterations")
		warmup     = flag.Int("warmup", 5, "warmup iterations")
		emit       = flag.Bool("emit", false, "emit RecordWisdom lines")
		wisdomFile = flag.String("wisdom", "", "export wisdom to file")
		mode       = flag.String("mode", modeForward, "benchmark mode: forward, inverse, roundtrip, all")
		variant    = flag.String("variant", variantCopy, "transform variant: copy, inplace, all")
		seed       = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))
	features := cpu.DetectFeatures()

	fmt.Printf("arch=%s wide=%v iters=%d warmup=%d\n", features.Architecture, features.WideIssue(), *iters, *warmup)
	fmt.Printf("%8s  %10s  %8s  %10s  %12s\n", "size", "mode", "variant", "kernel", "ns/op")

	var bestResults []benchResult

	for _, n := range sizes {
		for _, runMode := range resolveModes(*mode) {
			for _, runVariant := range resolveVariants(*variant) {
				results := benchmarkSize(rnd, n, *iters, *warmup, runMode, runVariant)
				if len(results) == 0 {
					continue
				}

				sort.Slice(results, func(i, j int) bool {
					return results[i].nsPerOp < results[j].nsPerOp
				})

				for _, res := range results {
					fmt.Printf("%8d  %10s  %8s  %10s  %12.1f\n", n, runMode, runVariant, res.strategy, res.nsPerOp)
				}

				if runMode == modeForward && runVariant == variantCopy {
					best := results[0]
					best.size = n
					bestResults = append(bestResults, best)

					if *emit {
						fmt.Printf("algodwt.RecordWisdom(%d, algodwt.%s)\n", n, strategyConst(best.strategy))
					}
				}
			}
		}
	}

	if *wisdomFile != "" {
		if err := exportWisdom(*wisdomFile, bestResults); err != nil {
			fmt.Fprintf(os.Stderr, "error exporting wisdom: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\nWisdom exported to: %s\n", *wisdomFile)
	}
}

func benchmarkSize(rnd *rand.Rand, n, iters, warmup int, mode, variant string) []benchResult {
	src := make([]float64, n)
	for i := range src {
		src[i] = rnd.Float64()*2 - 1
	}

	strategies := []algodwt.KernelStrategy{
		algodwt.KernelGeneric,
		algodwt.KernelUnrolled,
	}

	results := make([]benchResult, 0, len(strategies))

	for _, strategy := range strategies {
		h := algodwt.Haar{Strategy: strategy}

		coeffs := make([]float64, n)
		if err := h.Forward(coeffs, src); err != nil {
			fmt.Fprintf(os.Stderr, "size %d: %v\n", n, err)
			return nil
		}

		buf := make([]float64, n)
		run := func() error {
			return runMode(h, buf, src, coeffs, mode, variant)
		}

		ok := true

		for range warmup {
			if err := run(); err != nil {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		runtime.GC()

		start := cpu.ReadCycleCounter()

		for range iters {
			if err := run(); err != nil {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		results = append(results, benchResult{
			strategy: strategy,
			nsPerOp:  float64(cpu.CyclesSince(start)) / float64(iters),
		})
	}

	return results
}

// runMode performs one timed operation. The in-place variants refill buf
// first, so both variants pay for the same copy.
func runMode(h algodwt.Haar, buf, src, coeffs []float64, mode, variant string) error {
	inPlace := variant == variantInPlace

	switch mode {
	case modeInverse:
		if inPlace {
			copy(buf, coeffs)
			return h.InverseInPlace(buf)
		}

		return h.Inverse(buf, coeffs)
	case modeRoundtrip:
		if inPlace {
			copy(buf, src)

			if err := h.ForwardInPlace(buf); err != nil {
				return err
			}

			return h.InverseInPlace(buf)
		}

		if err := h.Forward(buf, src); err != nil {
			return err
		}

		return h.Inverse(buf, buf)
	default:
		if inPlace {
			copy(buf, src)
			return h.ForwardInPlace(buf)
		}

		return h.Forward(buf, src)
	}
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeRoundtrip}
	case modeInverse, modeRoundtrip, modeForward:
		return []string{mode}
	default:
		return []string{modeForward}
	}
}

func resolveVariants(variant string) []string {
	switch variant {
	case "all":
		return []string{variantCopy, variantInPlace}
	case variantInPlace:
		return []string{variantInPlace}
	default:
		return []string{variantCopy}
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || !algodwt.IsPowerOf2(n) {
			fmt.Fprintf(os.Stderr, "skipping size %q: not a power of two\n", part)
			continue
		}

		out = append(out, n)
	}

	return out
}

func strategyConst(strategy algodwt.KernelStrategy) string {
	switch strategy {
	case algodwt.KernelGeneric:
		return "KernelGeneric"
	case algodwt.KernelUnrolled:
		return "KernelUnrolled"
	default:
		return "KernelAuto"
	}
}

// exportWisdom writes the fastest forward strategy per size to a wisdom file.
func exportWisdom(filename string, results []benchResult) error {
	wisdom := algodwt.NewWisdom()

	for _, res := range results {
		wisdom.Store(algodwt.NewWisdomEntry(res.size, res.strategy))
	}

	return algodwt.ExportWisdomTo(filename, wisdom)
}
