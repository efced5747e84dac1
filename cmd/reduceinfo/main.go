// Command reduceinfo prints the capabilities of the simulated reduction
// device and verifies device sums against the host reference.
//
// Usage:
//
//	reduceinfo [flags] [mode-name ...]
//
// Without arguments it runs every synchronization mode.
//
// Examples:
//
//	reduceinfo
//	reduceinfo -n 1048576 hybrid
//	reduceinfo -width 4 -maxgroup 64 simd
//	reduceinfo -group 32 barrier pointerjump
//	reduceinfo -bench
//	reduceinfo -list
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-reduce/internal/cpu"
	hostmath "github.com/cwbudde/algo-reduce/internal/vecmath"
	"github.com/cwbudde/algo-reduce/reduce"
	"github.com/cwbudde/algo-reduce/simt"
)

type modeEntry struct {
	name string
	mode reduce.Mode
}

var registry = []modeEntry{
	{"hybrid", reduce.ModeHybrid},
	{"barrier", reduce.ModeBarrier},
	{"simd", reduce.ModeSimd},
	{"pointerjump", reduce.ModePointerJump},
}

func main() {
	n := flag.Int("n", 65536, "number of input elements")
	amp := flag.Float64("amp", 1.0, "input amplitude")
	seed := flag.Int64("seed", 1, "input noise seed")
	group := flag.Int("group", 0, "group size override (0 = derive per pass)")
	width := flag.Int("width", 0, "device lockstep width (0 = detect from host CPU)")
	maxGroup := flag.Int("maxgroup", 0, "device max group size (0 = default)")
	par := flag.Int("par", 0, "resident groups (0 = one per logical CPU)")
	bench := flag.Bool("bench", false, "time each mode instead of verifying once")
	list := flag.Bool("list", false, "list available mode names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reduceinfo [flags] [mode-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints simulated device capabilities and verifies device sums\n")
		fmt.Fprintf(os.Stderr, "against the host reference. Without arguments it runs every mode.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  reduceinfo\n")
		fmt.Fprintf(os.Stderr, "  reduceinfo -n 1048576 hybrid\n")
		fmt.Fprintf(os.Stderr, "  reduceinfo -width 4 -maxgroup 64 simd\n")
		fmt.Fprintf(os.Stderr, "  reduceinfo -bench\n")
		fmt.Fprintf(os.Stderr, "  reduceinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}
	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching modes\n")
		os.Exit(1)
	}

	if *n < 1 {
		fmt.Fprintf(os.Stderr, "error: -n must be positive\n")
		os.Exit(1)
	}

	var opts []simt.DeviceOption
	if *width > 0 {
		opts = append(opts, simt.WithWidth(*width))
	}
	if *maxGroup > 0 {
		opts = append(opts, simt.WithMaxGroupSize(*maxGroup))
	}
	if *par > 0 {
		opts = append(opts, simt.WithParallelism(*par))
	}
	d, err := simt.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	data := makeInput(*n, *seed, *amp)

	printInfo(d)
	if *bench {
		printBench(d, entries, data, *group)
		return
	}
	printVerification(d, entries, data, *group)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []modeEntry {
	byName := make(map[string]modeEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []modeEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown mode %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// makeInput generates seeded noise in [-1, 1) and scales it to the
// requested amplitude.
func makeInput(n int, seed int64, amp float64) []float64 {
	raw := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range raw {
		raw[i] = rng.Float64()*2 - 1
	}

	data := make([]float64, n)
	vecmath.ScaleBlock(data, raw, amp)
	return data
}

func printInfo(d *simt.Device) {
	features := cpu.DetectFeatures()

	fmt.Printf("Host CPU\n")
	fmt.Printf("  architecture:   %s\n", features.Architecture)
	fmt.Printf("  simd level:     %s\n", cpu.Level(features))
	fmt.Printf("  float64 lanes:  %d\n", cpu.Float64Lanes(features))
	fmt.Printf("  sum kernel:     %s\n", hostmath.Implementation())
	fmt.Printf("\n")

	fmt.Printf("Device\n")
	fmt.Printf("  lockstep width:  %d\n", d.Width())
	fmt.Printf("  max group size:  %d\n", d.MaxGroupSize())
	fmt.Printf("  parallelism:     %d\n", d.Parallelism())
	fmt.Printf("  probed width:    %d\n", reduce.SimdWidth(d))
	fmt.Printf("\n")
}

func sumOptions(d *simt.Device, mode reduce.Mode, group int) []reduce.SumOption {
	opts := []reduce.SumOption{reduce.WithDevice(d), reduce.WithMode(mode)}
	if group > 0 {
		opts = append(opts, reduce.WithGroupSize(group))
	}
	return opts
}

func groupLabel(group int) string {
	if group > 0 {
		return strconv.Itoa(group)
	}
	return "auto"
}

func printVerification(d *simt.Device, entries []modeEntry, data []float64, group int) {
	want := hostmath.Sum(data)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Mode\tElements\tGroup\tDevice Sum\tHost Sum\tAbs Diff\n")
	fmt.Fprintf(tw, "----\t--------\t-----\t----------\t--------\t--------\n")

	for _, e := range entries {
		got, err := reduce.Sum(data, sumOptions(d, e.mode, group)...)
		if err != nil {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%v\t-\t-\n", e.mode, len(data), groupLabel(group), err)
			continue
		}

		diff := got - want
		if diff < 0 {
			diff = -diff
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.12g\t%.12g\t%.3g\n",
			e.mode, len(data), groupLabel(group), got, want, diff)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printBench(d *simt.Device, entries []modeEntry, data []float64, group int) {
	const minDuration = 200 * time.Millisecond
	bytes := float64(len(data) * 8)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Mode\tElements\tGroup\tIterations\tTotal [ms]\tThroughput [MB/s]\n")
	fmt.Fprintf(tw, "----\t--------\t-----\t----------\t----------\t-----------------\n")

	for _, e := range entries {
		opts := sumOptions(d, e.mode, group)
		if _, err := reduce.Sum(data, opts...); err != nil {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%v\t-\t-\n", e.mode, len(data), groupLabel(group), err)
			continue
		}

		iters := 0
		start := time.Now()
		var elapsed time.Duration
		for elapsed < minDuration {
			if _, err := reduce.Sum(data, opts...); err != nil {
				break
			}
			iters++
			elapsed = time.Since(start)
		}
		writeBenchRow(tw, e.mode.String(), len(data), groupLabel(group), iters, elapsed, bytes)
	}

	// Host baseline: the same totals without the simulated device.
	iters := 0
	start := time.Now()
	var elapsed time.Duration
	for elapsed < minDuration {
		_ = hostmath.Sum(data)
		iters++
		elapsed = time.Since(start)
	}
	writeBenchRow(tw, "host/"+hostmath.Implementation(), len(data), "-", iters, elapsed, bytes)

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func writeBenchRow(tw *tabwriter.Writer, name string, n int, group string, iters int, elapsed time.Duration, bytes float64) {
	ms := float64(elapsed.Nanoseconds()) / 1e6
	mbps := 0.0
	if elapsed > 0 {
		mbps = bytes * float64(iters) / elapsed.Seconds() / 1e6
	}
	fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%.1f\t%.1f\n", name, n, group, iters, ms, mbps)
}
