package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/king54346/bitonic"
	"github.com/king54346/bitonic/forkjoin"
	"github.com/king54346/bitonic/internal/randvec"
	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

const maxBits = 32

type options struct {
	bits      int
	workers   int32
	threshold int
	orderName string
	order     bitonic.SortOrder
	verbose   bool
}

func defaultOptions() *options {
	return &options{
		threshold: bitonic.ParallelThreshold,
		orderName: bitonic.Ascending.String(),
	}
}

func (o *options) parse(arg string) error {
	bits, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("error parsing argument %q: %w", arg, err)
	}
	if bits < 0 || bits > maxBits {
		return fmt.Errorf("bits must be between 0 and %d, got %d", maxBits, bits)
	}
	o.bits = bits

	switch o.orderName {
	case bitonic.Ascending.String():
		o.order = bitonic.Ascending
	case bitonic.Descending.String():
		o.order = bitonic.Descending
	default:
		return fmt.Errorf("unknown order %q", o.orderName)
	}
	return nil
}

type result struct {
	name     string
	elapsed  time.Duration
	sortedOK bool
}

func run(stdout, stderr io.Writer, opts *options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	n := 1 << opts.bits
	fmt.Fprintf(stdout, "sorting %d integers (%.1f MB)\n", n, float64(n*4)/1024/1024)
	fmt.Fprintf(stdout, "cpu info: %d logical cores, GOMAXPROCS %d, features [%s]\n",
		runtime.NumCPU(), runtime.GOMAXPROCS(0), cpuFeatures())

	pool := forkjoin.NewForkJoinPool(opts.workers)
	logger.Debug("pool created", "workers", pool.Cap(), "threshold", opts.threshold)

	configs := []struct {
		name string
		cfg  bitonic.Config
	}{
		{"seq_sort", bitonic.SequentialConfig()},
		{"par_sort", bitonic.Config{Threshold: opts.threshold, Pool: pool}},
	}

	results := make([]result, 0, len(configs))
	for _, c := range configs {
		r, err := timedSort(c.name, n, opts.order, c.cfg)
		if err != nil {
			return err
		}
		logger.Debug("sort finished", "name", r.name, "elapsed", r.elapsed, "sorted", r.sortedOK)
		fmt.Fprintf(stdout, "%s: sorted %d integers in %.6f seconds\n", r.name, n, r.elapsed.Seconds())
		results = append(results, r)
	}
	logger.Debug("forks", "count", pool.Forks())

	if bad := lo.Filter(results, func(r result, _ int) bool { return !r.sortedOK }); len(bad) > 0 {
		return fmt.Errorf("%s produced unsorted output", bad[0].name)
	}

	seq, par := results[0].elapsed, results[1].elapsed
	if par > 0 {
		fmt.Fprintf(stdout, "speed up: %.2fx\n", seq.Seconds()/par.Seconds())
	}
	return nil
}

func timedSort(name string, n int, order bitonic.SortOrder, cfg bitonic.Config) (result, error) {
	x := randvec.Uint32s(n)
	start := time.Now()
	if err := bitonic.SortByConfig(x, bitonic.Comparer[uint32](order), cfg); err != nil {
		return result{}, fmt.Errorf("%s: failed to sort: %w", name, err)
	}
	elapsed := time.Since(start)
	return result{
		name:     name,
		elapsed:  elapsed,
		sortedOK: bitonic.IsSorted(x, order),
	}, nil
}

func cpuFeatures() string {
	features := map[string]bool{
		"sse4.2":  cpu.X86.HasSSE42,
		"avx2":    cpu.X86.HasAVX2,
		"avx512f": cpu.X86.HasAVX512F,
		"asimd":   cpu.ARM64.HasASIMD,
		"sve":     cpu.ARM64.HasSVE,
	}
	names := lo.Keys(lo.PickBy(features, func(_ string, ok bool) bool { return ok }))
	slices.Sort(names)
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}
