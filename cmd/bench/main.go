package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/viniciusth/sais"
)

type variant struct {
	name   string
	config func(*sais.IndexBuilder) *sais.IndexBuilder
}

var variants = map[string]variant{
	"full":          {name: "full", config: func(b *sais.IndexBuilder) *sais.IndexBuilder { return b }},
	"no_lcp":        {name: "no_lcp", config: func(b *sais.IndexBuilder) *sais.IndexBuilder { return b.SkipLCP() }},
	"no_doc":        {name: "no_doc", config: func(b *sais.IndexBuilder) *sais.IndexBuilder { return b.SkipDocListing() }},
	"no_lcp_no_doc": {name: "no_lcp_no_doc", config: func(b *sais.IndexBuilder) *sais.IndexBuilder { return b.SkipLCP().SkipDocListing() }},
	"raw":           {name: "raw", config: func(b *sais.IndexBuilder) *sais.IndexBuilder { return b.CaseSensitive().SkipNormalization() }},
}

// shapes generate construction inputs of length n. They cover the
// recursion extremes: no repeated LMS substrings, a single symbol and
// long periods.
var shapes = map[string]func(r *rand.Rand, n int) []int{
	"random": func(r *rand.Rand, n int) []int {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = r.Intn(4) + 1
		}
		return seq
	},
	"repeated": func(r *rand.Rand, n int) []int {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = 1
		}
		return seq
	},
	"periodic": func(r *rand.Rand, n int) []int {
		period := []int{3, 1, 2, 1, 3, 3, 1}
		seq := make([]int, n)
		for i := range seq {
			seq[i] = period[i%len(period)]
		}
		return seq
	},
	"distinct": func(r *rand.Rand, n int) []int {
		seq := make([]int, n)
		for i, v := range r.Perm(n) {
			seq[i] = v + 1
		}
		return seq
	},
}

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(mm.done)
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	<-mm.done
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

// terminate appends the sentinel and returns the alphabet size.
func terminate(seq []int) ([]int, int) {
	k := 0
	for _, c := range seq {
		k = max(k, c)
	}
	return append(seq, 0), k + 1
}

func runConstruction(shape string, n, runs int, check bool) {
	gen, ok := shapes[shape]
	if !ok {
		fmt.Println("Invalid shape:", shape)
		os.Exit(1)
	}
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		seq, k := terminate(gen(r, n))

		runtime.GC()
		mm := newMemMonitor()
		start := time.Now()
		sa, err := sais.SuffixArray(seq, k)
		if err != nil {
			panic(err)
		}
		dur := time.Since(start)
		peak := mm.Stop()

		if check {
			if err := sais.Verify(seq, sa); err != nil {
				panic(err)
			}
		}
		fmt.Printf("construct,%s,%d,%d,%.0f,%d\n", shape, n, k, float64(dur.Nanoseconds()), peak)
	}
}

func measureBuild(words []string, config func(*sais.IndexBuilder) *sais.IndexBuilder) (time.Duration, uint64, uint64, *sais.Index) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	builder := sais.NewIndexBuilder(words)
	builder = config(builder)
	x, err := builder.Build()
	if err != nil {
		panic(err)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, x
}

func measureQuery(x *sais.Index, patterns []string, k int) (time.Duration, uint64, uint64) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	for _, p := range patterns {
		_ = x.FindKMatches(p, k)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc
}

func runIndex(v variant, M, W, P, K, Q, runs int, density densityType) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		var commonStr string
		words := make([]string, M)
		if density == densityHigh {
			common := make([]byte, P)
			for j := range common {
				common[j] = byte(r.Intn(26) + 'a')
			}
			commonStr = string(common)
			for i := range words {
				word := make([]byte, W)
				for j := range word {
					word[j] = byte(r.Intn(26) + 'a')
				}
				insertPos := r.Intn(W - P + 1)
				copy(word[insertPos:], common)
				words[i] = string(word)
			}
		} else {
			for i := range words {
				word := make([]byte, W)
				for j := range word {
					word[j] = byte(r.Intn(26) + 'a')
				}
				words[i] = string(word)
			}
		}
		bt, bp, ba, x := measureBuild(words, v.config)
		patterns := make([]string, Q)
		for i := range patterns {
			if density == densityHigh {
				patterns[i] = commonStr
			} else {
				wordIdx := r.Intn(M)
				start := r.Intn(W - P + 1)
				patterns[i] = words[wordIdx][start : start+P]
			}
		}
		qt, qp, qa := measureQuery(x, patterns, K)
		fmt.Printf("%s,%d,%d,%d,%d,%d,%s,%.0f,%d,%d,%.0f,%d,%d\n",
			v.name, M, W, P, K, Q, density,
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()), qp, qa)
	}
}

func main() {
	shape := flag.String("shape", "", "Construction input shape: random, repeated, periodic or distinct")
	n := flag.Int("n", 0, "Construction input length N")
	check := flag.Bool("check", false, "Verify every constructed array")
	variantName := flag.String("variant", "", "Index variant to benchmark")
	m := flag.Int("m", 0, "Number of words M")
	w := flag.Int("w", 0, "Word length W")
	p := flag.Int("p", 0, "Pattern length P")
	k := flag.Int("k", 0, "Number of matches K")
	q := flag.Int("q", 0, "Number of queries Q")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	d := flag.String("d", "low", "Density: low or high")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *shape != "" {
		if *n <= 0 {
			fmt.Println("Usage: go run main.go -shape=<shape> -n=<N> [-check] [-runs=<runs>]")
			os.Exit(1)
		}
		runConstruction(*shape, *n, *runs, *check)
		return
	}

	if *variantName == "" || *m <= 0 || *w <= 0 || *p <= 0 || *k <= 0 || *q <= 0 || *p > *w {
		fmt.Println("Usage: go run main.go -variant=<variant> -m=<M> -w=<W> -p=<P> -k=<K> -q=<Q> -d=<density> [-runs=<runs>]")
		fmt.Println("Available variants:", variants)
		os.Exit(1)
	}

	v, ok := variants[*variantName]
	if !ok {
		fmt.Println("Invalid variant:", *variantName)
		os.Exit(1)
	}

	runIndex(v, *m, *w, *p, *k, *q, *runs, densityType(*d))
}
