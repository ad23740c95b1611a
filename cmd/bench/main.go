// bench - game-object loader benchmark runner
//
// Loads every document in the testdata corpus repeatedly across a pool of
// goroutines and reports per-document throughput:
//   - Bytes and node counts
//   - Loads per second and MB/s
//   - Emitted (canonical) size vs source size
//
// Output: CSV and markdown summary. Pass -cpuprofile or -memprofile to
// write a pprof profile into the current directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/pkg/profile"

	"github.com/Neumenon/gameobject/gameobject"
)

type CaseResult struct {
	Name         string
	SourceBytes  int
	EmittedBytes int
	Nodes        int
	Embedded     int
	Loads        int
	Elapsed      time.Duration
	LoadsPerSec  float64
	MBPerSec     float64
}

func main() {
	iterations := flag.Int("n", 2000, "loads per document")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "concurrent loaders")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile")
	memProfile := flag.Bool("memprofile", false, "write an allocation profile")
	out := flag.String("out", ".", "directory for CSV and markdown output")
	flag.Parse()

	switch {
	case *cpuProfile:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case *memProfile:
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	testdataDir := findTestdata()
	if testdataDir == "" {
		fmt.Fprintln(os.Stderr, "Cannot find gameobject/testdata directory")
		os.Exit(1)
	}
	files, err := filepath.Glob(filepath.Join(testdataDir, "*.go"))
	if err != nil || len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No documents in %s\n", testdataDir)
		os.Exit(1)
	}
	sort.Strings(files)

	fmt.Fprintf(os.Stderr, "Game-Object Loader Benchmark\n")
	fmt.Fprintf(os.Stderr, "============================\n")
	fmt.Fprintf(os.Stderr, "Corpus: %s (%d documents), %d loads x %d workers\n\n", testdataDir, len(files), *iterations, *workers)

	var results []CaseResult
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skip %s: %v\n", path, err)
			continue
		}
		r, err := runCase(filepath.Base(path), data, *iterations, *workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skip %s: %v\n", path, err)
			continue
		}
		results = append(results, r)
	}

	csvPath := filepath.Join(*out, "bench_results.csv")
	if f, err := os.Create(csvPath); err == nil {
		writeCSV(f, results)
		f.Close()
		fmt.Fprintf(os.Stderr, "CSV written to: %s\n", csvPath)
	}

	mdPath := filepath.Join(*out, "BENCH_"+time.Now().Format("2006-01-02")+".md")
	if f, err := os.Create(mdPath); err == nil {
		writeMarkdown(f, results, *workers)
		f.Close()
		fmt.Fprintf(os.Stderr, "Markdown written to: %s\n", mdPath)
	}

	var totalBytes, totalLoads int
	var totalElapsed time.Duration
	for _, r := range results {
		totalBytes += r.SourceBytes * r.Loads
		totalLoads += r.Loads
		totalElapsed += r.Elapsed
	}
	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Documents:    %d\n", len(results))
	fmt.Printf("Loads:        %d in %s\n", totalLoads, totalElapsed.Round(time.Millisecond))
	if totalElapsed > 0 {
		fmt.Printf("Throughput:   %.0f loads/s, %.1f MB/s\n",
			float64(totalLoads)/totalElapsed.Seconds(),
			float64(totalBytes)/totalElapsed.Seconds()/(1<<20))
	}
}

// runCase loads one document n times split across workers.
func runCase(name string, data []byte, n, workers int) (CaseResult, error) {
	ent, err := gameobject.Load(data)
	if err != nil {
		return CaseResult{}, err
	}
	emitted := gameobject.EmitEntity(ent)

	if workers < 1 {
		workers = 1
	}
	jobs := make(chan struct{}, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if _, err := gameobject.Load(data); err != nil {
					select {
					case errs <- err:
					default:
					}
				}
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	select {
	case err := <-errs:
		return CaseResult{}, err
	default:
	}

	r := CaseResult{
		Name:         name,
		SourceBytes:  len(data),
		EmittedBytes: len(emitted),
		Nodes:        ent.Len(),
		Embedded:     len(ent.Embedded()),
		Loads:        n,
		Elapsed:      elapsed,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		r.LoadsPerSec = float64(n) / secs
		r.MBPerSec = float64(n*len(data)) / secs / (1 << 20)
	}
	return r, nil
}

func findTestdata() string {
	paths := []string{
		"gameobject/testdata",
		"../gameobject/testdata",
		"../../gameobject/testdata",
	}

	for _, p := range paths {
		if st, err := os.Stat(p); err == nil && st.IsDir() {
			return p
		}
	}

	return ""
}

func writeCSV(w io.Writer, results []CaseResult) {
	fmt.Fprintln(w, "name,source_bytes,emitted_bytes,nodes,embedded,loads,elapsed_ms,loads_per_sec,mb_per_sec")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%d,%d,%d,%d,%d,%.0f,%.2f\n",
			r.Name, r.SourceBytes, r.EmittedBytes, r.Nodes, r.Embedded,
			r.Loads, r.Elapsed.Milliseconds(), r.LoadsPerSec, r.MBPerSec)
	}
}

func writeMarkdown(w io.Writer, results []CaseResult, workers int) {
	fmt.Fprintf(w, "# Game-Object Loader Benchmark\n\n")
	fmt.Fprintf(w, "**Date:** %s  \n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(w, "**Corpus:** %d documents  \n", len(results))
	fmt.Fprintf(w, "**Workers:** %d (GOMAXPROCS %d)  \n\n", workers, runtime.GOMAXPROCS(0))

	sorted := make([]CaseResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MBPerSec < sorted[j].MBPerSec
	})

	fmt.Fprintf(w, "## Slowest Documents (by MB/s)\n\n")
	fmt.Fprintf(w, "| Document | Bytes | Nodes | MB/s |\n")
	fmt.Fprintf(w, "|----------|-------|-------|------|\n")
	for i := 0; i < min(5, len(sorted)); i++ {
		r := sorted[i]
		fmt.Fprintf(w, "| %s | %d | %d | %.2f |\n", r.Name, r.SourceBytes, r.Nodes, r.MBPerSec)
	}

	fmt.Fprintf(w, "\n## Methodology\n\n")
	fmt.Fprintf(w, "- **Load:** `gameobject.Load` with the builtin registry, payload decoding included\n")
	fmt.Fprintf(w, "- **Emitted:** size of `gameobject.EmitEntity` output for the loaded entity\n\n")

	fmt.Fprintf(w, "## Detailed Results\n\n")
	fmt.Fprintf(w, "| Document | Source | Emitted | Nodes | Embedded | Loads/s | MB/s |\n")
	fmt.Fprintf(w, "|----------|--------|---------|-------|----------|---------|------|\n")
	for _, r := range results {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %d | %.0f | %.2f |\n",
			truncateName(r.Name, 25), r.SourceBytes, r.EmittedBytes, r.Nodes, r.Embedded,
			r.LoadsPerSec, r.MBPerSec)
	}
}

func truncateName(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
