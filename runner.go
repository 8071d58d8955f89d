package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"coldbench/harness"
	"coldbench/scripted"
	"coldbench/workload"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	engineGo    = "go"
	engineYaegi = "yaegi"
)

var engineNames = []string{engineGo, engineYaegi}

var titleCaser = cases.Title(language.English)

// benchmark pairs a workload with its fixed input. measure runs it once
// through the harness using whichever implementation set it is handed.
type benchmark struct {
	name    string
	title   string
	program string
	measure func(s workload.Set) harness.Measurement[any]
}

func timed[T any](fn func() T) harness.Measurement[any] {
	m := harness.Run(fn)
	return harness.Measurement[any]{Result: m.Result, Elapsed: m.Elapsed}
}

var benchmarks = []benchmark{
	{
		name:    "fib",
		title:   fmt.Sprintf("fib(%d)", workload.FibN),
		program: scripted.Fibonacci,
		measure: func(s workload.Set) harness.Measurement[any] {
			fn := s.Fibonacci
			return timed(func() int { return fn(workload.FibN) })
		},
	},
	{
		name:    "prime",
		title:   fmt.Sprintf("Primes up to %d", workload.PrimeLimit),
		program: scripted.Prime,
		measure: func(s workload.Set) harness.Measurement[any] {
			fn := s.CountPrimes
			return timed(func() int { return fn(workload.PrimeLimit) })
		},
	},
	{
		name:    "strings",
		title:   "String operations",
		program: scripted.StringOperations,
		measure: func(s workload.Set) harness.Measurement[any] {
			fn := s.StringOperations
			return timed(func() workload.Passes {
				return workload.Passes(fn(workload.Text, workload.StringIterations))
			})
		},
	},
	{
		name:    "loop",
		title:   fmt.Sprintf("Loop sum to %d", workload.LoopN),
		program: scripted.LoopSum,
		measure: func(s workload.Set) harness.Measurement[any] {
			fn := s.LoopSum
			return timed(func() int { return fn(workload.LoopN) })
		},
	},
}

func benchmarkNames() []string {
	names := make([]string, len(benchmarks))
	for i, b := range benchmarks {
		names[i] = b.name
	}
	return names
}

func findBenchmark(name string) (benchmark, bool) {
	for _, b := range benchmarks {
		if b.name == name {
			return b, true
		}
	}
	return benchmark{}, false
}

// selectBenchmarks resolves names in the given order; "all" expands to the
// whole catalog.
func selectBenchmarks(names []string) ([]benchmark, error) {
	names = expandAll(cleanList(names), benchmarkNames())
	if len(names) == 0 {
		return nil, fmt.Errorf("no benchmarks selected")
	}
	out := make([]benchmark, 0, len(names))
	for _, n := range names {
		b, ok := findBenchmark(n)
		if !ok {
			return nil, fmt.Errorf("unknown benchmark %q (have %s)", n, strings.Join(benchmarkNames(), ", "))
		}
		out = append(out, b)
	}
	return out, nil
}

func selectEngines(names []string) ([]string, error) {
	names = expandAll(cleanList(names), engineNames)
	if len(names) == 0 {
		return nil, fmt.Errorf("no engines selected")
	}
	for _, n := range names {
		if n != engineGo && n != engineYaegi {
			return nil, fmt.Errorf("unknown engine %q (have %s)", n, strings.Join(engineNames, ", "))
		}
	}
	return names, nil
}

func expandAll(names, all []string) []string {
	for _, n := range names {
		if n == "all" {
			return append([]string(nil), all...)
		}
	}
	return names
}

// prepareEngines builds an implementation set per engine. Interpreted
// programs are evaluated here, before anything is timed.
func prepareEngines(engines []string, benches []benchmark) (map[string]workload.Set, error) {
	sets := make(map[string]workload.Set, len(engines))
	for _, e := range engines {
		switch e {
		case engineGo:
			sets[e] = workload.Native
		case engineYaegi:
			programs := make([]string, len(benches))
			for i, b := range benches {
				programs[i] = b.program
			}
			start := time.Now()
			set, err := scripted.LoadSet(programs...)
			if err != nil {
				return nil, fmt.Errorf("prepare %s: %w", e, err)
			}
			logDebug("prepared %d interpreted programs in %v", len(programs), time.Since(start))
			sets[e] = set
		}
	}
	return sets, nil
}

func engineTitle(name string) string {
	return titleCaser.String(name)
}

type runResult struct {
	bench      benchmark
	engine     string
	result     any
	elapsed    time.Duration
	allocBytes uint64
}

type runner struct {
	out     io.Writer
	sets    map[string]workload.Set
	results []runResult
}

// run executes every benchmark on every engine, one at a time. Cancellation
// is only honoured between runs; a started workload always completes.
func (r *runner) run(ctx context.Context, benches []benchmark, engines []string) error {
	for _, b := range benches {
		for _, e := range engines {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.runOne(b, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *runner) runOne(b benchmark, engine string) error {
	set, ok := r.sets[engine]
	if !ok {
		return fmt.Errorf("engine %q not prepared", engine)
	}
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	m := b.measure(set)
	runtime.ReadMemStats(&after)

	label := engineTitle(engine) + " " + b.title
	if err := harness.Report(r.out, label, m); err != nil {
		return fmt.Errorf("report %s: %w", label, err)
	}
	logDebug("%s: %v", label, m.Elapsed)
	r.results = append(r.results, runResult{
		bench:      b,
		engine:     engine,
		result:     m.Result,
		elapsed:    m.Elapsed,
		allocBytes: after.TotalAlloc - before.TotalAlloc,
	})
	return nil
}

// mismatches lists benchmarks whose engines disagreed on the result.
func (r *runner) mismatches() []string {
	first := map[string]runResult{}
	var out []string
	for _, res := range r.results {
		ref, ok := first[res.bench.name]
		if !ok {
			first[res.bench.name] = res
			continue
		}
		if ref.result != res.result {
			out = append(out, fmt.Sprintf("%s: %s=%v %s=%v",
				res.bench.name, ref.engine, ref.result, res.engine, res.result))
		}
	}
	return out
}
