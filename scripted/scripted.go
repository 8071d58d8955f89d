// Package scripted runs the workloads as interpreted Go through yaegi.
//
// Each program is one embedded source from the scripts package, evaluated in
// its own interpreter with a restricted stdlib. The exported workload
// function is then pulled out as a typed Go func so the harness times it the
// same way it times compiled code.
package scripted

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"
	"sync"

	"coldbench/scripts"
	"coldbench/workload"

	"github.com/remeh/sizedwaitgroup"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

var (
	ErrUnknownProgram = errors.New("unknown program")
	ErrMissingSymbol  = errors.New("missing symbol")
)

// Program names, one per workload.
const (
	Fibonacci        = "fibonacci"
	Prime            = "prime"
	StringOperations = "string_ops"
	LoopSum          = "loop"
)

type source struct {
	file   string
	symbol string
}

var sources = map[string]source{
	Fibonacci:        {"fibonacci.go", "Fibonacci"},
	Prime:            {"prime.go", "CountPrimes"},
	StringOperations: {"string_ops.go", "StringOperations"},
	LoopSum:          {"loop.go", "LoopSum"},
}

// Names returns every known program name in sorted order.
func Names() []string {
	names := make([]string, 0, len(sources))
	for n := range sources {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// allowedPkgs is the only stdlib surface interpreted workloads may import.
var allowedPkgs = []string{
	"strings/strings",
}

func restrictedStdlib() interp.Exports {
	restricted := interp.Exports{}
	for _, key := range allowedPkgs {
		if syms, ok := stdlib.Symbols[key]; ok {
			restricted[key] = syms
		}
	}
	return restricted
}

// Program is an evaluated workload source.
type Program struct {
	Name string
	fn   reflect.Value
}

// Load evaluates the named program and resolves its workload function.
func Load(name string) (*Program, error) {
	src, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("load %q: %w", name, ErrUnknownProgram)
	}
	data, err := scripts.FS.ReadFile(src.file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.file, err)
	}
	i := interp.New(interp.Options{})
	if err := i.Use(restrictedStdlib()); err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	if _, err := i.Eval(string(stripGoBuildDirectives(data))); err != nil {
		return nil, fmt.Errorf("eval %s: %w", src.file, err)
	}
	v, err := i.Eval("main." + src.symbol)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", src.file, src.symbol, ErrMissingSymbol)
	}
	return &Program{Name: name, fn: v}, nil
}

// Func returns the workload function as an untyped value. Callers assert the
// concrete signature.
func (p *Program) Func() any {
	return p.fn.Interface()
}

// PrepareAll evaluates the named programs in parallel. Nothing is timed
// here; evaluation must finish before any workload runs.
func PrepareAll(names []string) (map[string]*Program, error) {
	var (
		mu    sync.Mutex
		out   = make(map[string]*Program, len(names))
		errs  []error
		limit = runtime.NumCPU()
	)
	wg := sizedwaitgroup.New(limit)
	for _, name := range names {
		wg.Add()
		go func(name string) {
			defer wg.Done()
			p, err := Load(name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			out[name] = p
		}(name)
	}
	wg.Wait()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// LoadSet evaluates the named programs (all of them when names is empty) and
// returns them as a workload set. Fields for programs not requested stay nil.
func LoadSet(names ...string) (workload.Set, error) {
	if len(names) == 0 {
		names = Names()
	}
	progs, err := PrepareAll(names)
	if err != nil {
		return workload.Set{}, err
	}
	var set workload.Set
	for name, p := range progs {
		if err := bind(&set, name, p); err != nil {
			return workload.Set{}, err
		}
	}
	return set, nil
}

func bind(set *workload.Set, name string, p *Program) error {
	fn := p.Func()
	ok := false
	switch name {
	case Fibonacci:
		set.Fibonacci, ok = fn.(func(int) int)
	case Prime:
		set.CountPrimes, ok = fn.(func(int) int)
	case StringOperations:
		set.StringOperations, ok = fn.(func(string, int) int)
	case LoopSum:
		set.LoopSum, ok = fn.(func(int) int)
	}
	if !ok {
		return fmt.Errorf("%s: unexpected signature %T: %w", name, fn, ErrMissingSymbol)
	}
	return nil
}

// stripGoBuildDirectives drops leading build constraint lines, which are for
// the Go toolchain only.
func stripGoBuildDirectives(src []byte) []byte {
	lines := strings.Split(string(src), "\n")
	i := 0
	for i < len(lines) {
		l := strings.TrimSpace(lines[i])
		if strings.HasPrefix(l, "package ") {
			break
		}
		if strings.HasPrefix(l, "//go:build") || strings.HasPrefix(l, "// +build") || l == "" {
			i++
			continue
		}
		break
	}
	if i > 0 {
		return []byte(strings.Join(lines[i:], "\n"))
	}
	return src
}
