// Command coldbench runs the cold single-shot benchmarks on the compiled and
// interpreted engines and prints one two-line report per run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(runMain(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func runMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("coldbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		settingsPath = fs.String("settings", settingsFile, "path to the JSON settings file")
		benchList    = fs.String("bench", "", "comma separated benchmarks to run, or all")
		engineList   = fs.String("engine", "", "comma separated engines (go, yaegi), or all")
		summary      = fs.Bool("summary", false, "print a per-run summary to stderr")
		notify       = fs.Bool("notify", false, "show a desktop notification when finished")
		debug        = fs.Bool("debug", false, "verbose/debug logging")
		list         = fs.Bool("list", false, "list benchmarks and exit")
		save         = fs.Bool("saveSettings", false, "write the effective settings back to -settings")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logOutput = stderr
	setupLogging(false, false, gsdef.LogDir)
	loadSettings(*settingsPath)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bench":
			gs.Benchmarks = strings.Split(*benchList, ",")
		case "engine":
			gs.Engines = strings.Split(*engineList, ",")
		case "summary":
			gs.Summary = *summary
		case "notify":
			gs.Notify = *notify
		case "debug":
			gs.Debug = *debug
		}
	})
	normalizeSettings(&gs)
	setupLogging(gs.Debug, gs.LogToFile, gs.LogDir)
	if settingsLoaded {
		logDebug("loaded settings from %s", *settingsPath)
	}

	if *list {
		for _, b := range benchmarks {
			fmt.Fprintf(stdout, "%-8s %s\n", b.name, b.title)
		}
		return 0
	}
	if *save {
		if err := saveSettings(*settingsPath); err != nil {
			logError("save settings: %v", err)
			return 1
		}
	}

	benches, err := selectBenchmarks(gs.Benchmarks)
	if err != nil {
		logError("%v", err)
		return 1
	}
	engines, err := selectEngines(gs.Engines)
	if err != nil {
		logError("%v", err)
		return 1
	}
	sets, err := prepareEngines(engines, benches)
	if err != nil {
		logError("%v", err)
		return 1
	}

	r := &runner{out: stdout, sets: sets}
	start := time.Now()
	runErr := r.run(ctx, benches, engines)
	total := time.Since(start)

	code := 0
	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			logWarn("interrupted after %d runs", len(r.results))
		} else {
			logError("%v", runErr)
		}
		code = 1
	}
	for _, m := range r.mismatches() {
		logWarn("result mismatch: %s", m)
		code = 1
	}
	if gs.Summary {
		writeSummary(stderr, r.results, total)
	}
	if gs.Notify {
		notifyDesktop("coldbench", completionMessage(r.results, total))
	}
	return code
}
