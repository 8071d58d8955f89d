package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// formatTotal renders d with its two most significant units, e.g. "4 s 210 ms".
func formatTotal(d time.Duration) string {
	if d < time.Microsecond {
		return "0 us"
	}
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

// writeSummary prints one line per run plus the total wall time. Interpreted
// runs are compared against the compiled run of the same benchmark.
func writeSummary(w io.Writer, results []runResult, total time.Duration) {
	native := map[string]time.Duration{}
	for _, r := range results {
		if r.engine == engineGo {
			native[r.bench.name] = r.elapsed
		}
	}
	for _, r := range results {
		ms := float64(r.elapsed) / float64(time.Millisecond)
		line := fmt.Sprintf("%-24s %-6s %10.2f ms  %s allocated",
			r.bench.title, engineTitle(r.engine), ms, humanize.Bytes(r.allocBytes))
		if base, ok := native[r.bench.name]; ok && r.engine != engineGo && base > 0 {
			ratio := float64(r.elapsed) / float64(base)
			line += fmt.Sprintf("  (%sx %s)", humanize.FtoaWithDigits(ratio, 1), engineTitle(engineGo))
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%s runs in %s\n", humanize.Comma(int64(len(results))), formatTotal(total))
}

func completionMessage(results []runResult, total time.Duration) string {
	if len(results) == 0 {
		return ""
	}
	noun := "runs"
	if len(results) == 1 {
		noun = "run"
	}
	return fmt.Sprintf("%d benchmark %s finished in %s", len(results), noun, formatTotal(total))
}
