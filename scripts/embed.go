// Package scripts embeds the interpreted workload sources. The sources carry
// the "script" build tag so the Go toolchain never compiles them; they are
// evaluated by yaegi at run time.
package scripts

import "embed"

//go:embed fibonacci.go prime.go string_ops.go loop.go
var FS embed.FS
