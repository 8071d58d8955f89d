package main

import "runtime"

// isWASM is true when running in a WebAssembly environment, where there is
// no file backend for logs and no desktop to notify.
var isWASM = (runtime.GOOS == "js" || runtime.GOARCH == "wasm")
