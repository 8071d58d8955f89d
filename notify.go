package main

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// notifyDesktop shows a desktop notification, best-effort and non-fatal.
func notifyDesktop(title, body string) {
	if body == "" || isWASM {
		return
	}
	// Skip on headless Linux without DISPLAY; beeep would error.
	if runtime.GOOS == "linux" && (os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "") {
		logDebug("notify skipped: no display")
		return
	}
	if err := beeep.Notify(title, body, ""); err != nil {
		logDebug("notify: %v", err)
	}
}
