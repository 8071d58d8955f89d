package main

import (
	"encoding/json"
	"os"
	"strings"
)

const SETTINGS_VERSION = 1

const settingsFile = "coldbench.json"

var gs settings = gsdef

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	Benchmarks: []string{"all"},
	Engines:    []string{engineGo},
	LogDir:     "logs",
}

// settings control which runs happen and how they are reported. Workload
// inputs are fixed and deliberately absent.
type settings struct {
	Version int

	Benchmarks []string
	Engines    []string

	Summary   bool
	Notify    bool
	Debug     bool
	LogToFile bool
	LogDir    string
}

// loadSettings reads path over the defaults. A missing or unreadable file, or
// one written for another version, leaves the defaults in place.
func loadSettings(path string) bool {
	gs = cloneSettings(gsdef)
	data, err := os.ReadFile(path)
	if err != nil {
		settingsLoaded = false
		return false
	}

	tmp := cloneSettings(gsdef)
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("settings %s: %v", path, err)
		settingsLoaded = false
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		logWarn("settings %s: version %d, want %d; using defaults", path, tmp.Version, SETTINGS_VERSION)
		settingsLoaded = false
		return false
	}
	gs = tmp
	normalizeSettings(&gs)
	settingsLoaded = true
	return true
}

func normalizeSettings(s *settings) {
	s.Benchmarks = cleanList(s.Benchmarks)
	if len(s.Benchmarks) == 0 {
		s.Benchmarks = append([]string(nil), gsdef.Benchmarks...)
	}
	s.Engines = cleanList(s.Engines)
	if len(s.Engines) == 0 {
		s.Engines = append([]string(nil), gsdef.Engines...)
	}
	if strings.TrimSpace(s.LogDir) == "" {
		s.LogDir = gsdef.LogDir
	}
}

func cloneSettings(s settings) settings {
	s.Benchmarks = append([]string(nil), s.Benchmarks...)
	s.Engines = append([]string(nil), s.Engines...)
	return s
}

func saveSettings(path string) error {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		return err
	}
	return os.Rename(path+".tmp", path)
}

// cleanList lowercases, trims and de-duplicates entries, dropping blanks.
func cleanList(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, v := range in {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
