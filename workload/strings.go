package workload

import (
	"strconv"
	"strings"
)

// Passes is the number of string-operations passes performed.
type Passes int

func (p Passes) String() string {
	return strconv.Itoa(int(p)) + " iterations"
}

// Derivations holds everything one pass derives from the source text.
type Derivations struct {
	Upper    string
	Lower    string
	Replaced string
	Joined   string
	Split    []string
}

// Derive computes every derivation from text. Each value comes from the
// original text; none feeds another.
func Derive(text string) Derivations {
	return Derivations{
		Upper:    strings.ToUpper(text),
		Lower:    strings.ToLower(text),
		Replaced: strings.ReplaceAll(text, Search, Replacement),
		Joined:   strings.Join(JoinParts, Separator),
		Split:    strings.Split(text, SplitSep),
	}
}

// StringOperations derives from text iterations times and throws the
// results away.
func StringOperations(text string, iterations int) Passes {
	var n Passes
	for i := 0; i < iterations; i++ {
		_ = Derive(text)
		n++
	}
	return n
}
