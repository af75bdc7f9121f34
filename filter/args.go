package filter

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// VerboseFlag is the only argument the filter recognizes. Matching is exact
// and case-sensitive.
const VerboseFlag = "--verbose"

var recognizedFlags = mapset.NewSet(VerboseFlag)

// scanArgs reads the script-style argument list of a filter input and reports
// whether verbose diagnostics were requested. Arguments can only raise
// verbosity above the configured default, never lower it. Unknown flags are
// logged once each.
func (e *Evaluator) scanArgs(args []string) bool {
	verbose := e.Verbose
	unknown := mapset.NewSet[string]()
	for _, arg := range args {
		switch {
		case recognizedFlags.Contains(arg):
			verbose = true
		case strings.HasPrefix(arg, "-"):
			unknown.Add(arg)
		}
	}
	for _, arg := range unknown.ToSlice() {
		e.logger().Warnf("ignoring unrecognized argument %s", arg)
	}
	return verbose
}
