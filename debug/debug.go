// Package debug gates diagnostic stderr output behind COSY_DEBUG_*
// environment variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Include bool
	Expand  bool
	Merge   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Include = boolEnv("COSY_DEBUG_INCLUDE")
	d.Expand = boolEnv("COSY_DEBUG_EXPAND")
	d.Merge = boolEnv("COSY_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Include() bool {
	return d.Include
}
func Expand() bool {
	return d.Expand
}
func Merge() bool {
	return d.Merge
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
