package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Pool     bool
	Validate bool
	Diff     bool
	Codegen  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Pool = boolEnv("ARBOR_DEBUG_POOL")
	d.Validate = boolEnv("ARBOR_DEBUG_VALIDATE")
	d.Diff = boolEnv("ARBOR_DEBUG_DIFF")
	d.Codegen = boolEnv("ARBOR_DEBUG_CODEGEN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Pool() bool {
	return d.Pool
}
func Validate() bool {
	return d.Validate
}
func Diff() bool {
	return d.Diff
}
func Codegen() bool {
	return d.Codegen
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}
