package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Load   bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("RPY_DEBUG_PARSE")
	d.Load = boolEnv("RPY_DEBUG_LOAD")
	d.Encode = boolEnv("RPY_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Load() bool {
	return d.Load
}
func Encode() bool {
	return d.Encode
}
