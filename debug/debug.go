package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge   bool
	Convert bool
	Parse   bool
	Sort    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("YOPS_DEBUG_MERGE")
	d.Convert = boolEnv("YOPS_DEBUG_CONVERT")
	d.Parse = boolEnv("YOPS_DEBUG_PARSE")
	d.Sort = boolEnv("YOPS_DEBUG_SORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Convert() bool {
	return d.Convert
}
func Parse() bool {
	return d.Parse
}
func Sort() bool {
	return d.Sort
}
