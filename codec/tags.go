package codec

import (
	"reflect"
	"strings"
	"sync"
)

// fieldInfo describes a struct field as encoded.
type fieldInfo struct {
	name      string
	index     []int
	omitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// structFields returns the encoded fields of t in declaration order. Fields
// of embedded structs without a name in their tag are promoted, and a name
// declared at a shallower depth hides deeper ones.
func structFields(t reflect.Type) []fieldInfo {
	if v, ok := fieldCache.Load(t); ok {
		return v.([]fieldInfo)
	}
	var res []fieldInfo
	seen := map[string]int{}
	var walk func(t reflect.Type, index []int)
	walk = func(t reflect.Type, index []int) {
		for i := range t.NumField() {
			f := t.Field(i)
			name, opts, _ := strings.Cut(f.Tag.Get("yops"), ",")
			if name == "-" && opts == "" {
				continue
			}
			idx := append(append([]int(nil), index...), i)
			if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
				walk(f.Type, idx)
				continue
			}
			if !f.IsExported() {
				continue
			}
			if name == "" {
				name = f.Name
			}
			if j, ok := seen[name]; ok {
				if len(res[j].index) > len(idx) {
					res[j] = fieldInfo{name: name, index: idx, omitEmpty: hasOpt(opts, "omitempty")}
				}
				continue
			}
			seen[name] = len(res)
			res = append(res, fieldInfo{name: name, index: idx, omitEmpty: hasOpt(opts, "omitempty")})
		}
	}
	walk(t, nil)
	fieldCache.Store(t, res)
	return res
}

func hasOpt(opts, opt string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == opt {
			return true
		}
	}
	return false
}
