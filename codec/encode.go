package codec

import (
	"cmp"
	"encoding"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/signadot/yamlops/algebra"
)

var (
	decimalType         = reflect.TypeFor[decimal.Decimal]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

type encoder[T any] struct {
	ops algebra.Ops[T]
}

// Encode builds a tree for v under ops, one algebra call per value: scalars
// with the typed constructors, sequences by merging items into Empty in
// order, and mappings by merging entries into Empty, struct fields in
// declaration order and map entries in key order.
func Encode[T any](ops algebra.Ops[T], v any) (T, error) {
	e := &encoder[T]{ops: ops}
	return e.value(reflect.ValueOf(v), "")
}

func (e *encoder[T]) value(rv reflect.Value, path string) (T, error) {
	var zero T
	if !rv.IsValid() {
		return e.ops.Empty(), nil
	}
	t := rv.Type()
	if t == decimalType {
		return e.ops.CreateNumeric(rv.Interface().(decimal.Decimal)), nil
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && t.Implements(textMarshalerType) {
		d, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return zero, marshalErr(path, err)
		}
		return e.ops.CreateString(string(d)), nil
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return e.ops.Empty(), nil
		}
		return e.value(rv.Elem(), path)
	case reflect.Bool:
		return e.ops.CreateBoolean(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.ops.CreateNumeric(decimal.NewFromInt(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return e.ops.CreateNumeric(decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return zero, &MarshalError{FieldPath: path, Message: fmt.Sprintf("%v is not representable", f), Err: ErrRange}
		}
		if t.Kind() == reflect.Float32 {
			return e.ops.CreateNumeric(decimal.NewFromFloat32(float32(f))), nil
		}
		return e.ops.CreateNumeric(decimal.NewFromFloat(f)), nil
	case reflect.String:
		return e.ops.CreateString(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return e.ops.Empty(), nil
		}
		return e.list(rv, path)
	case reflect.Array:
		return e.list(rv, path)
	case reflect.Map:
		if rv.IsNil() {
			return e.ops.Empty(), nil
		}
		return e.mapping(rv, path)
	case reflect.Struct:
		return e.structure(rv, path)
	default:
		return zero, &MarshalError{FieldPath: path, Message: t.String(), Err: ErrUnsupportedType}
	}
}

func (e *encoder[T]) list(rv reflect.Value, path string) (T, error) {
	var zero T
	if rv.Len() == 0 {
		return algebra.ListOf(e.ops), nil
	}
	res := e.ops.Empty()
	for i := range rv.Len() {
		item, err := e.value(rv.Index(i), indexPath(path, i))
		if err != nil {
			return zero, err
		}
		res, err = e.ops.MergeToList(res, item)
		if err != nil {
			return zero, marshalErr(path, err)
		}
	}
	return res, nil
}

func (e *encoder[T]) mapping(rv reflect.Value, path string) (T, error) {
	var zero T
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := mapKeyString(iter.Key())
		if err != nil {
			return zero, marshalErr(path, err)
		}
		entries = append(entries, entry{key: k, val: iter.Value()})
	}
	if len(entries) == 0 {
		return e.ops.CreateMap(func(func(T, T) bool) {}), nil
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.key, b.key)
	})
	res := e.ops.Empty()
	for _, ent := range entries {
		v, err := e.value(ent.val, fieldPath(path, ent.key))
		if err != nil {
			return zero, err
		}
		res, err = e.ops.MergeToMap(res, e.ops.CreateString(ent.key), v)
		if err != nil {
			return zero, marshalErr(path, err)
		}
	}
	return res, nil
}

func mapKeyString(k reflect.Value) (string, error) {
	if k.Type().Implements(textMarshalerType) {
		d, err := k.Interface().(encoding.TextMarshaler).MarshalText()
		return string(d), err
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", fmt.Errorf("%w: map key %s", ErrUnsupportedType, k.Type())
}

func (e *encoder[T]) structure(rv reflect.Value, path string) (T, error) {
	var zero T
	res := e.ops.Empty()
	n := 0
	for _, f := range structFields(rv.Type()) {
		fv := rv.FieldByIndex(f.index)
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		if (fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface) && fv.IsNil() {
			continue
		}
		p := fieldPath(path, f.name)
		v, err := e.value(fv, p)
		if err != nil {
			return zero, err
		}
		res, err = e.ops.MergeToMap(res, e.ops.CreateString(f.name), v)
		if err != nil {
			return zero, marshalErr(p, err)
		}
		n++
	}
	if n == 0 {
		return e.ops.CreateMap(func(func(T, T) bool) {}), nil
	}
	return res, nil
}
