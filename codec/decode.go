package codec

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/signadot/yamlops/algebra"
)

type decoder[T any] struct {
	ops algebra.Ops[T]
}

// Decode reads node into the value out points to. Missing struct fields and
// Empty values leave the target at its zero value. Untyped scalars decoded
// into an interface are inferred the way algebra.Convert infers them.
func Decode[T any](ops algebra.Ops[T], node T, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnmarshalError{Message: fmt.Sprintf("%T", out), Err: ErrTarget}
	}
	d := &decoder[T]{ops: ops}
	return d.value(node, rv.Elem(), "")
}

func (d *decoder[T]) value(node T, rv reflect.Value, path string) error {
	kind := d.ops.Kind(node)
	t := rv.Type()
	if t.Kind() == reflect.Pointer {
		if kind == algebra.EmptyKind {
			rv.SetZero()
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(t.Elem()))
		}
		return d.value(node, rv.Elem(), path)
	}
	if kind == algebra.EmptyKind {
		rv.SetZero()
		return nil
	}
	if t == decimalType {
		n, err := d.ops.GetNumberValue(node)
		if err != nil {
			return unmarshalErr(path, err)
		}
		rv.Set(reflect.ValueOf(n))
		return nil
	}
	if rv.CanAddr() && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		s, err := d.ops.GetStringValue(node)
		if err != nil {
			return unmarshalErr(path, err)
		}
		if err := rv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return unmarshalErr(path, err)
		}
		return nil
	}
	switch t.Kind() {
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: path, Message: t.String(), Err: ErrUnsupportedType}
		}
		v, err := d.anyValue(node, path)
		if err != nil {
			return err
		}
		if v == nil {
			rv.SetZero()
			return nil
		}
		rv.Set(reflect.ValueOf(v))
		return nil
	case reflect.Bool:
		b, err := d.ops.GetBooleanValue(node)
		if err != nil {
			return unmarshalErr(path, err)
		}
		rv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := d.integer(node, path)
		if err != nil {
			return err
		}
		bi := n.BigInt()
		if !bi.IsInt64() || rv.OverflowInt(bi.Int64()) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%s overflows %s", n, t), Err: ErrRange}
		}
		rv.SetInt(bi.Int64())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := d.integer(node, path)
		if err != nil {
			return err
		}
		bi := n.BigInt()
		if bi.Sign() < 0 || !bi.IsUint64() || rv.OverflowUint(bi.Uint64()) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%s overflows %s", n, t), Err: ErrRange}
		}
		rv.SetUint(bi.Uint64())
		return nil
	case reflect.Float32, reflect.Float64:
		n, err := d.ops.GetNumberValue(node)
		if err != nil {
			return unmarshalErr(path, err)
		}
		bits := 64
		if t.Kind() == reflect.Float32 {
			bits = 32
		}
		f, err := strconv.ParseFloat(n.String(), bits)
		if err != nil {
			return &UnmarshalError{FieldPath: path, Message: err.Error(), Err: ErrRange}
		}
		rv.SetFloat(f)
		return nil
	case reflect.String:
		s, err := d.ops.GetStringValue(node)
		if err != nil {
			return unmarshalErr(path, err)
		}
		rv.SetString(s)
		return nil
	case reflect.Slice:
		items, err := d.ops.GetStream(node)
		if err != nil {
			return unmarshalErr(path, err)
		}
		res := reflect.MakeSlice(t, 0, 0)
		i := 0
		for item := range items {
			ev := reflect.New(t.Elem()).Elem()
			if err := d.value(item, ev, indexPath(path, i)); err != nil {
				return err
			}
			res = reflect.Append(res, ev)
			i++
		}
		rv.Set(res)
		return nil
	case reflect.Array:
		items, err := d.ops.GetStream(node)
		if err != nil {
			return unmarshalErr(path, err)
		}
		rv.SetZero()
		i := 0
		for item := range items {
			if i >= rv.Len() {
				return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("more than %d items", rv.Len()), Err: ErrRange}
			}
			if err := d.value(item, rv.Index(i), indexPath(path, i)); err != nil {
				return err
			}
			i++
		}
		return nil
	case reflect.Map:
		return d.mapping(node, rv, path)
	case reflect.Struct:
		return d.structure(node, rv, path)
	default:
		return &UnmarshalError{FieldPath: path, Message: t.String(), Err: ErrUnsupportedType}
	}
}

func (d *decoder[T]) integer(node T, path string) (decimal.Decimal, error) {
	n, err := d.ops.GetNumberValue(node)
	if err != nil {
		return n, unmarshalErr(path, err)
	}
	if !n.IsInteger() {
		return n, &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%s is not an integer", n), Err: ErrRange}
	}
	return n, nil
}

func (d *decoder[T]) mapping(node T, rv reflect.Value, path string) error {
	t := rv.Type()
	entries, err := d.ops.GetMapValues(node)
	if err != nil {
		return unmarshalErr(path, err)
	}
	res := reflect.MakeMap(t)
	for k, v := range entries {
		ks, err := d.ops.GetStringValue(k)
		if err != nil {
			return unmarshalErr(path, err)
		}
		kv := reflect.New(t.Key()).Elem()
		if err := setMapKey(kv, ks); err != nil {
			return unmarshalErr(path, err)
		}
		vv := reflect.New(t.Elem()).Elem()
		if err := d.value(v, vv, fieldPath(path, ks)); err != nil {
			return err
		}
		res.SetMapIndex(kv, vv)
	}
	rv.Set(res)
	return nil
}

func setMapKey(kv reflect.Value, s string) error {
	if reflect.PointerTo(kv.Type()).Implements(textUnmarshalerType) {
		return kv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	switch kv.Kind() {
	case reflect.String:
		kv.SetString(s)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, kv.Type().Bits())
		if err != nil {
			return err
		}
		kv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, kv.Type().Bits())
		if err != nil {
			return err
		}
		kv.SetUint(u)
		return nil
	}
	return fmt.Errorf("%w: map key %s", ErrUnsupportedType, kv.Type())
}

func (d *decoder[T]) structure(node T, rv reflect.Value, path string) error {
	if _, err := d.ops.GetMapValues(node); err != nil {
		return unmarshalErr(path, err)
	}
	for _, f := range structFields(rv.Type()) {
		p := fieldPath(path, f.name)
		v, err := d.ops.GetGeneric(node, d.ops.CreateString(f.name))
		if err != nil {
			return unmarshalErr(p, err)
		}
		if d.ops.Kind(v) == algebra.EmptyKind {
			continue
		}
		if err := d.value(v, rv.FieldByIndex(f.index), p); err != nil {
			return err
		}
	}
	return nil
}

// anyValue decodes node into map[string]any, []any, decimal.Decimal, bool,
// string or nil.
func (d *decoder[T]) anyValue(node T, path string) (any, error) {
	switch kind := d.ops.Kind(node); kind {
	case algebra.EmptyKind:
		return nil, nil
	case algebra.ScalarKind:
		if p, ok := d.ops.Payload(node); ok {
			if p.Type == algebra.BoolPayload {
				return p.Bool, nil
			}
			return p.Number, nil
		}
		if n, err := d.ops.GetNumberValue(node); err == nil {
			return n, nil
		}
		if b, err := d.ops.GetBooleanValue(node); err == nil {
			return b, nil
		}
		s, err := d.ops.GetStringValue(node)
		if err != nil {
			return nil, unmarshalErr(path, err)
		}
		return s, nil
	case algebra.SequenceKind:
		items, err := d.ops.GetStream(node)
		if err != nil {
			return nil, unmarshalErr(path, err)
		}
		res := []any{}
		i := 0
		for item := range items {
			v, err := d.anyValue(item, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			res = append(res, v)
			i++
		}
		return res, nil
	case algebra.MappingKind:
		entries, err := d.ops.GetMapValues(node)
		if err != nil {
			return nil, unmarshalErr(path, err)
		}
		res := map[string]any{}
		for k, v := range entries {
			ks, err := d.ops.GetStringValue(k)
			if err != nil {
				return nil, unmarshalErr(path, err)
			}
			dv, err := d.anyValue(v, fieldPath(path, ks))
			if err != nil {
				return nil, err
			}
			res[ks] = dv
		}
		return res, nil
	default:
		return nil, &UnmarshalError{FieldPath: path, Message: kind.String(), Err: ErrUnsupportedType}
	}
}
