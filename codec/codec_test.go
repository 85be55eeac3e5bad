package codec_test

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/signadot/yamlops/algebra"
	"github.com/signadot/yamlops/codec"
	"github.com/signadot/yamlops/ir"
	"github.com/signadot/yamlops/irops"
	"github.com/signadot/yamlops/yamlnode"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type Address struct {
	Street string `yops:"street"`
	Zip    string `yops:"zip,omitempty"`
}

type Base struct {
	ID int64 `yops:"id"`
}

type Person struct {
	Base
	Name    string           `yops:"name"`
	Age     int              `yops:"age"`
	Score   float64          `yops:"score"`
	Active  bool             `yops:"active"`
	Balance decimal.Decimal  `yops:"balance"`
	Tags    []string         `yops:"tags"`
	Counts  map[string]uint8 `yops:"counts"`
	Home    *Address         `yops:"home"`
	Work    *Address         `yops:"work"`
	Grid    [2]int           `yops:"grid"`
	Extra   any              `yops:"extra"`
	Skip    string           `yops:"-"`
	Ratio   float32
}

func samplePerson() Person {
	return Person{
		Base:    Base{ID: 7},
		Name:    "alice",
		Age:     30,
		Score:   2.75,
		Ratio:   0.1,
		Active:  true,
		Balance: decimal.RequireFromString("12.5"),
		Tags:    []string{"x", "y"},
		Counts:  map[string]uint8{"b": 2, "a": 1},
		Home:    &Address{Street: "Main"},
		Grid:    [2]int{3, 4},
		Extra:   []any{"x", true},
	}
}

func requirePerson(t *testing.T, want, got Person) {
	t.Helper()
	require.True(t, want.Balance.Equal(got.Balance), "balance %s", got.Balance)
	want.Balance, got.Balance = decimal.Decimal{}, decimal.Decimal{}
	require.Equal(t, want, got)
}

func roundTrip[T any](t *testing.T, ops algebra.Ops[T]) {
	in := samplePerson()
	node, err := codec.Encode(ops, in)
	require.NoError(t, err)
	var out Person
	require.NoError(t, codec.Decode(ops, node, &out))
	requirePerson(t, in, out)
}

func TestRoundTripIR(t *testing.T) {
	roundTrip(t, irops.New())
	roundTrip(t, irops.New(irops.WithMaxDepth(2)))
}

func TestRoundTripYAML(t *testing.T) {
	roundTrip(t, yamlnode.New())
	roundTrip(t, yamlnode.New(yamlnode.WithFlowStyle(true)))
}

func TestRoundTripYAMLText(t *testing.T) {
	ops := yamlnode.New()
	in := samplePerson()
	node, err := codec.Encode(ops, in)
	require.NoError(t, err)
	text, err := ops.DumpString(node)
	require.NoError(t, err)
	loaded, err := yamlnode.LoadString(text)
	require.NoError(t, err)
	var out Person
	require.NoError(t, codec.Decode(ops, loaded, &out))
	requirePerson(t, in, out)
}

func TestCrossEngineRoundTrip(t *testing.T) {
	yops, iops := yamlnode.New(), irops.New()
	in := samplePerson()

	y, err := codec.Encode(yops, in)
	require.NoError(t, err)
	var fromIR Person
	require.NoError(t, codec.Decode(iops, algebra.Convert[*yaml.Node, *ir.Node](yops, iops, y), &fromIR))
	requirePerson(t, in, fromIR)

	n, err := codec.Encode(iops, in)
	require.NoError(t, err)
	var fromYAML Person
	require.NoError(t, codec.Decode(yops, algebra.Convert[*ir.Node, *yaml.Node](iops, yops, n), &fromYAML))
	requirePerson(t, in, fromYAML)
}

func TestFieldNames(t *testing.T) {
	ops := irops.New()
	node, err := codec.Encode(ops, samplePerson())
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, codec.Decode(ops, node, &got))
	require.Contains(t, got, "id")
	require.Contains(t, got, "Ratio")
	require.NotContains(t, got, "work")
	require.NotContains(t, got, "Skip")
	require.Equal(t, map[string]any{"street": "Main"}, got["home"])
}

func TestDecodeErrors(t *testing.T) {
	ops := irops.New()
	node, err := codec.Encode(ops, map[string]any{"age": "old"})
	require.NoError(t, err)
	var p Person
	err = codec.Decode(ops, node, &p)
	var ue *codec.UnmarshalError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "age", ue.FieldPath)
	require.True(t, errors.Is(err, algebra.ErrNotANumber))

	node, err = codec.Encode(ops, map[string]any{"Ratio": 1, "grid": []int{1, 2, 3}})
	require.NoError(t, err)
	require.ErrorIs(t, codec.Decode(ops, node, &p), codec.ErrRange)

	require.ErrorIs(t, codec.Decode(ops, node, p), codec.ErrTarget)

	var n int8
	require.ErrorIs(t, codec.Decode(ops, ops.CreateNumeric(decimal.NewFromInt(300)), &n), codec.ErrRange)
	require.ErrorIs(t, codec.Decode(ops, ops.CreateNumeric(decimal.RequireFromString("1.5")), &n), codec.ErrRange)
}

func TestEncodeErrors(t *testing.T) {
	_, err := codec.Encode(irops.New(), Person{Score: math.NaN()})
	var me *codec.MarshalError
	require.ErrorAs(t, err, &me)
	require.Equal(t, "score", me.FieldPath)

	_, err = codec.Encode(irops.New(), map[string]any{"f": func() {}})
	require.ErrorIs(t, err, codec.ErrUnsupportedType)
}

func TestEmptyValues(t *testing.T) {
	ops := yamlnode.New()
	node, err := codec.Encode(ops, struct {
		L []int          `yops:"l"`
		M map[string]int `yops:"m"`
	}{L: []int{}, M: map[string]int{}})
	require.NoError(t, err)
	l, err := ops.GetGeneric(node, ops.CreateString("l"))
	require.NoError(t, err)
	require.Equal(t, algebra.SequenceKind, ops.Kind(l))
	m, err := ops.GetGeneric(node, ops.CreateString("m"))
	require.NoError(t, err)
	require.Equal(t, algebra.MappingKind, ops.Kind(m))
}
