package ir

type Type int

const (
	EmptyType Type = iota
	ScalarType
	ArrayType
	ObjectType
	StreamType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		EmptyType:  "Empty",
		ScalarType: "Scalar",
		ArrayType:  "Array",
		ObjectType: "Object",
		StreamType: "Stream",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}
