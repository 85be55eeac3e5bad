package codec

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrRange           = errors.New("value out of range")
	ErrTarget          = errors.New("decode target must be a non-nil pointer")
)

// MarshalError represents an error during encoding
type MarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during decoding
type UnmarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

func marshalErr(path string, err error) error {
	var me *MarshalError
	if errors.As(err, &me) {
		return err
	}
	return &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
}

func unmarshalErr(path string, err error) error {
	var ue *UnmarshalError
	if errors.As(err, &ue) {
		return err
	}
	return &UnmarshalError{FieldPath: path, Message: err.Error(), Err: err}
}

func fieldPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
