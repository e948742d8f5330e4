package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnsupportedValue = errors.New("unsupported value: only numbers, strings, booleans and null can be compared")
	ErrInvalidValue     = errors.New("invalid JSON value")
	ErrTooManyValues    = errors.New("too many values")
)

type Kind string

const (
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindNull   Kind = "null"
)

// Value is a JSON scalar reduced to a comparable form. Two values are equal
// when they have the same kind and payload, so 1 and 1.0 match while 1 and
// "1" do not.
type Value struct {
	Kind   Kind
	Number float64
	Text   string
	Bool   bool
}

func Number(n float64) Value { return Value{Kind: KindNumber, Number: n} }
func String(s string) Value  { return Value{Kind: KindString, Text: s} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func Null() Value            { return Value{Kind: KindNull} }

// ParseValue decodes a single JSON scalar. Objects and arrays are rejected
// with ErrUnsupportedValue.
func ParseValue(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Value{}, fmt.Errorf("%w: empty input", ErrInvalidValue)
	}

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	switch v := decoded.(type) {
	case float64:
		return Number(v), nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("%w: got %s", ErrUnsupportedValue, string(trimmed))
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return fmt.Sprintf("%g", v.Number)
	case KindString:
		return fmt.Sprintf("%q", v.Text)
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	default:
		return "null"
	}
}
