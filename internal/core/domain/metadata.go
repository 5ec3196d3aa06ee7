package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MetaKind discriminates the value held by a MetaValue.
type MetaKind int

const (
	// MetaUnset is the zero value of an uninitialised MetaValue.
	MetaUnset MetaKind = iota
	// MetaString holds a string value.
	MetaString
	// MetaInt holds an int64 value.
	MetaInt
	// MetaFloat holds a float64 value.
	MetaFloat
	// MetaBool holds a bool value.
	MetaBool
)

// MetaValue is a closed tagged union for document metadata values.
// Metadata keys are extractor-defined; values are restricted to scalars
// so serialisation stays well-defined across stores.
type MetaValue struct {
	kind MetaKind
	str  string
	num  int64
	flt  float64
	bln  bool
}

// String creates a string metadata value.
func String(v string) MetaValue { return MetaValue{kind: MetaString, str: v} }

// Int creates an integer metadata value.
func Int(v int64) MetaValue { return MetaValue{kind: MetaInt, num: v} }

// Float creates a floating-point metadata value.
func Float(v float64) MetaValue { return MetaValue{kind: MetaFloat, flt: v} }

// Bool creates a boolean metadata value.
func Bool(v bool) MetaValue { return MetaValue{kind: MetaBool, bln: v} }

// Kind returns the discriminator for this value.
func (v MetaValue) Kind() MetaKind { return v.kind }

// StringValue returns the string value and whether the kind matches.
func (v MetaValue) StringValue() (string, bool) { return v.str, v.kind == MetaString }

// IntValue returns the integer value and whether the kind matches.
func (v MetaValue) IntValue() (int64, bool) { return v.num, v.kind == MetaInt }

// FloatValue returns the float value and whether the kind matches.
func (v MetaValue) FloatValue() (float64, bool) { return v.flt, v.kind == MetaFloat }

// BoolValue returns the boolean value and whether the kind matches.
func (v MetaValue) BoolValue() (bool, bool) { return v.bln, v.kind == MetaBool }

// Display returns a human-readable rendering of the value.
func (v MetaValue) Display() string {
	switch v.kind {
	case MetaString:
		return v.str
	case MetaInt:
		return strconv.FormatInt(v.num, 10)
	case MetaFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case MetaBool:
		return strconv.FormatBool(v.bln)
	default:
		return ""
	}
}

// MarshalJSON encodes the value as its natural JSON scalar.
func (v MetaValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case MetaString:
		return json.Marshal(v.str)
	case MetaInt:
		return json.Marshal(v.num)
	case MetaFloat:
		return json.Marshal(v.flt)
	case MetaBool:
		return json.Marshal(v.bln)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar into the matching kind.
// Numbers without a fractional part decode as MetaInt.
func (v *MetaValue) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case nil:
		*v = MetaValue{}
	case string:
		*v = String(val)
	case bool:
		*v = Bool(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			*v = Int(i)
			return nil
		}
		f, err := val.Float64()
		if err != nil {
			return fmt.Errorf("metadata value %q: %w", val.String(), ErrInvalidInput)
		}
		*v = Float(f)
	default:
		return fmt.Errorf("metadata value must be a scalar: %w", ErrInvalidInput)
	}
	return nil
}
