package cmdargs

import (
	"encoding"
	"reflect"
	"strconv"
)

// Kind classifies extraction targets.
type Kind uint8

const (
	Invalid Kind = iota
	Bool
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
	String
	// Kinds bellow are parsed by the target itself
	// and always consume the whole argument.
	Text
	Value
)

// KindOf returns the kind of the provided target,
// targets need to be non nil pointers or self parsing values.
func KindOf(target interface{}) Kind {
	switch target.(type) {
	case Setter:
		return Value
	case encoding.TextUnmarshaler:
		return Text
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return Invalid
	}
	switch v.Elem().Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Complex64:
		return Complex64
	case reflect.Complex128:
		return Complex128
	case reflect.String:
		return String
	default:
		return Invalid
	}
}

func (k Kind) Type() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint:
		return "uint"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	case String:
		return "string"
	case Text:
		return "text"
	case Value:
		return "value"
	default:
		return "invalid"
	}
}

// Base returns the bit size used to parse numeric kinds.
func (k Kind) Base() int {
	switch k {
	case Int, Uint:
		return strconv.IntSize
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64, Complex64:
		return 64
	case Complex128:
		return 128
	default:
		return 0
	}
}

func (k Kind) Signed() bool {
	return k >= Int && k <= Int64
}

func (k Kind) Unsigned() bool {
	return k >= Uint && k <= Uint64
}

func (k Kind) Float() bool {
	return k == Float32 || k == Float64
}

func (k Kind) Complex() bool {
	return k == Complex64 || k == Complex128
}
