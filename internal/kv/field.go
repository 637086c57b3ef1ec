package kv

import (
	"fmt"
	"strconv"
	"time"
)

// KeyValue represents typed log field (a key-value pair). Adapters should determine
// KeyValue's type based on Type and use the corresponding getter method to retrieve
// the value:
//
//	switch f.Type() {
//	case kv.IntType:
//	    var i int = f.IntValue()
//	    // handle int value
//	case kv.StringType:
//	    var s string = f.StringValue()
//	    // handle string value
//	//...
//	}
//
// Getter methods must not be called on fields with wrong Type (e.g. calling StringValue()
// on fields with Type != StringType).
// KeyValue must not be initialized directly as a struct literal.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

func (f KeyValue) Type() FieldType {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

// StringValue is a value getter for fields with StringType type
func (f KeyValue) StringValue() string {
	f.checkType(StringType)

	return f.vstr
}

// IntValue is a value getter for fields with IntType type
func (f KeyValue) IntValue() int {
	f.checkType(IntType)

	return int(f.vint)
}

func (f KeyValue) Int64Value() int64 {
	f.checkType(Int64Type)

	return f.vint
}

// BoolValue is a value getter for fields with BoolType type
func (f KeyValue) BoolValue() bool {
	f.checkType(BoolType)

	return f.vint != 0
}

// DurationValue is a value getter for fields with DurationType type
func (f KeyValue) DurationValue() time.Duration {
	f.checkType(DurationType)

	return time.Nanosecond * time.Duration(f.vint)
}

// ErrorValue is a value getter for fields with ErrorType type
func (f KeyValue) ErrorValue() error {
	f.checkType(ErrorType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(error) //nolint:forcetypeassert
}

// AnyValue is a value getter for fields with AnyType type
func (f KeyValue) AnyValue() interface{} {
	f.checkType(AnyType)

	return f.vany
}

// StringerValue is a value getter for fields with StringerType type
func (f KeyValue) StringerValue() fmt.Stringer {
	f.checkType(StringerType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(fmt.Stringer) //nolint:forcetypeassert
}

// Panics on type mismatch
func (f KeyValue) checkType(want FieldType) {
	if f.ftype != want {
		panic(fmt.Sprintf("bad type. have: %s, want: %s", f.ftype, want))
	}
}

// String returns default string representation of KeyValue value.
// It should be used by adapters that don't support f.Type directly.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case ErrorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case AnyType:
		return fmt.Sprint(f.vany)
	case StringerType:
		return f.StringerValue().String()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// String constructs KeyValue with StringType
func String(key string, value string) KeyValue {
	return KeyValue{
		ftype: StringType,
		key:   key,
		vstr:  value,
	}
}

// Int constructs KeyValue with IntType
func Int(key string, value int) KeyValue {
	return KeyValue{
		ftype: IntType,
		key:   key,
		vint:  int64(value),
	}
}

func Int64(key string, value int64) KeyValue {
	return KeyValue{
		ftype: Int64Type,
		key:   key,
		vint:  value,
	}
}

// Bool constructs KeyValue with BoolType
func Bool(key string, value bool) KeyValue {
	var vint int64
	if value {
		vint = 1
	}

	return KeyValue{
		ftype: BoolType,
		key:   key,
		vint:  vint,
	}
}

// Duration constructs KeyValue with DurationType
func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{
		ftype: DurationType,
		key:   key,
		vint:  value.Nanoseconds(),
	}
}

// NamedError constructs KeyValue with ErrorType
func NamedError(key string, value error) KeyValue {
	return KeyValue{
		ftype: ErrorType,
		key:   key,
		vany:  value,
	}
}

// Error is the same as NamedError("error", value)
func Error(value error) KeyValue {
	return NamedError("error", value)
}

// Any constructs untyped KeyValue.
func Any(key string, value interface{}) KeyValue {
	return KeyValue{
		ftype: AnyType,
		key:   key,
		vany:  value,
	}
}

// Stringer constructs KeyValue with StringerType. If value is nil,
// resulting KeyValue will be of AnyType instead of StringerType.
func Stringer(key string, value fmt.Stringer) KeyValue {
	if value == nil {
		return Any(key, nil)
	}

	return KeyValue{
		ftype: StringerType,
		key:   key,
		vany:  value,
	}
}

// FieldType indicates type info about the KeyValue.
type FieldType int

const (
	// InvalidType indicates that KeyValue was not initialized correctly. Adapters
	// should either ignore such field or issue an error. No value getters should
	// be called on field with such type.
	InvalidType FieldType = iota

	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	ErrorType
	// AnyType indicates that the KeyValue is untyped. Adapters should use
	// reflection-based approached to marshal this field.
	AnyType

	// StringerType corresponds to fmt.Stringer
	StringerType

	endType
)

var fieldTypeNames = [...]string{
	"invalid", "int", "int64", "string", "bool", "time.Duration", "error", "any", "stringer",
}

func (ft FieldType) String() string {
	if ft < 0 || ft >= endType {
		return "unknown"
	}

	return fieldTypeNames[ft]
}
