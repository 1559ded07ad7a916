package protocol

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mc-wire/protocol/wire"
)

// fieldTag is the parsed form of a struct field's `mc` tag.
//
//	mc:"-"            skip this field entirely (computed or unused)
//	mc:"length:20"     fixed element count for an array/FixedBitSet field
//	mc:"if:Other"       present only when the Other field is its zero value
//	mc:"if:Other,value:2" present only when Other == 2
type fieldTag struct {
	Skip    bool
	Length  int
	IfField string
	IfValue string
}

func parseFieldTag(tag string) fieldTag {
	var ft fieldTag
	if tag == "" {
		return ft
	}
	if tag == "-" {
		ft.Skip = true
		return ft
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if after, ok := strings.CutPrefix(part, "length:"); ok {
			if n, err := strconv.Atoi(after); err == nil {
				ft.Length = n
			}
			continue
		}
		if after, ok := strings.CutPrefix(part, "if:"); ok {
			ft.IfField = after
			continue
		}
		if after, ok := strings.CutPrefix(part, "value:"); ok {
			ft.IfValue = after
		}
	}
	return ft
}

// MarshalFields serializes every field of the struct v (or *v) in
// declaration order, per the same `mc` struct-tag rules UnmarshalFields
// reads. v's fields are expected to implement wire's `ToBytes() (wire.ByteArray, error)`
// convention; nested structs and slices/arrays of such fields are handled
// recursively.
func MarshalFields(v any) (wire.ByteArray, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("cannot marshal nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("can only marshal structs, got %v", val.Kind())
	}
	return marshalStruct(val)
}

func marshalStruct(val reflect.Value) (wire.ByteArray, error) {
	var out wire.ByteArray
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanInterface() {
			continue
		}
		tag := parseFieldTag(sf.Tag.Get("mc"))
		if tag.Skip {
			continue
		}
		if tag.IfField != "" {
			condField := val.FieldByName(tag.IfField)
			if condField.IsValid() && !fieldMatchesCondition(condField, tag.IfValue) {
				continue
			}
		}
		b, err := marshalField(field)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

func marshalField(field reflect.Value) (wire.ByteArray, error) {
	if field.CanAddr() {
		if m := field.Addr().MethodByName("ToBytes"); m.IsValid() {
			return callToBytes(m)
		}
	}
	if m := field.MethodByName("ToBytes"); m.IsValid() {
		return callToBytes(m)
	}

	switch field.Kind() {
	case reflect.Struct:
		return marshalStruct(field)
	case reflect.Slice:
		length := field.Len()
		lengthBytes, err := wire.VarInt(length).ToBytes()
		if err != nil {
			return nil, err
		}
		out := wire.ByteArray(lengthBytes)
		for i := 0; i < length; i++ {
			b, err := marshalField(field.Index(i))
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, b...)
		}
		return out, nil
	case reflect.Array:
		var out wire.ByteArray
		for i := 0; i < field.Len(); i++ {
			b, err := marshalField(field.Index(i))
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, b...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("field type %v has no ToBytes method", field.Type())
	}
}

func callToBytes(m reflect.Value) (wire.ByteArray, error) {
	results := m.Call(nil)
	if err, _ := results[1].Interface().(error); err != nil {
		return nil, err
	}
	return results[0].Interface().(wire.ByteArray), nil
}

// UnmarshalFields deserializes data into the struct pointed to by v, in
// field-declaration order, returning the number of bytes consumed.
//
// Running out of input partway through a field is reported as
// wire.ErrIncomplete, exactly like any other wire primitive: a payload
// handed to UnmarshalFields is not yet known to be complete at the struct
// level, only at the frame level (frame length only bounds the whole
// packet, not each field).
func UnmarshalFields(data []byte, v any) (int, error) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return 0, fmt.Errorf("unmarshal requires a non-nil pointer")
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return 0, fmt.Errorf("can only unmarshal into structs, got %v", elem.Kind())
	}
	return unmarshalStruct(elem, data)
}

func unmarshalStruct(val reflect.Value, data []byte) (int, error) {
	typ := val.Type()
	offset := 0

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := parseFieldTag(sf.Tag.Get("mc"))
		if tag.Skip {
			continue
		}

		if tag.IfField != "" {
			condField := val.FieldByName(tag.IfField)
			if condField.IsValid() && !fieldMatchesCondition(condField, tag.IfValue) {
				continue
			}
		}

		if offset > len(data) {
			return offset, fmt.Errorf("%w: field %s", wire.ErrIncomplete, sf.Name)
		}

		n, err := unmarshalField(field, data[offset:], tag)
		if err != nil {
			return offset, fmt.Errorf("field %s (offset %d): %w", sf.Name, offset, err)
		}
		offset += n
	}

	return offset, nil
}

func fieldMatchesCondition(field reflect.Value, expected string) bool {
	if expected == "" {
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return field.Int() == 0
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return field.Uint() == 0
		case reflect.Bool:
			return !field.Bool()
		default:
			return field.IsZero()
		}
	}
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(expected, 10, 64)
		return err == nil && field.Int() == n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(expected, 10, 64)
		return err == nil && field.Uint() == n
	case reflect.Bool:
		b, err := strconv.ParseBool(expected)
		return err == nil && field.Bool() == b
	case reflect.String:
		return field.String() == expected
	default:
		return false
	}
}

func unmarshalField(field reflect.Value, data []byte, tag fieldTag) (int, error) {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}

	if tag.Length > 0 && strings.Contains(field.Type().String(), "FixedBitSet") {
		if lengthField := field.FieldByName("Length"); lengthField.IsValid() && lengthField.CanSet() {
			lengthField.SetInt(int64(tag.Length))
		}
	}

	if field.CanAddr() {
		if m := field.Addr().MethodByName("FromBytes"); m.IsValid() {
			return callFromBytes(m, data)
		}
	}
	if m := field.MethodByName("FromBytes"); m.IsValid() {
		return callFromBytes(m, data)
	}

	switch field.Kind() {
	case reflect.Struct:
		return unmarshalStruct(field, data)
	case reflect.Slice:
		var length wire.VarInt
		n, err := length.FromBytes(wire.ByteArray(data))
		if err != nil {
			return 0, err
		}
		if length < 0 {
			return 0, wire.NewMalformedFrameError("negative array length: %d", int32(length))
		}
		offset := n
		slice := reflect.MakeSlice(field.Type(), int(length), int(length))
		for i := 0; i < int(length); i++ {
			if offset > len(data) {
				return offset, fmt.Errorf("%w: array element %d", wire.ErrIncomplete, i)
			}
			elemBytes, err := unmarshalField(slice.Index(i), data[offset:], fieldTag{})
			if err != nil {
				return offset, fmt.Errorf("array element %d: %w", i, err)
			}
			offset += elemBytes
		}
		field.Set(slice)
		return offset, nil
	case reflect.Array:
		offset := 0
		for i := 0; i < field.Len(); i++ {
			n, err := unmarshalField(field.Index(i), data[offset:], fieldTag{})
			if err != nil {
				return offset, fmt.Errorf("array element %d: %w", i, err)
			}
			offset += n
		}
		return offset, nil
	default:
		return 0, fmt.Errorf("field type %v has no FromBytes method", field.Type())
	}
}

func callFromBytes(m reflect.Value, data []byte) (int, error) {
	results := m.Call([]reflect.Value{reflect.ValueOf(wire.ByteArray(data))})
	if err, _ := results[1].Interface().(error); err != nil {
		return 0, err
	}
	return results[0].Interface().(int), nil
}
