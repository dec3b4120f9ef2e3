package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert performs a best-effort conversion of the input value into the type
// pointed to by outPtr.
//
// When input is already assignable to the destination element type it is
// copied directly, otherwise Convert falls back to a JSON marshal/unmarshal
// round-trip, which turns YAML ints or JSON float64 into int64 and generic
// maps into structs.
//
// A nil input leaves outPtrʼs value untouched.
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}

	if in == nil {
		return nil
	}

	inVal := reflect.ValueOf(in)
	if inVal.Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal)
		return nil
	}

	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, outPtr)
}

// Copy is Convert without the direct assignment shortcut: outPtr always
// receives a fresh JSON decoded value that shares no map or slice with in.
func Copy(in any, outPtr any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, outPtr)
}

// Clone returns a deep copy of a JSON compatible value.  Numbers come back as
// float64.
func Clone(in any) (any, error) {
	if in == nil {
		return nil, nil
	}
	var out any
	if err := Copy(in, &out); err != nil {
		return nil, err
	}
	return out, nil
}
