package conversion

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	schema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/x"
)

// BuildSchema returns the MCP tool metadata for sig.
func BuildSchema(sig *types.Signature) (schema.Tool, error) {
	var inputSchema schema.ToolInputSchema
	if err := inputSchema.Load(reflect.New(structType(sig.Input)).Interface()); err != nil {
		return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	props, required := schema.StructToProperties(structType(sig.Output))
	outputSchema := &schema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
	desc := sig.Description
	return schema.Tool{Name: sig.Name, Description: &desc, InputSchema: inputSchema, OutputSchema: outputSchema}, nil
}

// NewValue returns a pointer to a new zero value of t (or of t's element when
// t is a pointer).
func NewValue(t reflect.Type) any {
	return reflect.New(valueType(t)).Interface()
}

// Decode converts tool arguments into a new value of t.
func Decode(args map[string]interface{}, t reflect.Type) (any, error) {
	value := NewValue(t)
	if len(args) == 0 {
		return value, nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, value); err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", valueType(t), err)
	}
	return value, nil
}

var emptyStruct = reflect.TypeOf(struct{}{})

func valueType(t reflect.Type) reflect.Type {
	if t == nil {
		return emptyStruct
	}
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// structType unwraps pointers; nil and non-struct types map to struct{} since
// StructToProperties only accepts structs.
func structType(t reflect.Type) reflect.Type {
	t = valueType(t)
	if t.Kind() != reflect.Struct {
		return emptyStruct
	}
	return t
}

// typeRegistry holds the action input/output types known to the hub.
var typeRegistry = x.NewRegistry()

// Registry returns the registry of action types.
func Registry() *x.Registry {
	return typeRegistry
}

// RegisterType registers an action type (pointer types by their element) and
// returns its descriptor.
func RegisterType(t reflect.Type, options ...x.Option) *x.Type {
	aType := x.NewType(valueType(t), options...)
	typeRegistry.Register(aType)
	return aType
}
