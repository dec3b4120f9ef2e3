package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/synccell/hub/tool"
)

// ActionCmd shows detailed information about one Fluxor action method.
type ActionCmd struct {
	Name string `short:"n" long:"name" description:"identifier in form service/method" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ActionCmd) Execute(_ []string) error {
	name := tool.Canonical(c.Name)
	if name.Method() == "" {
		return fmt.Errorf("name must be service/method")
	}
	svcName, method := name.Service(), name.Method()

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	s := svc.WorkflowService().Actions().Lookup(svcName)
	if s == nil {
		return fmt.Errorf("service %q not found", svcName)
	}
	sig := s.Methods().Lookup(method)
	if sig == nil {
		return fmt.Errorf("method %q not found in service %q", method, svcName)
	}

	info := struct {
		Service     string `json:"service"`
		Method      string `json:"method"`
		Description string `json:"description"`
		InputType   string `json:"inputType"`
		OutputType  string `json:"outputType"`
		InputDef    string `json:"inputDefinition,omitempty"`
		OutputDef   string `json:"outputDefinition,omitempty"`
	}{
		Service:     svcName,
		Method:      method,
		Description: sig.Description,
		InputType:   typeString(sig.Input),
		OutputType:  typeString(sig.Output),
		InputDef:    typeDefinition(sig.Input),
		OutputDef:   typeDefinition(sig.Output),
	}

	if c.JSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	fmt.Printf("Service : %s\n", info.Service)
	fmt.Printf("Method  : %s\n", info.Method)
	fmt.Printf("Desc    : %s\n", info.Description)
	fmt.Printf("Input   : %s\n", info.InputType)
	fmt.Printf("Output  : %s\n", info.OutputType)
	if info.InputDef != "" {
		fmt.Printf("\nInput Definition:\n%s\n", info.InputDef)
	}
	if info.OutputDef != "" {
		fmt.Printf("\nOutput Definition:\n%s\n", info.OutputDef)
	}
	return nil
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}
	return t.String()
}

// typeDefinition renders the fields of a struct (or pointer to struct) type
// as Go source; cell action I/O types are flat so nested structs are not
// expanded.
func typeDefinition(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.NumField() == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("struct {\n")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		b.WriteString("    ")
		b.WriteString(f.Name)
		b.WriteString(" ")
		b.WriteString(f.Type.String())
		if tag := strings.TrimSpace(string(f.Tag)); tag != "" {
			b.WriteString(" `")
			b.WriteString(tag)
			b.WriteString("`")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
