package hub

import (
	"sort"

	"github.com/viant/fluxor/model/types"

	nop "github.com/viant/fluxor/service/action/nop"
	printer "github.com/viant/fluxor/service/action/printer"
	exec "github.com/viant/fluxor/service/action/system/exec"
	secret "github.com/viant/fluxor/service/action/system/secret"
	storage "github.com/viant/fluxor/service/action/system/storage"

	"github.com/viant/synccell/hub/matcher"
)

// builtinFactories lists the Fluxor action services a hub may expose next to
// its cells.  The key matches the service name.
var builtinFactories = map[string]func() types.Service{
	"nop":            func() types.Service { return nop.New() },
	"printer":        func() types.Service { return printer.New() },
	"system/exec":    func() types.Service { return exec.New() },
	"system/storage": func() types.Service { return storage.New() },
	"system/secret":  func() types.Service { return secret.New() },
}

// resolveBuiltinServices converts pattern(s) into concrete service instances.
// A hub exposes no builtin unless asked to.
func resolveBuiltinServices(patterns []string) []types.Service {
	var names []string
	for name := range builtinFactories {
		for _, p := range patterns {
			if matcher.Match(p, name) {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	out := make([]types.Service, 0, len(names))
	for _, name := range names {
		out = append(out, builtinFactories[name]())
	}
	return out
}
