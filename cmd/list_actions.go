package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/viant/synccell/hub"
	"github.com/viant/synccell/hub/action"
	"github.com/viant/synccell/hub/tool"
)

// ListActionsCmd prints the cell actions followed by every other Fluxor
// service, each method with the tool name that exposes it.
type ListActionsCmd struct{}

func (c *ListActionsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	return writeActions(os.Stdout, svc)
}

func writeActions(w io.Writer, svc *hub.Service) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	actions := svc.WorkflowService().Actions()
	for _, name := range orderServices(actions.Services()) {
		s := actions.Lookup(name)
		if s == nil {
			continue
		}
		sigs := s.Methods()
		if name == action.Name {
			// cell methods keep their lifecycle order: declare, set, ... list
			fmt.Fprintf(tw, "%s (%d cells)\n", name, len(svc.Store().List()))
		} else {
			fmt.Fprintln(tw, name)
			sigs = append(sigs[:0:0], sigs...)
			sort.Slice(sigs, func(i, j int) bool { return sigs[i].Name < sigs[j].Name })
		}
		for _, sig := range sigs {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", sig.Name, tool.NewName(name, sig.Name), sig.Description)
		}
	}
	return tw.Flush()
}

// orderServices puts the cell service first and sorts the rest.
func orderServices(names []string) []string {
	ret := make([]string, 0, len(names))
	var others []string
	for _, name := range names {
		if name == action.Name {
			ret = append(ret, name)
			continue
		}
		others = append(others, name)
	}
	sort.Strings(others)
	return append(ret, others...)
}
