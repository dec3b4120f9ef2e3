package cmd

import (
	"fmt"
)

// ListToolsCmd prints every registered tool.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"tool pattern: *, prefix ending with / or _, or exact name" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	for _, t := range svc.MatchTools(c.Pattern) {
		desc := ""
		if t.Metadata.Description != nil {
			desc = *t.Metadata.Description
		}
		fmt.Printf("%s\t%s\n", t.Metadata.Name, desc)
	}
	return nil
}
