package action

import "github.com/viant/synccell/hub/store"

type NameInput struct {
	Name string `json:"name" description:"cell name"`
}

type DeclareInput struct {
	Name string `json:"name" description:"cell name"`
	Kind string `json:"kind" description:"value, counter or map"`
}

type SetInput struct {
	Name  string      `json:"name" description:"cell name"`
	Value interface{} `json:"value" description:"new content; a number for counters, an object for maps"`
}

// StateOutput reports the slot state after a declare/set/clear.
type StateOutput struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Populated bool   `json:"populated"`
}

type GetOutput struct {
	Name  string      `json:"name"`
	Kind  string      `json:"kind"`
	Value interface{} `json:"value,omitempty"`
}

type AddInput struct {
	Name  string `json:"name" description:"counter cell name"`
	Delta int64  `json:"delta" description:"increment, may be negative"`
}

type AddOutput struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type InsertInput struct {
	Name  string      `json:"name" description:"map cell name"`
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

type InsertOutput struct {
	Previous interface{} `json:"previous,omitempty"`
	Replaced bool        `json:"replaced"`
}

type RemoveInput struct {
	Name string `json:"name" description:"map cell name"`
	Key  string `json:"key"`
}

type RemoveOutput struct {
	Value interface{} `json:"value,omitempty"`
}

type ListInput struct{}

type ListOutput struct {
	Cells []store.Info `json:"cells"`
}
