// Package config defines the YAML/JSON configuration model of a cell hub
// (MCP server options, Fluxor builtins and the cells to host) together with
// helpers to load it from any afs supported URL and validate it.
package config
