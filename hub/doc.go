// Package hub hosts named cells and wires them into the Fluxor workflow
// engine and the MCP protocol.  Its central Service type loads configuration,
// seeds the declared cells, registers the cell actions (plus optional Fluxor
// builtins) and exposes every action as an MCP tool.
package hub
