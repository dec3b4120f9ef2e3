// Package conversion derives MCP tool schemas from Fluxor action signatures
// and decodes loosely typed tool arguments into the action input types.
package conversion
