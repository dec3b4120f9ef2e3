// Package tool maps Fluxor service/method pairs to MCP tool names.
package tool
