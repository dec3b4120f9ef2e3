// Package action exposes the cells of a store as a Fluxor action service
// named "cell", so that workflows and MCP tools operate on shared cells
// through declare, set, clear, get, add, insert, remove and list.
package action
