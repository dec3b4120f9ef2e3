// Package conv provides small, reflection-based helpers to coerce loosely
// typed values (decoded JSON/YAML, tool arguments) into the typed inputs of
// cell actions.
package conv
