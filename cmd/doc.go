// Package cmd implements all sub-commands that make up the synccell
// command-line interface (serve, exec, list-tools, bench, …).  The plumbing
// shared between commands such as configuration loading or hub
// initialisation is located in shared.go.
package cmd
