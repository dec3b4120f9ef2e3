// Package global declares process-wide named cells.
//
//	var hits = global.Define("hits", func() int64 { return 0 })
//
//	hits.With(func(v *int64) { *v++ })
//
// The cell behind a declaration is built on first access; the optional
// initializer seeds it exactly once at that moment.  Passing cells explicitly
// (see hub/store) is preferred wherever a caller can be handed a dependency.
package global
