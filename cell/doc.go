// Package cell provides a mutex guarded slot holding zero or one value of an
// arbitrary type.  All access goes through closures executed while the lock is
// held so that no reference to the contained value escapes the critical
// section.  Map adds insert/remove convenience for cells wrapping a Go map.
//
// A closure that panics while holding the lock poisons the cell: every later
// access fails with ErrLockHolderFailed until Reset reconstructs the slot.
package cell
