// Package syncmap offers a small generic registry guarded by a sync.RWMutex.
// It backs the named cell registries of synccell: lookups are frequent and
// registrations rare, hence the read/write lock.
package syncmap
