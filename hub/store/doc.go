// Package store keeps the named cells hosted by a hub.  Each cell has a kind
// (value, counter or map) fixed at declaration time; the store hands out the
// typed cell and never touches its content itself.
package store
