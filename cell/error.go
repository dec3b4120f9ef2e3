package cell

import (
	"errors"
	"fmt"
)

// Kind classifies cell failures.
type Kind int

const (
	// LockHolderFailed reports that a previous lock holder panicked inside its
	// critical section; the value is of unknown integrity.
	LockHolderFailed Kind = iota + 1
	// ValueNotPresent reports an access to an empty slot.
	ValueNotPresent
	// KeyNotFound reports a Map removal of an absent key.
	KeyNotFound
)

func (k Kind) String() string {
	switch k {
	case LockHolderFailed:
		return "lock holder failed"
	case ValueNotPresent:
		return "value not present"
	case KeyNotFound:
		return "key not found"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by every cell operation that fails.
type Error struct {
	Kind Kind
	// Op names the failed operation (with, set, insert, remove, ...).
	Op string
	// Key is set for map operations only.
	Key any
}

var (
	ErrLockHolderFailed = &Error{Kind: LockHolderFailed}
	ErrValueNotPresent  = &Error{Kind: ValueNotPresent}
	ErrKeyNotFound      = &Error{Kind: KeyNotFound}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Key != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Key)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	return msg
}

// Is matches any *Error with the same Kind, so the exported sentinels can be
// used with errors.Is regardless of Op and Key.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}
