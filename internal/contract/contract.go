// Package contract implements the precondition hook behind the unchecked
// operations of fixedstr.
//
// A violated precondition is a bug in the caller. By default nothing
// observes it; a test build installs a handler (or links with the
// fixedstr_debug tag) to make violations fatal.
package contract

import (
	"fmt"
	"sync/atomic"
)

// Violation describes a broken precondition.
type Violation struct {
	Op   string // operation, e.g. "fixedstr::Sized::front"
	Cond string // the condition that did not hold
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: precondition %q violated", v.Op, v.Cond)
}

// Handler receives every violation reported through Expects.
type Handler func(*Violation)

var handler atomic.Pointer[Handler]

func init() {
	if h := defaultHandler(); h != nil {
		handler.Store(&h)
	}
}

// SetHandler installs h process-wide and returns the previous handler.
// A nil h disables reporting.
func SetHandler(h Handler) Handler {
	var prev *Handler
	if h == nil {
		prev = handler.Swap(nil)
	} else {
		prev = handler.Swap(&h)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

// Expects reports a violation of cond in op when ok is false.
func Expects(ok bool, op, cond string) {
	if ok {
		return
	}
	if h := handler.Load(); h != nil {
		(*h)(&Violation{Op: op, Cond: cond})
	}
}

// Panic is a Handler that panics with the violation.
func Panic(v *Violation) {
	panic(v)
}
