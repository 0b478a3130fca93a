// Package event implements the typed event-dispatch contract shared by
// Models and Views: event keys that fix a name and a handler signature at
// their declaration site, a total handler table for Models, and a partial,
// re-bindable callback table for Views.
package event

// Key binds an event name to its parameter type P and result type R.
//
// A package-level set of Key variables is the event map of a Model or View:
// the one declaration site fixes both the finite set of event names and each
// one's exact signature. Every Handle, Bind, Dispatch and Fire call that
// uses the key is checked against P and R at compile time.
//
// Keys are values; they carry no state beyond the name and are never
// "instantiated" at runtime in any other sense.
type Key[P, R any] struct {
	name string
}

// NewKey declares a typed event key. The name must be unique within the
// table the key is used against; two keys with the same name but different
// signatures surface as ErrSignatureMismatch at dispatch time.
func NewKey[P, R any](name string) Key[P, R] {
	return Key[P, R]{name: name}
}

// Name returns the event name the key was declared with.
func (k Key[P, R]) Name() string {
	return k.name
}
