// Package console is a host "UI toolkit" rendering to an interactive
// terminal. Its UI node is the Frame: a block of text plus an input
// listener that routes typed commands back through the owning View's
// callback table.
package console

import (
	"context"
	"strings"
)

// Frame is the UI node the console View produces. Lines carry the rendered
// todo list; submit is the interaction listener attached at render time.
// The listener resolves callbacks through the View's table on every call,
// so a Frame built before a re-bind still reaches the latest callback.
type Frame struct {
	Lines  []string
	submit func(ctx context.Context, line string) error
}

// Submit feeds one line of user input to the Frame's interaction listener.
func (f *Frame) Submit(ctx context.Context, line string) error {
	return f.submit(ctx, line)
}

// String renders the Frame for display.
func (f *Frame) String() string {
	return strings.Join(f.Lines, "\n")
}
