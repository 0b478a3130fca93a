// Package todo is the reference domain for the scaffolding: a todo list
// driven by four typed events over interchangeable Model backends and View
// frontends.
package todo

import "Trellis/internal/core/event"

// Item is a single todo entry. IDs issue from a sequential counter starting
// at 0 and are never reused within a Model's lifetime.
type Item struct {
	ID   int
	Name string
	Done bool
}

// The todo event map. This is the single declaration site fixing the event
// names and their handler signatures; every Model backend registers
// handlers against these keys and every View frontend fires them.
var (
	// Add creates an item with the given name and returns it.
	Add = event.NewKey[string, Item]("todo:add")

	// Remove deletes the item with the given id, reporting whether it
	// existed.
	Remove = event.NewKey[int, bool]("todo:remove")

	// Toggle flips the done flag of the item with the given id, reporting
	// whether it existed.
	Toggle = event.NewKey[int, bool]("todo:toggle")

	// Clear deletes all items and returns how many were removed.
	Clear = event.NewKey[struct{}, int]("todo:clear")
)
