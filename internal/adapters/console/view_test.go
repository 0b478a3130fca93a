package console

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"Trellis/internal/core/event"
	"Trellis/internal/todo"
)

func newTestView() *View {
	nop := zerolog.Nop()
	return NewView(&nop)
}

func TestRender_IsPure(t *testing.T) {
	view := newTestView()
	items := []todo.Item{{ID: 0, Name: "buy milk"}, {ID: 1, Name: "walk dog", Done: true}}

	first, err := view.Render(items)
	require.NoError(t, err)
	second, err := view.Render(items)
	require.NoError(t, err)

	require.Equal(t, first.Lines, second.Lines)
}

func TestRender_Listing(t *testing.T) {
	view := newTestView()

	frame, err := view.Render(nil)
	require.NoError(t, err)
	require.Contains(t, frame.String(), "(nothing to do)")

	frame, err = view.Render([]todo.Item{
		{ID: 0, Name: "buy milk"},
		{ID: 1, Name: "walk dog", Done: true},
	})
	require.NoError(t, err)
	require.Contains(t, frame.String(), "[ ] 0 buy milk")
	require.Contains(t, frame.String(), "[x] 1 walk dog")
}

func TestSubmit_FiresAddWithName(t *testing.T) {
	view := newTestView()
	frame, err := view.Render(nil)
	require.NoError(t, err)

	var added []string
	event.Bind(view.Callbacks(), todo.Add, func(ctx context.Context, name string) {
		added = append(added, name)
	})

	require.NoError(t, frame.Submit(context.Background(), "add buy milk"))
	require.Equal(t, []string{"buy milk"}, added)
}

// A Frame rendered before any binding must reach the callback bound later,
// and a re-bind must supersede the old callback for already-rendered frames.
func TestSubmit_ResolvesCurrentCallback(t *testing.T) {
	view := newTestView()
	frame, err := view.Render(nil)
	require.NoError(t, err)

	// Nothing bound yet: the submit parses fine and fires into a no-op.
	require.NoError(t, frame.Submit(context.Background(), "clear"))

	var calls []string
	event.Bind(view.Callbacks(), todo.Clear, func(ctx context.Context, _ struct{}) {
		calls = append(calls, "stale")
	})
	event.Bind(view.Callbacks(), todo.Clear, func(ctx context.Context, _ struct{}) {
		calls = append(calls, "fresh")
	})

	require.NoError(t, frame.Submit(context.Background(), "clear"))
	require.Equal(t, []string{"fresh"}, calls)
}

func TestSubmit_CommandGrammar(t *testing.T) {
	view := newTestView()
	frame, err := view.Render(nil)
	require.NoError(t, err)

	var toggled, removed []int
	event.Bind(view.Callbacks(), todo.Toggle, func(ctx context.Context, id int) {
		toggled = append(toggled, id)
	})
	event.Bind(view.Callbacks(), todo.Remove, func(ctx context.Context, id int) {
		removed = append(removed, id)
	})

	ctx := context.Background()
	require.NoError(t, frame.Submit(ctx, "done 3"))
	require.NoError(t, frame.Submit(ctx, "rm 1"))
	require.NoError(t, frame.Submit(ctx, ""))

	require.Equal(t, []int{3}, toggled)
	require.Equal(t, []int{1}, removed)

	require.ErrorIs(t, frame.Submit(ctx, "bogus"), ErrUnknownCommand)
	require.ErrorIs(t, frame.Submit(ctx, "done abc"), ErrUnknownCommand)
	require.ErrorIs(t, frame.Submit(ctx, "rm"), ErrUnknownCommand)
	require.ErrorIs(t, frame.Submit(ctx, "add"), ErrUnknownCommand)
}
