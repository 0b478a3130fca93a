package mvc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"Trellis/internal/core/event"
)

// --- Fakes ---

var keyAppend = event.NewKey[string, int]("journal:append")

// journalModel appends strings; FetchData snapshots them.
type journalModel struct {
	ModelBase
	entries   []string
	fetchErr  error
	fetchSeen int
}

var _ Model[[]string] = (*journalModel)(nil)

func newJournalModel() *journalModel {
	m := &journalModel{ModelBase: NewModelBase()}
	event.Handle(m.Events(), keyAppend, func(ctx context.Context, s string) (int, error) {
		m.entries = append(m.entries, s)
		return len(m.entries), nil
	})
	return m
}

func (m *journalModel) FetchData(ctx context.Context) ([]string, error) {
	m.fetchSeen++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// journalView renders the entries as one comma-joined string node.
type journalView struct {
	ViewBase
	renderErr error
}

var _ View[[]string, string] = (*journalView)(nil)

func newJournalView() *journalView {
	return &journalView{ViewBase: NewViewBase()}
}

func (v *journalView) Render(entries []string) (string, error) {
	if v.renderErr != nil {
		return "", v.renderErr
	}
	return strings.Join(entries, ","), nil
}

// fixture returns the fakes both as concrete types and behind the role
// contracts, the way controllers hold them.
func fixture() (*journalModel, *journalView, Model[[]string], View[[]string, string]) {
	jm := newJournalModel()
	jv := newJournalView()
	return jm, jv, jm, jv
}

// --- ControllerBase ---

func TestControllerBase_PushWithoutSinkIsNoOp(t *testing.T) {
	var b ControllerBase[string]
	b.Push("nobody is listening") // must not panic
}

func TestControllerBase_LastSinkWins_NoReplay(t *testing.T) {
	var b ControllerBase[string]

	var first, second []string
	b.OnUpdate(func(n string) { first = append(first, n) })
	b.Push("one")

	b.OnUpdate(func(n string) { second = append(second, n) })
	b.Push("two")

	require.Equal(t, []string{"one"}, first, "old sink must stop receiving")
	require.Equal(t, []string{"two"}, second, "new sink must not replay past renders")
}

// --- React / Refresh ---

func TestReact_MutateFetchRenderPush(t *testing.T) {
	_, _, model, view := fixture()

	var b ControllerBase[string]
	React(&b, model, view, keyAppend, zerolog.Nop())

	var pushes []string
	b.OnUpdate(func(n string) { pushes = append(pushes, n) })

	ctx := context.Background()
	event.Fire(ctx, view.Callbacks(), keyAppend, "a")
	event.Fire(ctx, view.Callbacks(), keyAppend, "b")
	event.Fire(ctx, view.Callbacks(), keyAppend, "c")

	require.Equal(t, []string{"a", "a,b", "a,b,c"}, pushes,
		"each interaction produces exactly one re-render, in dispatch order")
}

func TestReact_DispatchFaultSkipsRender(t *testing.T) {
	jm, _, model, view := fixture()

	// A view event the model has no handler for.
	unknown := event.NewKey[string, int]("journal:unknown")

	var b ControllerBase[string]
	React(&b, model, view, unknown, zerolog.Nop())

	var pushes []string
	b.OnUpdate(func(n string) { pushes = append(pushes, n) })

	event.Fire(context.Background(), view.Callbacks(), unknown, "x")
	require.Empty(t, pushes)
	require.Zero(t, jm.fetchSeen, "failed dispatch must not trigger a fetch")
}

func TestReact_FetchFaultSkipsRender(t *testing.T) {
	jm, _, model, view := fixture()
	jm.fetchErr = errors.New("backend down")

	var b ControllerBase[string]
	React(&b, model, view, keyAppend, zerolog.Nop())

	var pushes []string
	b.OnUpdate(func(n string) { pushes = append(pushes, n) })

	event.Fire(context.Background(), view.Callbacks(), keyAppend, "a")
	require.Empty(t, pushes)
	require.Equal(t, []string{"a"}, jm.entries, "the mutation itself still applies")
}

func TestRefresh_PushesCurrentSnapshot(t *testing.T) {
	jm, _, model, view := fixture()
	jm.entries = []string{"x", "y"}

	var b ControllerBase[string]
	var pushes []string
	b.OnUpdate(func(n string) { pushes = append(pushes, n) })

	require.NoError(t, Refresh(context.Background(), &b, model, view))
	require.Equal(t, []string{"x,y"}, pushes)
}

func TestRefresh_PropagatesFaults(t *testing.T) {
	jm, jv, model, view := fixture()
	var b ControllerBase[string]

	jm.fetchErr = errors.New("fetch fault")
	require.ErrorIs(t, Refresh(context.Background(), &b, model, view), jm.fetchErr)

	jm.fetchErr = nil
	jv.renderErr = errors.New("render fault")
	require.ErrorIs(t, Refresh(context.Background(), &b, model, view), jv.renderErr)
}
