package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatch_ReturnsHandlerResult(t *testing.T) {
	table := NewHandlerTable()
	double := NewKey[int, int]("double")

	Handle(table, double, func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})

	got, err := Dispatch(context.Background(), table, double, 21)
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestDispatch_UnknownEventFails(t *testing.T) {
	table := NewHandlerTable()
	missing := NewKey[string, string]("nope")

	_, err := Dispatch(context.Background(), table, missing, "x")
	require.ErrorIs(t, err, ErrNoHandler)
	require.Contains(t, err.Error(), "nope")
}

func TestDispatch_HandlerErrorPropagates(t *testing.T) {
	table := NewHandlerTable()
	boom := NewKey[struct{}, struct{}]("boom")
	sentinel := errors.New("model exploded")

	Handle(table, boom, func(ctx context.Context, _ struct{}) (struct{}, error) {
		return struct{}{}, sentinel
	})

	_, err := Dispatch(context.Background(), table, boom, struct{}{})
	require.ErrorIs(t, err, sentinel)
}

func TestDispatch_NameCollisionIsSignatureMismatch(t *testing.T) {
	table := NewHandlerTable()
	asInt := NewKey[int, int]("same-name")
	asString := NewKey[string, string]("same-name")

	Handle(table, asInt, func(ctx context.Context, n int) (int, error) {
		return n, nil
	})

	_, err := Dispatch(context.Background(), table, asString, "oops")
	require.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestHandle_ReplacesPreviousHandler(t *testing.T) {
	table := NewHandlerTable()
	greet := NewKey[string, string]("greet")

	Handle(table, greet, func(ctx context.Context, name string) (string, error) {
		return "hello " + name, nil
	})
	Handle(table, greet, func(ctx context.Context, name string) (string, error) {
		return "goodbye " + name, nil
	})

	got, err := Dispatch(context.Background(), table, greet, "dave")
	require.NoError(t, err)
	require.Equal(t, "goodbye dave", got)
}

func TestNames_Sorted(t *testing.T) {
	table := NewHandlerTable()
	Handle(table, NewKey[int, int]("b"), func(ctx context.Context, n int) (int, error) { return n, nil })
	Handle(table, NewKey[int, int]("a"), func(ctx context.Context, n int) (int, error) { return n, nil })
	Handle(table, NewKey[int, int]("c"), func(ctx context.Context, n int) (int, error) { return n, nil })

	require.Equal(t, []string{"a", "b", "c"}, table.Names())
}
