package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"Trellis/internal/core/event"
	"Trellis/internal/core/mvc"
	"Trellis/internal/todo"
)

// ErrUnknownCommand reports input that matches no command in the Frame's
// grammar. Unknown commands are a user typo, distinct from unbound events
// (which are a silent no-op by contract).
var ErrUnknownCommand = errors.New("console: unknown command")

// View renders a todo list into a Frame. Rendering is pure construction;
// the Frame's input listener fires events by name through the callback
// table, looked up at submit time.
type View struct {
	mvc.ViewBase
	log zerolog.Logger
}

var _ mvc.View[[]todo.Item, *Frame] = (*View)(nil)

// NewView creates a console View with an empty callback table.
func NewView(baseLogger *zerolog.Logger) *View {
	return &View{
		ViewBase: mvc.NewViewBase(),
		log:      baseLogger.With().Str("component", "console_view").Logger(),
	}
}

// Render builds a Frame listing the items with their ids and done marks.
func (v *View) Render(items []todo.Item) (*Frame, error) {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, "todo:")

	if len(items) == 0 {
		lines = append(lines, "  (nothing to do)")
	}
	for _, item := range items {
		mark := " "
		if item.Done {
			mark = "x"
		}
		lines = append(lines, fmt.Sprintf("  [%s] %d %s", mark, item.ID, item.Name))
	}

	lines = append(lines, `commands: add <name> | done <id> | rm <id> | clear | quit`)

	return &Frame{
		Lines:  lines,
		submit: v.submit,
	}, nil
}

// submit parses one input line and fires the matching event. Firing goes
// through the callback table, so whatever is bound at submit time runs.
func (v *View) submit(ctx context.Context, line string) error {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "add":
		if rest == "" {
			return fmt.Errorf("%w: add needs a name", ErrUnknownCommand)
		}
		event.Fire(ctx, v.Callbacks(), todo.Add, rest)

	case "done":
		id, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("%w: done needs a numeric id", ErrUnknownCommand)
		}
		event.Fire(ctx, v.Callbacks(), todo.Toggle, id)

	case "rm":
		id, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("%w: rm needs a numeric id", ErrUnknownCommand)
		}
		event.Fire(ctx, v.Callbacks(), todo.Remove, id)

	case "clear":
		event.Fire(ctx, v.Callbacks(), todo.Clear, struct{}{})

	case "":
		// Blank line, nothing to do.

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
	}

	return nil
}
