package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Host is the console toolkit runtime. It mounts each Frame pushed through
// the controller sink (replacing the previous one) and feeds interactive
// input back into the currently mounted Frame.
type Host struct {
	in  io.Reader
	out io.Writer
	log zerolog.Logger

	mu      sync.Mutex
	mounted *Frame
}

// NewHost creates a console host over the given input and output streams.
func NewHost(in io.Reader, out io.Writer, baseLogger *zerolog.Logger) *Host {
	return &Host{
		in:  in,
		out: out,
		log: baseLogger.With().Str("component", "console_host").Logger(),
	}
}

// Mount is the render sink: it replaces the mounted Frame and repaints.
// Pass it to Controller.OnUpdate.
func (h *Host) Mount(frame *Frame) {
	h.mu.Lock()
	h.mounted = frame
	h.mu.Unlock()

	fmt.Fprintf(h.out, "\n%s\n> ", frame)
}

// Serve reads input lines until EOF, "quit" or context cancellation, and
// submits each line to the mounted Frame. Command errors are reported to
// the user and the loop continues.
func (h *Host) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(h.in)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if line == "quit" || line == "exit" {
			h.log.Info().Msg("Session ended by user")
			return nil
		}

		h.mu.Lock()
		frame := h.mounted
		h.mu.Unlock()

		if frame == nil {
			fmt.Fprintln(h.out, "nothing mounted yet")
			fmt.Fprint(h.out, "> ")
			continue
		}

		if err := frame.Submit(ctx, line); err != nil {
			if errors.Is(err, ErrUnknownCommand) {
				fmt.Fprintf(h.out, "%v\n> ", err)
				continue
			}
			return err
		}
	}

	return scanner.Err()
}
