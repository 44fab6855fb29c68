// Package console plays a Session over a plain line-oriented terminal.
// It is the front end used when stdout is not a TTY or --plain is set.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-ballpark/internal/engine"
)

// Run shows the welcome screen and then reads one answer per line from in
// until the game ends, the player quits, in is exhausted or ctx is done.
// Quitting is not an error.
func Run(ctx context.Context, s *engine.Session, in io.Reader, out io.Writer, width int) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	write(w, s.Start(), width)

	scanner := bufio.NewScanner(in)
	for !s.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt := s.Prompt().Text
		fmt.Fprint(w, prompt)
		if !strings.HasSuffix(prompt, " ") {
			fmt.Fprintln(w)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("console: write: %w", err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("console: read: %w", err)
			}
			return io.ErrUnexpectedEOF
		}

		events, err := s.Answer(scanner.Text())
		write(w, events, width)
		if errors.Is(err, engine.ErrQuit) {
			fmt.Fprintln(w, "Thanks for playing!")
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func write(w io.Writer, events []engine.Event, width int) {
	for _, ev := range events {
		if text := engine.Describe(ev, width); text != "" {
			fmt.Fprintln(w, text)
		}
	}
}
