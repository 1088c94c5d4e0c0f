package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"aiplay/game"
	"aiplay/metrics"
	"aiplay/searcher"
)

type humanAgent[A comparable] struct {
	in    *bufio.Scanner
	out   io.Writer
	parse func(string) (A, error)
}

// NewHuman returns an agent that prompts on w and reads one action per line
// from r. Unparsable or illegal input is reported and asked for again.
func NewHuman[A comparable](r io.Reader, w io.Writer, parse func(string) (A, error)) Agent[A] {
	return &humanAgent[A]{in: bufio.NewScanner(r), out: w, parse: parse}
}

func (a *humanAgent[A]) FindMove(state game.State[A]) (A, metrics.Snapshot, error) {
	var action A
	if state.Terminal() {
		return action, metrics.Snapshot{}, searcher.ErrTerminal
	}

	start := time.Now()
	if s, ok := state.(fmt.Stringer); ok {
		fmt.Fprintln(a.out, s)
	}
	for {
		fmt.Fprintf(a.out, "%v to move: ", game.ToMove(state))
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return action, metrics.Snapshot{}, fmt.Errorf("reading move: %w", err)
			}
			return action, metrics.Snapshot{}, ErrNoInput
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}

		var err error
		action, err = a.parse(line)
		if err != nil {
			fmt.Fprintf(a.out, "invalid move: %v\n", err)
			continue
		}
		if _, err := state.Play(action); err != nil {
			fmt.Fprintf(a.out, "illegal move: %v\n", err)
			continue
		}
		return action, metrics.Snapshot{Duration: time.Since(start)}, nil
	}
}
