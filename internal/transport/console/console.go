// Package console drives the conversation over a line-based terminal.
// It is the transport for local runs and manual testing; a chat
// transport plugs into the same router without changes.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/itsmoein/ledgerbot/internal/flow"
)

// consoleUserID identifies the single local operator. The router keys
// sessions by user, so the console always speaks as the same one.
const consoleUserID int64 = 1

type Loop struct {
	router  *flow.Router
	in      *bufio.Scanner
	out     io.Writer
	log     zerolog.Logger
	pending []flow.Choice
}

func New(router *flow.Router, in io.Reader, out io.Writer, log zerolog.Logger) *Loop {
	return &Loop{
		router: router,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
	}
}

// Run reads lines until EOF or context cancellation. A line matching
// the number of a displayed option is delivered as that option's
// callback data; anything else is delivered as message text.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info().Msg("Console transport started")
	l.render(l.router.Handle(ctx, flow.Event{UserID: consoleUserID, Text: flow.SlashStart}))

	for {
		fmt.Fprint(l.out, "> ")
		if !l.in.Scan() {
			if err := l.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			l.log.Info().Msg("Console input closed")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(l.in.Text())
		ev := flow.Event{UserID: consoleUserID, Text: line}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(l.pending) {
			ev = flow.Event{UserID: consoleUserID, Choice: l.pending[n-1].Data}
		}
		l.render(l.router.Handle(ctx, ev))
	}
}

func (l *Loop) render(replies []flow.Reply) {
	l.pending = nil
	for _, rep := range replies {
		fmt.Fprintln(l.out, rep.Text)
		for _, row := range rep.Choices {
			for _, c := range row {
				l.pending = append(l.pending, c)
				fmt.Fprintf(l.out, "  %d) %s\n", len(l.pending), c.Label)
			}
		}
	}
}
