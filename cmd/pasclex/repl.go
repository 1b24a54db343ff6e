package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/pasclex/analyzer"
	"github.com/reusee/pasclex/render"
)

const replHelp = `lines are added to the buffer
:run    scan the whole buffer and show the tokens
:show   print the buffer
:reset  clear the buffer
:quit   exit`

var errQuit = errors.New("quit")

// session holds the text entered so far; each :run re-lexes all of it.
type session struct {
	buf         strings.Builder
	analyze     analyzer.Analyze
	render      render.Render
	reportError render.ReportError
	stdout      io.Writer
	stderr      io.Writer
}

func (s *session) handle(ctx context.Context, line string) error {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return errQuit
	case ":help", ":h":
		fmt.Fprintln(s.stdout, replHelp)
	case ":reset":
		s.buf.Reset()
	case ":show":
		fmt.Fprint(s.stdout, s.buf.String())
	case ":run":
		report, err := s.analyze(ctx, "<repl>", s.buf.String())
		if err != nil {
			s.reportError(s.stderr, err)
			return nil
		}
		if err := s.render(s.stdout, report); err != nil {
			return err
		}
	default:
		s.buf.WriteString(line)
		s.buf.WriteString("\n")
	}
	return nil
}

func runREPL(
	ctx context.Context,
	analyze analyzer.Analyze,
	renderReports render.Render,
	reportError render.ReportError,
	stdout io.Writer,
	stderr io.Writer,
) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".pasclex_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return wrap(err)
	}
	defer rl.Close()

	s := &session{
		analyze:     analyze,
		render:      renderReports,
		reportError: reportError,
		stdout:      stdout,
		stderr:      stderr,
	}
	fmt.Fprintln(stdout, replHelp)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		if err := s.handle(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}
