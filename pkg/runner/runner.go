package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/parley/internal/logging"
)

var (
	// ErrQuit is returned by Run when the user asks to leave.
	ErrQuit = errors.New("conversation abandoned")
	// ErrInputClosed is returned by Run when input ends during a conversation.
	ErrInputClosed = errors.New("input closed during conversation")
)

// Session is the part of the engine the loop needs.
type Session interface {
	Active() bool
}

// Runner is a ports.InputSource reading commands line by line.
type Runner struct {
	in        io.Reader
	out       io.Writer
	presenter *TextPresenter
	prompt    string
	maxLine   int
	logger    *slog.Logger

	handlers []func()

	readOnce sync.Once
	lines    chan string
	readErr  error
}

// Option configures a Runner.
type Option func(*Runner)

// WithPrompt sets the input prompt (default "> ").
func WithPrompt(prompt string) Option {
	return func(r *Runner) {
		r.prompt = prompt
	}
}

// WithMaxLine bounds the length of a command line (default DefaultMaxLine).
func WithMaxLine(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxLine = n
		}
	}
}

// WithLogger configures the runner logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a runner reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer, presenter *TextPresenter, opts ...Option) *Runner {
	r := &Runner{
		in:        in,
		out:       out,
		presenter: presenter,
		prompt:    "> ",
		maxLine:   DefaultMaxLine,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnAdvance implements ports.InputSource.
func (r *Runner) OnAdvance(fn func()) {
	r.handlers = append(r.handlers, fn)
}

// Run renders and reads input until the session ends.
// It returns nil when the conversation completes, ErrQuit when the user
// leaves, and ErrInputClosed if input ends first.
//
// Input is read by a single goroutine owned by the Runner. A blocking read
// cannot be interrupted, so after a cancelled Run that goroutine stays parked
// until the next line or EOF; a later Run receives that line.
func (r *Runner) Run(ctx context.Context, session Session) error {
	r.readOnce.Do(r.startReader)

	for {
		if err := r.presenter.Render(); err != nil {
			return err
		}
		if !session.Active() {
			return nil
		}

		fmt.Fprint(r.out, r.prompt)

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-r.lines:
			if !ok {
				if r.readErr != nil {
					return fmt.Errorf("failed to read input: %w", r.readErr)
				}
				return ErrInputClosed
			}
			line = l
		}

		cmd, err := parseCommand(line, r.maxLine)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v. Please try again.\n", err)
			continue
		}
		if err := r.handle(cmd); err != nil {
			return err
		}
	}
}

func (r *Runner) startReader() {
	r.lines = make(chan string)
	go func() {
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			r.lines <- scanner.Text()
		}
		r.readErr = scanner.Err()
		close(r.lines)
	}()
}

func (r *Runner) handle(cmd command) error {
	switch cmd.kind {
	case cmdAdvance:
		r.logger.Debug("advance requested")
		for _, fn := range r.handlers {
			fn()
		}
	case cmdQuit:
		return ErrQuit
	case cmdSelect:
		if !r.presenter.Select(cmd.slot) {
			fmt.Fprintf(r.out, "No option %d.\n", cmd.slot)
		}
	default:
		fmt.Fprintln(r.out, "Press Enter to continue, type an option number, or quit.")
	}
	return nil
}
