package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/nao1215/sitechat/internal/extract"
	"github.com/nao1215/sitechat/internal/fetch"
	"github.com/nao1215/sitechat/internal/model"
	"github.com/nao1215/sitechat/internal/report"
)

// Messages printed by the loop.
const (
	FarewellMessage  = "Goodbye!"
	CancelledMessage = "Operation cancelled by user"
	NoContentWarning = "Warning: No content extracted from website"

	clearSequence = "\033[2J\033[H"
	prompt        = "> "
)

// Commands, compared case-insensitively.
const (
	cmdExit  = "x"
	cmdClear = "e"
	cmdNew   = "new"
)

// State is the loop's current state.
type State int

const (
	// AwaitingURL prompts for a website to scrape.
	AwaitingURL State = iota
	// HasContent prompts for questions about the scraped website.
	HasContent
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case AwaitingURL:
		return "awaiting_url"
	case HasContent:
		return "has_content"
	default:
		return "unknown"
	}
}

// Session is the chat state the console drives. *session.Session
// implements it.
type Session interface {
	Scrape(ctx context.Context, rawURL string) (*model.Page, error)
	Ask(ctx context.Context, question string) (model.Answer, error)
}

// Console reads commands, URLs and questions and prints the results.
type Console struct {
	session    Session
	in         *lineReader
	out        io.Writer
	writer     report.Writer
	interrupts <-chan os.Signal
	terminal   bool
	logger     *slog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithWriter sets how answers are printed. The default is a
// report.TextWriter on the console output.
func WithWriter(w report.Writer) Option {
	return func(c *Console) {
		c.writer = w
	}
}

// WithInterrupts sets the channel that signals an interrupt. The caller
// registers it with signal.Notify.
func WithInterrupts(ch <-chan os.Signal) Option {
	return func(c *Console) {
		c.interrupts = ch
	}
}

// WithTerminal overrides whether the output is treated as a terminal,
// which decides whether the screen is cleared.
func WithTerminal(isTerminal bool) Option {
	return func(c *Console) {
		c.terminal = isTerminal
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, s Session, opts ...Option) *Console {
	c := &Console{
		session:  s,
		in:       newLineReader(in),
		out:      out,
		terminal: isTerminal(out),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.writer == nil {
		c.writer = report.NewTextWriter(out)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Run shows the banner and runs the loop until the user exits, input ends
// or ctx is done. Only a read error or ctx ending returns an error.
func (c *Console) Run(ctx context.Context) error {
	c.clear()
	c.banner()

	state := AwaitingURL
	for {
		var (
			done bool
			err  error
		)
		switch state {
		case AwaitingURL:
			state, done, err = c.awaitURL(ctx)
		case HasContent:
			state, done, err = c.askQuestion(ctx)
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// awaitURL handles one input at the URL prompt.
func (c *Console) awaitURL(ctx context.Context) (State, bool, error) {
	c.println("\nEnter a website URL:")
	input, done, err := c.read(ctx)
	if done || err != nil {
		return AwaitingURL, done, err
	}
	if input == "" {
		return AwaitingURL, false, nil
	}

	switch strings.ToLower(input) {
	case cmdExit:
		c.println(FarewellMessage)
		return AwaitingURL, true, nil
	case cmdClear:
		c.clear()
		return AwaitingURL, false, nil
	}

	if !c.scrape(ctx, input) {
		return AwaitingURL, false, nil
	}

	c.println("\nYou can now ask questions about the website")
	c.println("X - Exit | New - Different website | E - Clear console")
	return HasContent, false, nil
}

// askQuestion handles one input at the question prompt.
func (c *Console) askQuestion(ctx context.Context) (State, bool, error) {
	c.println("\nEnter your question:")
	input, done, err := c.read(ctx)
	if done || err != nil {
		return HasContent, done, err
	}
	if input == "" {
		return HasContent, false, nil
	}

	switch strings.ToLower(input) {
	case cmdExit:
		c.println(FarewellMessage)
		return HasContent, true, nil
	case cmdNew:
		return AwaitingURL, false, nil
	case cmdClear:
		c.clear()
		return HasContent, false, nil
	}

	c.println("\nGenerating response...")
	answer, err := c.session.Ask(ctx, input)
	c.drainInterrupts()
	if err != nil {
		c.logger.Debug("answer failed", "error", err)
	}
	if _, err := c.writer.Write(answer); err != nil {
		return HasContent, false, fmt.Errorf("failed to write answer: %w", err)
	}
	return HasContent, false, nil
}

// read prints the prompt and returns the trimmed input. done is true at
// end of input. An interrupt prints the cancellation notice and returns
// empty input so the caller re-prompts.
func (c *Console) read(ctx context.Context) (string, bool, error) {
	c.print(prompt)
	line, err := c.in.readLine(ctx, c.interrupts)
	switch {
	case err == nil:
		return strings.TrimSpace(line), false, nil
	case errors.Is(err, errInterrupted):
		c.println("\n" + CancelledMessage)
		return "", false, nil
	case errors.Is(err, io.EOF):
		c.println("")
		c.println(FarewellMessage)
		return "", true, nil
	default:
		return "", false, err
	}
}

// scrape runs a scrape and prints the outcome. It reports success.
func (c *Console) scrape(ctx context.Context, rawURL string) bool {
	c.println("\nScraping website content...")
	page, err := c.session.Scrape(ctx, rawURL)
	c.drainInterrupts()

	switch {
	case err == nil:
		c.printf("Successfully extracted %d content blocks\n", len(page.Blocks))
		return true
	case errors.Is(err, extract.ErrNoContent):
		c.println(NoContentWarning)
	case isFetchError(err):
		c.logger.Debug("fetch failed", "url", rawURL, "timeout", fetch.IsTimeout(err))
		c.printf("Error accessing website: %v\n", err)
	default:
		c.printf("Error scraping website: %v\n", err)
	}
	return false
}

// isFetchError reports whether err came from fetching rather than parsing.
func isFetchError(err error) bool {
	for _, target := range []error{fetch.ErrInvalidURL, fetch.ErrRequest, fetch.ErrHTTPStatus, fetch.ErrBodyTooLarge} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// drainInterrupts discards interrupts that arrived while a scrape or an
// answer was in progress. Those calls are not cancelled.
func (c *Console) drainInterrupts() {
	for {
		select {
		case <-c.interrupts:
			c.logger.Debug("interrupt ignored while busy")
		default:
			return
		}
	}
}

func (c *Console) banner() {
	c.println("\n=== Website Chatbot ===")
	c.println("Commands:")
	c.println("X - Exit      E - Clear console")
	c.println("New - Analyze different website")
}

// clear clears the screen when the output is a terminal.
func (c *Console) clear() {
	if c.terminal {
		c.print(clearSequence)
	}
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = io.WriteString(c.out, s+"\n")
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
