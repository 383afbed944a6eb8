package answer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Messages shown to the user in place of a model response.
const (
	NoContentMessage = "No website content available. Please scrape a website first."
	ApologyMessage   = "Sorry, I couldn't generate a response. Please try again."
	FailureMessage   = "Error generating response. Please try again."
)

// ErrGenerationFailed is returned when the final generation attempt fails.
var ErrGenerationFailed = errors.New("response generation failed")

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RetryPolicy bounds how often generation is attempted.
type RetryPolicy struct {
	// MaxAttempts is the total number of calls, including the first.
	MaxAttempts int

	// Delay is the wait after a failed call before the next one.
	Delay time.Duration
}

// DefaultRetryPolicy returns three attempts with a one second delay.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: time.Second}
}

// Reply is the outcome of one question.
type Reply struct {
	// Text is the model response or one of the fixed messages.
	Text string

	// Attempts is the number of Generate calls made.
	Attempts int
}

// Answerer answers questions about page content using a Generator.
type Answerer struct {
	generator       Generator
	policy          RetryPolicy
	maxContentChars int
	logger          *slog.Logger
}

// Option configures an Answerer.
type Option func(*Answerer)

// WithRetryPolicy sets the retry policy. MaxAttempts below one is raised
// to one and a negative delay becomes zero.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(a *Answerer) {
		a.policy = RetryPolicy{
			MaxAttempts: max(p.MaxAttempts, 1),
			Delay:       max(p.Delay, 0),
		}
	}
}

// WithMaxContentChars sets how many characters of content go into a prompt.
func WithMaxContentChars(n int) Option {
	return func(a *Answerer) {
		a.maxContentChars = n
	}
}

// WithLogger sets the logger for generation failures.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Answerer) {
		a.logger = logger
	}
}

// New creates an Answerer around g.
func New(g Generator, opts ...Option) *Answerer {
	a := &Answerer{
		generator:       g,
		policy:          DefaultRetryPolicy(),
		maxContentChars: DefaultMaxContentChars,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Answer asks the generator about content. The returned Reply always has
// non-empty Text. The error is non-nil only when every attempt was used
// and the last one failed, or ctx was cancelled during a retry delay; Text
// is FailureMessage in both cases.
func (a *Answerer) Answer(ctx context.Context, content, question string) (Reply, error) {
	if content == "" {
		return Reply{Text: NoContentMessage}, nil
	}

	prompt := BuildPrompt(content, question, a.maxContentChars)

	var reply Reply
	for attempt := 1; attempt <= a.policy.MaxAttempts; attempt++ {
		reply.Attempts = attempt

		text, err := a.generator.Generate(ctx, prompt)
		if err == nil {
			if text != "" {
				reply.Text = text
				return reply, nil
			}
			a.logger.Debug("empty response from model", "attempt", attempt)
			continue
		}

		if attempt == a.policy.MaxAttempts {
			a.logger.Error("Error generating response", "error", err, "attempts", attempt)
			reply.Text = FailureMessage
			return reply, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, attempt, err)
		}

		a.logger.Debug("generation attempt failed, retrying",
			"attempt", attempt,
			"delay", a.policy.Delay,
			"error", err,
		)
		if err := sleep(ctx, a.policy.Delay); err != nil {
			a.logger.Error("Error generating response", "error", err, "attempts", attempt)
			reply.Text = FailureMessage
			return reply, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		}
	}

	reply.Text = ApologyMessage
	return reply, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
