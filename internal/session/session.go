package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/sitechat/internal/answer"
	"github.com/nao1215/sitechat/internal/model"
)

// Scraper runs the scrape steps against a page. *pipeline.Pipeline
// implements it.
type Scraper interface {
	Execute(ctx context.Context, page *model.Page) error
}

// Answerer answers a question about content. *answer.Answerer implements it.
type Answerer interface {
	Answer(ctx context.Context, content, question string) (answer.Reply, error)
}

// Session is a single-user chat about one page at a time.
// It is not safe for concurrent use.
type Session struct {
	scraper  Scraper
	answerer Answerer
	logger   *slog.Logger
	now      func() time.Time

	page *model.Page
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock replaces time.Now for elapsed time measurement.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New creates a Session with no content.
func New(scraper Scraper, answerer Answerer, opts ...Option) *Session {
	s := &Session{
		scraper:  scraper,
		answerer: answerer,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Scrape fetches and extracts rawURL. On success the page becomes the
// session content; on failure the previous content is kept and the
// partially filled page is returned with the error.
func (s *Session) Scrape(ctx context.Context, rawURL string) (*model.Page, error) {
	page := model.NewPage(rawURL)
	if err := s.scraper.Execute(ctx, page); err != nil {
		s.logger.Debug("scrape failed", "url", rawURL, "error", err)
		return page, err
	}

	s.page = page
	s.logger.Debug("scrape succeeded",
		"url", page.FinalURL,
		"page", page.DisplayName(),
		"blocks", len(page.Blocks),
	)
	return page, nil
}

// Ask answers question about the current content and measures how long
// it took. The returned Answer always has a response to show, even when
// err is non-nil.
func (s *Session) Ask(ctx context.Context, question string) (model.Answer, error) {
	start := s.now()
	reply, err := s.answerer.Answer(ctx, s.Content(), question)

	a := model.Answer{
		Question: question,
		Response: reply.Text,
		Elapsed:  s.now().Sub(start),
		Attempts: reply.Attempts,
	}
	if s.page != nil {
		a.Source = s.page.FinalURL
	}
	return a, err
}

// Content returns the current content blob, empty before the first
// successful scrape.
func (s *Session) Content() string {
	if s.page == nil {
		return ""
	}
	return s.page.Content
}
