package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/sitechat/internal/extract"
	"github.com/nao1215/sitechat/internal/fetch"
	"github.com/nao1215/sitechat/internal/model"
)

// PageFetcher retrieves a page. *fetch.Fetcher implements it.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.Response, error)
}

// ContentExtractor pulls text out of a page body. *extract.Extractor
// implements it.
type ContentExtractor interface {
	ExtractBytes(body []byte, contentType string) (*extract.Result, error)
}

// FetchStep downloads page.URL and fills the response fields of the page.
type FetchStep struct {
	fetcher PageFetcher
	logger  *slog.Logger
}

// NewFetchStep creates a FetchStep.
func NewFetchStep(fetcher PageFetcher, logger *slog.Logger) *FetchStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchStep{fetcher: fetcher, logger: logger}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do executes the fetch step. page.URL is replaced by its normalised form.
func (s *FetchStep) Do(ctx context.Context, page *model.Page) error {
	resp, err := s.fetcher.Fetch(ctx, page.URL)
	if err != nil {
		return err
	}

	page.URL = resp.URL
	page.FinalURL = resp.FinalURL
	page.StatusCode = resp.StatusCode
	page.ContentType = resp.ContentType
	page.Raw = resp.Body
	page.FetchedAt = resp.FetchedAt
	page.ComputeHash()

	s.logger.Debug("page fetched",
		"url", page.FinalURL,
		"status", page.StatusCode,
		"sha256", page.Hash,
	)
	return nil
}

// ExtractStep extracts the content blocks from page.Raw.
type ExtractStep struct {
	extractor ContentExtractor
	logger    *slog.Logger
}

// NewExtractStep creates an ExtractStep.
func NewExtractStep(extractor ContentExtractor, logger *slog.Logger) *ExtractStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStep{extractor: extractor, logger: logger}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do executes the extract step. The title is kept even when no content
// is found; the error from the extractor is returned as is.
func (s *ExtractStep) Do(_ context.Context, page *model.Page) error {
	result, err := s.extractor.ExtractBytes(page.Raw, page.ContentType)
	if result != nil {
		page.Title = result.Title
	}
	if err != nil {
		return err
	}

	page.SetBlocks(result.Blocks)

	s.logger.Debug("content extracted",
		"url", page.FinalURL,
		"blocks", len(page.Blocks),
		"chars", len(page.Content),
	)
	return nil
}

// NewScrapePipeline returns a pipeline that fetches and then extracts.
func NewScrapePipeline(fetcher PageFetcher, extractor ContentExtractor, logger *slog.Logger) *Pipeline {
	p := New(WithLogger(logger))
	p.AddSteps(
		NewFetchStep(fetcher, logger),
		NewExtractStep(extractor, logger),
	)
	return p
}
