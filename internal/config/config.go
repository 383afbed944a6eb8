package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "sitechat"

	// DefaultModel is the Gemini model used for answers.
	DefaultModel = "gemini-1.5-flash"

	// DefaultAPIBaseURL is the Gemini REST endpoint.
	DefaultAPIBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultTemperature, DefaultTopP and DefaultTopK are the sampling
	// parameters sent with every generation request.
	DefaultTemperature = 0.7
	DefaultTopP        = 0.8
	DefaultTopK        = 40

	// DefaultFetchTimeout bounds a single page fetch, connection included.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultGenerationTimeout of zero means a generation call is not bounded.
	DefaultGenerationTimeout = time.Duration(0)

	// DefaultUserAgent is a desktop browser User-Agent. Many sites refuse
	// requests from unknown clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultMaxBodySize limits the response body read from a page.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultMinBlockLength is the minimum length in characters of a
	// heading or paragraph kept by the extractor.
	DefaultMinBlockLength = 20

	// DefaultMaxContentChars is how many characters of page content are
	// embedded in a prompt.
	DefaultMaxContentChars = 2000

	// DefaultMaxAttempts is the number of generation attempts per question.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is the pause between failed generation attempts.
	DefaultRetryDelay = 1 * time.Second

	// OutputText, OutputMarkdown and OutputJSON are the supported answer formats.
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"

	// DefaultOutputFormat is the answer format printed by the console.
	DefaultOutputFormat = OutputText

	// APIKeyEnv is the environment variable holding the Gemini API key.
	APIKeyEnv = "GEMINI_API_KEY"
)

// Config holds all configuration options for sitechat.
// It is populated from defaults, the optional configuration file and CLI
// flags, and passed to the components that need it.
type Config struct {
	// Model is the Gemini model name, e.g. "gemini-1.5-flash".
	Model string

	// APIBaseURL is the scheme and host of the Gemini REST API.
	APIBaseURL string

	// Temperature, TopP and TopK are fixed for the whole session.
	Temperature float64
	TopP        float64
	TopK        int

	// FetchTimeout is the timeout for fetching a page.
	FetchTimeout time.Duration

	// GenerationTimeout bounds one generation attempt. Zero disables it.
	GenerationTimeout time.Duration

	// UserAgent is the User-Agent header sent when fetching pages.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes.
	// Set to 0 to use the default (5MB).
	MaxBodySize int64

	// Proxy is an optional proxy URL for page fetches, e.g.
	// "socks5://127.0.0.1:9050" or "http://proxy.local:3128".
	Proxy string

	// MinBlockLength is the minimum length of an extracted text block.
	MinBlockLength int

	// MaxContentChars is the number of content characters sent to the model.
	MaxContentChars int

	// MaxAttempts is the number of generation attempts per question.
	MaxAttempts int

	// RetryDelay is the pause between failed generation attempts.
	RetryDelay time.Duration

	// OutputFormat selects how answers are printed: "text", "markdown" or "json".
	OutputFormat string

	// PrettyJSON indents answers printed in the "json" format.
	PrettyJSON bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicitly requested configuration file, if any.
	ConfigFilePath string

	// EnvFile is the explicitly requested .env file, if any.
	EnvFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Model:             DefaultModel,
		APIBaseURL:        DefaultAPIBaseURL,
		Temperature:       DefaultTemperature,
		TopP:              DefaultTopP,
		TopK:              DefaultTopK,
		FetchTimeout:      DefaultFetchTimeout,
		GenerationTimeout: DefaultGenerationTimeout,
		UserAgent:         DefaultUserAgent,
		MaxBodySize:       DefaultMaxBodySize,
		MinBlockLength:    DefaultMinBlockLength,
		MaxContentChars:   DefaultMaxContentChars,
		MaxAttempts:       DefaultMaxAttempts,
		RetryDelay:        DefaultRetryDelay,
		OutputFormat:      DefaultOutputFormat,
	}
}

// XDGConfigDir returns the XDG config directory for sitechat.
// On Linux: ~/.config/sitechat
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.Model == "" {
		return ErrEmptyModel
	}
	if c.FetchTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.GenerationTimeout < 0 {
		return ErrInvalidGenerationTimeout
	}
	if c.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}
	if c.RetryDelay < 0 {
		return ErrInvalidRetryDelay
	}
	if c.MaxContentChars <= 0 {
		return ErrInvalidMaxContentChars
	}
	if c.MinBlockLength < 0 {
		return ErrInvalidMinBlockLength
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return ErrInvalidTemperature
	}
	if c.TopP < 0 || c.TopP > 1 {
		return ErrInvalidTopP
	}
	if c.TopK < 0 {
		return ErrInvalidTopK
	}
	switch c.OutputFormat {
	case OutputText, OutputMarkdown, OutputJSON:
	default:
		return ErrInvalidOutputFormat
	}
	return nil
}
