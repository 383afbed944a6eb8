package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid fetch timeout: must be positive")

	// ErrInvalidGenerationTimeout is returned when the generation timeout is negative.
	// Zero disables the timeout.
	ErrInvalidGenerationTimeout = errors.New("invalid generation timeout: must be non-negative")

	// ErrInvalidMaxAttempts is returned when fewer than one generation attempt is allowed.
	ErrInvalidMaxAttempts = errors.New("invalid max attempts: must be at least 1")

	// ErrInvalidRetryDelay is returned when the delay between attempts is negative.
	ErrInvalidRetryDelay = errors.New("invalid retry delay: must be non-negative")

	// ErrInvalidMaxContentChars is returned when the prompt content limit is not positive.
	ErrInvalidMaxContentChars = errors.New("invalid max content chars: must be positive")

	// ErrInvalidMinBlockLength is returned when the minimum block length is negative.
	ErrInvalidMinBlockLength = errors.New("invalid min block length: must be non-negative")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 for the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidTemperature is returned when the temperature is outside [0, 2].
	ErrInvalidTemperature = errors.New("invalid temperature: must be between 0 and 2")

	// ErrInvalidTopP is returned when the nucleus sampling threshold is outside [0, 1].
	ErrInvalidTopP = errors.New("invalid top_p: must be between 0 and 1")

	// ErrInvalidTopK is returned when top-k is negative.
	ErrInvalidTopK = errors.New("invalid top_k: must be non-negative")

	// ErrEmptyModel is returned when no model name is configured.
	ErrEmptyModel = errors.New("invalid model: must not be empty")

	// ErrInvalidOutputFormat is returned for an unknown output format.
	ErrInvalidOutputFormat = errors.New("invalid output format: must be \"text\", \"markdown\" or \"json\"")

	// ErrConfigNotFound is returned when an explicitly requested configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
