// Package log provides the structured logger used by sitechat, built on the
// standard slog package.
//
// The logger wraps every handler in a SecureHandler so that the Gemini API
// key never reaches the terminal or a shared log:
//   - attributes whose key names a credential (api_key, x-goog-api-key, ...)
//     are replaced with MaskValue
//   - string values that look like a credential (Google API keys, bearer
//     tokens) are replaced with MaskValue
//   - "key" query parameters embedded in URL values are masked in place,
//     so the rest of the URL stays readable
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("calling model", "url", "https://example.com/v1?key=AIza...")
//	// url=https://example.com/v1?key=***REDACTED***
//
// Without verbose mode only errors are written, matching the quiet
// interactive experience; the console prints user-facing messages itself.
package log
