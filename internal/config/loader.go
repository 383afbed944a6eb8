package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// current and home directories.
const DefaultConfigFile = ".sitechat"

// xdgConfigFile is the configuration file name inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// File represents the structure of the YAML configuration file.
// Unset keys keep the current configuration value. Pointers are used where
// the zero value is a meaningful setting.
type File struct {
	Model             string         `yaml:"model,omitempty"`
	APIBaseURL        string         `yaml:"api_base_url,omitempty"`
	Temperature       *float64       `yaml:"temperature,omitempty"`
	TopP              *float64       `yaml:"top_p,omitempty"`
	TopK              *int           `yaml:"top_k,omitempty"`
	FetchTimeout      time.Duration  `yaml:"fetch_timeout,omitempty"`
	GenerationTimeout *time.Duration `yaml:"generation_timeout,omitempty"`
	UserAgent         string         `yaml:"user_agent,omitempty"`
	MaxBodySize       int64          `yaml:"max_body_size,omitempty"`
	Proxy             string         `yaml:"proxy,omitempty"`
	MinBlockLength    *int           `yaml:"min_block_length,omitempty"`
	MaxContentChars   int            `yaml:"max_content_chars,omitempty"`
	MaxAttempts       int            `yaml:"max_attempts,omitempty"`
	RetryDelay        *time.Duration `yaml:"retry_delay,omitempty"`
	Output            string         `yaml:"output,omitempty"`
	PrettyJSON        *bool          `yaml:"pretty_json,omitempty"`
}

// LoadConfigFile loads a configuration file from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .sitechat in the current directory
// 3. Look for .sitechat in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Load finds and applies the configuration file to c. A missing file is
// only an error when ConfigFilePath was set explicitly. It returns the path
// that was applied, or an empty string.
func (c *Config) Load() (string, error) {
	path := FindConfigFile(c.ConfigFilePath)
	if path == "" {
		if c.ConfigFilePath != "" {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, c.ConfigFilePath)
		}
		return "", nil
	}

	cf, err := LoadConfigFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	c.Apply(cf)
	return path, nil
}

// Apply overlays the values set in cf onto c.
func (c *Config) Apply(cf *File) {
	if cf == nil {
		return
	}
	if cf.Model != "" {
		c.Model = cf.Model
	}
	if cf.APIBaseURL != "" {
		c.APIBaseURL = cf.APIBaseURL
	}
	if cf.Temperature != nil {
		c.Temperature = *cf.Temperature
	}
	if cf.TopP != nil {
		c.TopP = *cf.TopP
	}
	if cf.TopK != nil {
		c.TopK = *cf.TopK
	}
	if cf.FetchTimeout != 0 {
		c.FetchTimeout = cf.FetchTimeout
	}
	if cf.GenerationTimeout != nil {
		c.GenerationTimeout = *cf.GenerationTimeout
	}
	if cf.UserAgent != "" {
		c.UserAgent = cf.UserAgent
	}
	if cf.MaxBodySize != 0 {
		c.MaxBodySize = cf.MaxBodySize
	}
	if cf.Proxy != "" {
		c.Proxy = cf.Proxy
	}
	if cf.MinBlockLength != nil {
		c.MinBlockLength = *cf.MinBlockLength
	}
	if cf.MaxContentChars != 0 {
		c.MaxContentChars = cf.MaxContentChars
	}
	if cf.MaxAttempts != 0 {
		c.MaxAttempts = cf.MaxAttempts
	}
	if cf.RetryDelay != nil {
		c.RetryDelay = *cf.RetryDelay
	}
	if cf.Output != "" {
		c.OutputFormat = cf.Output
	}
	if cf.PrettyJSON != nil {
		c.PrettyJSON = *cf.PrettyJSON
	}
}

// Template returns a commented YAML configuration file holding the
// default values.
func Template() ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(defaultFile()); err != nil {
		return nil, err
	}
	node.HeadComment = "# sitechat configuration.\n" +
		"# Place this file at ./.sitechat, ~/.sitechat or " + filepath.Join(XDGConfigDir(), xdgConfigFile) + ".\n" +
		"# The API key is read from " + APIKeyEnv + " (or a .env file), never from this file."

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// defaultFile mirrors NewConfig as a File.
func defaultFile() *File {
	c := NewConfig()
	return &File{
		Model:             c.Model,
		APIBaseURL:        c.APIBaseURL,
		Temperature:       &c.Temperature,
		TopP:              &c.TopP,
		TopK:              &c.TopK,
		FetchTimeout:      c.FetchTimeout,
		GenerationTimeout: &c.GenerationTimeout,
		UserAgent:         c.UserAgent,
		MaxBodySize:       c.MaxBodySize,
		MinBlockLength:    &c.MinBlockLength,
		MaxContentChars:   c.MaxContentChars,
		MaxAttempts:       c.MaxAttempts,
		RetryDelay:        &c.RetryDelay,
		Output:            c.OutputFormat,
		PrettyJSON:        &c.PrettyJSON,
	}
}

// errNotExist reports whether err means a file does not exist.
func errNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
