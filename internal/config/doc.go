// Package config provides configuration structures and utilities for
// sitechat. It defines the defaults for fetching pages, extracting content
// and generating answers, loads the optional YAML configuration file and
// the optional .env file that carries the Gemini API key.
package config
