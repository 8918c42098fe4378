// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, a .env file and
// environment variables). It provides type-safe access to the settings the
// studio, the Gemini adapter and the HTTP server need.
package config
