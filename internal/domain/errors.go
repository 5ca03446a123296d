package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed or incomplete inquiry input.
// Message is safe to show to the visitor.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Fields, ", "))
}

// ConfigurationError reports missing transport settings. It is raised
// before any connection attempt.
type ConfigurationError struct {
	Transport string
	Missing   []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s transport is not configured: missing %s", e.Transport, strings.Join(e.Missing, ", "))
}

// DispatchError wraps a transport failure. Sends are never retried.
type DispatchError struct {
	Transport string
	Err       error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s dispatch failed: %v", e.Transport, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// SitemapSourceError records why the dynamic product source could not be
// used. It is only ever carried inside a fallback sitemap result.
type SitemapSourceError struct {
	Source string
	Err    error
}

func (e *SitemapSourceError) Error() string {
	return fmt.Sprintf("sitemap source %q unavailable: %v", e.Source, e.Err)
}

func (e *SitemapSourceError) Unwrap() error {
	return e.Err
}
