// Package shared holds the HTTP helpers used by both the handlers and the
// middleware: JSON responses and error bodies, request decoding and
// validation, free-text sanitizing, and the request trace ID.
package shared
