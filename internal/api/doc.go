// Package api handles incoming HTTP requests for athletes, categories and
// training centers: request decoding and validation, mapping between the
// JSON payloads and domain entities, and translation of service errors into
// HTTP status codes and client-safe messages.
package api
