// Package mcp provides an MCP (Model Context Protocol) server adapter for Scribe.
// It enables AI assistants to turn encounter transcripts into structured notes.
package mcp

import "errors"

// ErrMissingParserService is returned when the parser service is not provided.
var ErrMissingParserService = errors.New("mcp: parser service is required")
