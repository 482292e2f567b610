// Package mcp provides an MCP (Model Context Protocol) server adapter for
// docq. It lets AI assistants ask questions against the local document
// corpus and ingest new material.
package mcp

import "errors"

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")

// ErrMissingIngestService is returned when the ingest service is not provided.
var ErrMissingIngestService = errors.New("mcp: ingest service is required")
