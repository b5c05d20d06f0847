// Package server implements the MCP (Model Context Protocol) server for
// sprite background cleanup.
//
// This package provides a JSON-RPC 2.0 server that exposes the matting
// engine through the MCP protocol, so Claude and other MCP-compatible
// clients can clean up AI-generated sprite sheets conversationally.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Matting:
//   - cleanup_background: Remove the background and write a cleaned PNG
//   - cleanup_preview: Dry-run with removed pixels highlighted red
//
// Pre-flight Diagnostics:
//   - sample_corners: Inspect the four background reference colors
//   - suggest_threshold: Derive an outline threshold from the histogram
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process. Matting output
// is never cached: each cleanup call works on a fresh pixel copy.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
