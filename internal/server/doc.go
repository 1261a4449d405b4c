// Package server implements the MCP (Model Context Protocol) server for
// synthetic face generation.
//
// This package provides a JSON-RPC 2.0 server that exposes a single
// tool, generate_face, through the MCP protocol. It's designed to work
// with Claude and other MCP-compatible clients.
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
// # The generate_face tool
//
// Each call fetches a fresh randomly generated face from an external
// source, resizes it to the requested dimensions, applies a square,
// circle, or rounded-rectangle alpha mask, and re-encodes as PNG. The
// result is either written to disk (one file per image, with multi-image
// calls suffixed _0.._n-1) or returned inline as base64 image content.
//
// # Error Handling
//
// Malformed JSON-RPC envelopes produce protocol-level errors. Failures
// of the tool itself (bad parameters, unreachable source, filesystem
// errors) are reported inside the tool result with isError set and a
// single text entry naming the error kind. Panics in the pipeline are
// caught at the tool boundary and reported as internal errors.
//
// # State
//
// The server holds no state between invocations: every generated image
// is a fresh fetch, and nothing is cached.
package server
