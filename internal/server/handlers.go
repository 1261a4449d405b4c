package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/face-gen-mcp/internal/facegen"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke.
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ToolResult is the MCP tools/call result payload. A failed call sets
// IsError and carries exactly one text block naming the error kind;
// success content and the error flag are never combined.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is one entry of a tool result: text, or an inline image.
type ContentBlock struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// handleToolsCall processes a tools/call request.
//
// Malformed protocol envelopes get a JSON-RPC error; domain failures of
// the tool itself are reported inside the result with isError set.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if params.Name != ToolName {
		return s.errorResponse(req.ID, -32602, "Unknown tool", params.Name)
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  s.executeGenerateFace(params.Arguments),
	}
}

// executeGenerateFace runs the generation pipeline and packages the
// outcome. A panic in the pipeline is downgraded to an internal error
// with the original message preserved, never propagated to the
// protocol loop.
func (s *Server) executeGenerateFace(args json.RawMessage) (result *ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("tool handler panic")
			result = errorResult(&facegen.Error{
				Kind: facegen.KindInternal,
				Err:  fmt.Errorf("%v", r),
			})
		}
	}()

	var p facegen.Params
	if err := json.Unmarshal(args, &p); err != nil {
		return errorResult(&facegen.Error{Kind: facegen.KindInvalidParams, Err: err})
	}

	artifacts, err := s.gen.Generate(context.Background(), p)
	if err != nil {
		var gerr *facegen.Error
		if !errors.As(err, &gerr) {
			gerr = &facegen.Error{Kind: facegen.KindInternal, Err: err}
		}
		s.log.Error().Err(err).Str("kind", gerr.Kind.String()).Msg("generation failed")
		return errorResult(gerr)
	}

	if p.ReturnImageContent {
		blocks := make([]ContentBlock, 0, len(artifacts))
		for _, a := range artifacts {
			blocks = append(blocks, ContentBlock{Type: "image", Data: a.Data, MimeType: a.MimeType})
		}
		return &ToolResult{Content: blocks}
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	return &ToolResult{Content: []ContentBlock{{
		Type: "text",
		Text: fmt.Sprintf("Generated %d image(s):\n%s", len(paths), strings.Join(paths, "\n")),
	}}}
}

func errorResult(err *facegen.Error) *ToolResult {
	return &ToolResult{
		IsError: true,
		Content: []ContentBlock{{Type: "text", Text: err.Error()}},
	}
}
