package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func callTool(t *testing.T, s *Server, args string) *ToolResult {
	t.Helper()
	params, err := json.Marshal(ToolCallParams{
		Name:      ToolName,
		Arguments: json.RawMessage(args),
	})
	if err != nil {
		t.Fatalf("Failed to marshal params: %v", err)
	}

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected protocol error: %v", resp.Error)
	}

	result, ok := resp.Result.(*ToolResult)
	if !ok {
		t.Fatalf("Result should be *ToolResult, got %T", resp.Result)
	}
	return result
}

func TestHandleToolsCall_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`{not json`),
	})

	if resp.Error == nil {
		t.Fatal("Expected error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error.Code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := newTestServer(t)
	params, _ := json.Marshal(ToolCallParams{Name: "delete_everything", Arguments: json.RawMessage(`{}`)})

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})

	if resp.Error == nil {
		t.Fatal("Expected error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error.Code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_FileMode(t *testing.T) {
	s := newTestServer(t)
	dir := t.TempDir()

	args := fmt.Sprintf(`{"outputDir":%q,"fileName":"face","count":2,"width":128,"height":128,"shape":"square"}`, dir)
	result := callTool(t, s, args)

	if result.IsError {
		t.Fatalf("Unexpected tool error: %v", result.Content)
	}
	if len(result.Content) != 1 {
		t.Fatalf("Content: got %d entries, want 1", len(result.Content))
	}
	if result.Content[0].Type != "text" {
		t.Errorf("Content type: got %s, want text", result.Content[0].Type)
	}

	text := result.Content[0].Text
	if !strings.Contains(text, "Generated 2 image(s)") {
		t.Errorf("Summary missing count: %q", text)
	}
	for _, name := range []string{"face_0.png", "face_1.png"} {
		if !strings.Contains(text, name) {
			t.Errorf("Summary missing %s: %q", name, text)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected file %s: %v", name, err)
		}
	}
}

func TestHandleToolsCall_InlineMode(t *testing.T) {
	s := newTestServer(t)
	dir := filepath.Join(t.TempDir(), "unused")

	args := fmt.Sprintf(`{"outputDir":%q,"count":2,"returnImageContent":true}`, dir)
	result := callTool(t, s, args)

	if result.IsError {
		t.Fatalf("Unexpected tool error: %v", result.Content)
	}
	if len(result.Content) != 2 {
		t.Fatalf("Content: got %d entries, want 2", len(result.Content))
	}
	for i, block := range result.Content {
		if block.Type != "image" {
			t.Errorf("Content[%d].Type: got %s, want image", i, block.Type)
		}
		if block.Data == "" {
			t.Errorf("Content[%d].Data is empty", i)
		}
		if block.MimeType != "image/png" {
			t.Errorf("Content[%d].MimeType: got %s", i, block.MimeType)
		}
	}

	// Inline mode writes nothing to disk.
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Expected %s to not exist, stat err: %v", dir, err)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t)

	args := fmt.Sprintf(`{"outputDir":%q,"width":9999}`, t.TempDir())
	result := callTool(t, s, args)

	if !result.IsError {
		t.Fatal("Expected isError result")
	}
	if len(result.Content) != 1 {
		t.Fatalf("Content: got %d entries, want 1", len(result.Content))
	}
	if !strings.Contains(result.Content[0].Text, "invalid_params") {
		t.Errorf("Error text missing kind: %q", result.Content[0].Text)
	}
}

func TestHandleToolsCall_MissingOutputDir(t *testing.T) {
	s := newTestServer(t)
	result := callTool(t, s, `{}`)

	if !result.IsError {
		t.Fatal("Expected isError result")
	}
	if !strings.Contains(result.Content[0].Text, "outputDir") {
		t.Errorf("Error text should mention outputDir: %q", result.Content[0].Text)
	}
}

func TestExecuteGenerateFace_PanicDowngradedToInternal(t *testing.T) {
	// A nil generator makes the pipeline panic; the boundary must
	// report internal_error instead of crashing the protocol loop.
	s := New(nil, zerolog.Nop())

	args := fmt.Sprintf(`{"outputDir":%q}`, t.TempDir())
	result := s.executeGenerateFace(json.RawMessage(args))

	if !result.IsError {
		t.Fatal("Expected isError result")
	}
	if !strings.Contains(result.Content[0].Text, "internal_error") {
		t.Errorf("Error text missing kind: %q", result.Content[0].Text)
	}
}
