package server

import "github.com/ironsheep/face-gen-mcp/internal/facegen"

// ToolName is the single operation this server exposes.
const ToolName = "generate_face"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns the static descriptor for the one
// supported tool. The descriptor is metadata only: defaults that depend
// on request time (the file name) are resolved per request, not here.
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        ToolName,
			Description: "Generate one or more synthetic face images. Each image is fetched fresh from a random-face source, resized to the exact requested dimensions, shaped with an alpha mask, and saved as PNG (or returned inline as base64).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"outputDir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write generated images into. Created if missing.",
					},
					"fileName": map[string]interface{}{
						"type":        "string",
						"description": "Base file name. Any trailing .jpg/.jpeg/.png is stripped; defaults to a timestamp-derived name.",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of images to generate",
						"default":     facegen.DefaultCount,
						"minimum":     facegen.MinCount,
						"maximum":     facegen.MaxCount,
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in pixels",
						"default":     facegen.DefaultSize,
						"minimum":     facegen.MinSize,
						"maximum":     facegen.MaxSize,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Output height in pixels",
						"default":     facegen.DefaultSize,
						"minimum":     facegen.MinSize,
						"maximum":     facegen.MaxSize,
					},
					"shape": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"square", "circle", "rounded"},
						"description": "Alpha mask shape applied to the image",
						"default":     "square",
					},
					"borderRadius": map[string]interface{}{
						"type":        "integer",
						"description": "Corner radius in pixels; only used when shape is rounded",
						"default":     facegen.DefaultBorderRadius,
						"minimum":     0,
						"maximum":     facegen.MaxRadius,
					},
					"returnImageContent": map[string]interface{}{
						"type":        "boolean",
						"description": "Return images inline as base64 content instead of writing files",
						"default":     false,
					},
				},
				"required": []string{"outputDir"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
