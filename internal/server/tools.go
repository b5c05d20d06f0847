package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema fragment shared by every tool: all of them
// operate on an image file identified by its path.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file (PNG, JPEG, GIF, BMP, or WebP)",
	}
}

// cleanupProperties are the engine knobs shared by cleanup_background and
// cleanup_preview.
func cleanupProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"outline_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Brightness threshold for outline detection (0-255, default: 20). Opaque pixels at or below it are protected from removal.",
		},
		"fill_tolerance": map[string]interface{}{
			"type":        "integer",
			"description": "Per-channel color distance for matching the corner background colors (0-255, default: 80)",
		},
		"dilation_passes": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum edge dilation rounds (default: 50). 0 disables dilation; rounds also stop early once a pass removes nothing.",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	cleanupProps := cleanupProperties()
	cleanupProps["output_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Where to write the cleaned PNG. Default: <stem>_cleaned.png beside the source file.",
	}

	previewProps := cleanupProperties()
	previewProps["scale"] = map[string]interface{}{
		"type":        "number",
		"description": "Optional scale factor for the returned preview image (e.g. 0.5). Default 1.0",
		"default":     1.0,
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and alpha presence.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Matting
		{
			Name:        "cleanup_background",
			Description: "Remove the background outside of dark outlines in AI-generated sprite images. Flood-fills from the image border, stopping at dark outline pixels, then peels antialiased fringe. Writes the result as PNG and returns removal statistics.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": cleanupProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "cleanup_preview",
			Description: "Dry-run of cleanup_background: pixels that would be removed are highlighted translucent red in the returned base64 PNG. Nothing is written to disk.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": previewProps,
				"required":   []string{"path"},
			},
		},

		// Pre-flight Diagnostics
		{
			Name:        "sample_corners",
			Description: "Report the four corner colors the engine will use as background references, with their pairwise perceptual distance. Non-uniform corners usually mean a corner landed on foreground content and the cleanup will misbehave.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "suggest_threshold",
			Description: "Suggest an outline_threshold from the image's luminance histogram (the quietest bin above the darkest ink peak). A tuning aid; it does not change any stored configuration.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"fallback": map[string]interface{}{
						"type":        "integer",
						"description": "Threshold to return when the image has no significant dark mass. Default: the engine default (20).",
					},
				},
				"required": []string{"path"},
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
