package server

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ironsheep/sprite-matte-mcp/internal/imaging"
	"github.com/ironsheep/sprite-matte-mcp/internal/matte"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "cleanup_background").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the source image from the cache
//  4. Calls into the imaging bridge or the matting engine
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Matting
	case "cleanup_background":
		return s.handleCleanupBackground(args)
	case "cleanup_preview":
		return s.handleCleanupPreview(args)

	// Pre-flight Diagnostics
	case "sample_corners":
		return s.handleSampleCorners(args)
	case "suggest_threshold":
		return s.handleSuggestThreshold(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Matting Handlers ===

// cleanupArgs are the shared knobs of cleanup_background and cleanup_preview.
// Numeric fields are pointers so an explicit zero (a valid pass count) is
// distinguishable from "not provided".
type cleanupArgs struct {
	Path             string `json:"path"`
	OutputPath       string `json:"output_path,omitempty"`
	OutlineThreshold *int   `json:"outline_threshold,omitempty"`
	FillTolerance    *int   `json:"fill_tolerance,omitempty"`
	DilationPasses   *int   `json:"dilation_passes,omitempty"`
}

// config builds an engine Config from the arguments, filling unset fields
// with the engine defaults. Range validation stays with the engine.
func (a cleanupArgs) config() matte.Config {
	cfg := matte.DefaultConfig()
	if a.OutlineThreshold != nil {
		cfg.OutlineThreshold = *a.OutlineThreshold
	}
	if a.FillTolerance != nil {
		cfg.FillTolerance = *a.FillTolerance
	}
	if a.DilationPasses != nil {
		cfg.DilationPasses = *a.DilationPasses
	}
	return cfg
}

// CleanupResult reports a completed cleanup_background run.
type CleanupResult struct {
	OutputPath string       `json:"output_path"`
	Stats      matte.Stats  `json:"stats"`
	Config     matte.Config `json:"config"`
	ElapsedMS  float64      `json:"elapsed_ms"`
}

func (s *Server) handleCleanupBackground(args json.RawMessage) (interface{}, error) {
	var a cleanupArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	outPath := a.OutputPath
	if outPath == "" {
		outPath = cleanedPath(a.Path)
	}

	cfg := a.config()
	pm := imaging.ToPixmap(img)

	start := time.Now()
	stats, err := matte.Remove(context.Background(), pm, cfg)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	if err := imaging.SavePNG(imaging.FromPixmap(pm), outPath); err != nil {
		return nil, err
	}

	return &CleanupResult{
		OutputPath: outPath,
		Stats:      stats,
		Config:     cfg,
		ElapsedMS:  float64(elapsed.Microseconds()) / 1000.0,
	}, nil
}

// PreviewResult reports a cleanup_preview run: the highlighted image is
// returned inline and nothing is written to disk.
type PreviewResult struct {
	Stats     matte.Stats           `json:"stats"`
	Config    matte.Config          `json:"config"`
	ElapsedMS float64               `json:"elapsed_ms"`
	Render    *imaging.RenderResult `json:"render"`
}

type cleanupPreviewArgs struct {
	cleanupArgs
	Scale float64 `json:"scale,omitempty"`
}

func (s *Server) handleCleanupPreview(args json.RawMessage) (interface{}, error) {
	var a cleanupPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	cfg := a.config()
	cfg.PreviewMode = true
	pm := imaging.ToPixmap(img)

	start := time.Now()
	stats, err := matte.Remove(context.Background(), pm, cfg)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	render, err := imaging.EncodePNGBase64(imaging.FromPixmap(pm), a.Scale)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Stats:     stats,
		Config:    cfg,
		ElapsedMS: float64(elapsed.Microseconds()) / 1000.0,
		Render:    render,
	}, nil
}

// === Pre-flight Diagnostic Handlers ===

func (s *Server) handleSampleCorners(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleCorners(img)
}

type suggestThresholdArgs struct {
	Path     string `json:"path"`
	Fallback *int   `json:"fallback,omitempty"`
}

func (s *Server) handleSuggestThreshold(args json.RawMessage) (interface{}, error) {
	var a suggestThresholdArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	fallback := matte.DefaultConfig().OutlineThreshold
	if a.Fallback != nil {
		fallback = *a.Fallback
	}
	return imaging.SuggestThreshold(img, fallback), nil
}

// cleanedPath derives the default output path for a cleanup run:
// "<dir>/<stem>_cleaned.png" next to the source file.
func cleanedPath(src string) string {
	ext := filepath.Ext(src)
	stem := strings.TrimSuffix(filepath.Base(src), ext)
	return filepath.Join(filepath.Dir(src), stem+"_cleaned.png")
}
