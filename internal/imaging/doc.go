// Package imaging bridges image files and the matting engine.
//
// It owns everything that touches a filesystem path or a codec so the engine
// itself never has to: loading and caching source images, converting between
// image.Image and the engine's flat RGBA pixmap, encoding results as PNG
// (to disk or base64 for tool responses), and two pre-flight diagnostics
// (corner-reference agreement and a threshold suggestion).
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with (0,0) at the
// top-left corner, X increasing rightward and Y increasing downward.
//
// # Supported Formats
//
// Inputs may be PNG, JPEG, GIF, BMP or WebP. Output is always PNG: it is the
// only format here that round-trips the alpha channel the engine produces.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The conversion and diagnostic
// functions are stateless and may run concurrently on different images.
//
// # Performance Considerations
//
// For repeated operations on the same image (preview, threshold tuning, then
// the final cleanup), load through an ImageCache to decode once. Cached
// images stay in memory until Evict() or Clear().
package imaging
