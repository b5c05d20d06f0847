// Package matte implements the background-removal (matting) engine.
//
// The engine separates a foreground sprite bounded by a dark outline from its
// surrounding background, given only an RGBA pixel buffer and a handful of
// tunable thresholds. There is no machine learning and no user-supplied mask;
// classification is binary (a pixel is kept or removed, never blended).
//
// # Pipeline
//
// Processing is strictly sequential. Each stage extends the per-pixel mask
// left by the previous stage:
//
//  1. Corner sampling: the four image corners provide the background
//     reference colors.
//  2. Flood fill: a FIFO traversal seeded from every border pixel removes
//     the connected background region, never crossing an outline pixel.
//  3. Dilation: bounded erosion peels remaining antialiased fringe pixels
//     adjacent to the removed region, round by round, until a fixpoint or
//     the configured pass cap.
//  4. Isolated sweep: one heuristic pass catches ambiguous pixels trapped
//     between the protected outline and the cleared region.
//  5. Compositing: removed pixels become fully transparent, or a red
//     highlight in preview mode, and a Stats record is produced.
//
// # Outline Protection
//
// The central correctness contract: a pixel that classifies as outline
// (opaque, brightness at or below OutlineThreshold) is never removed, by any
// stage. Every removal site checks this before writing.
//
// # Determinism
//
// The engine is a pure function of (pixmap, config). Repeated runs produce
// bit-identical output buffers and identical Stats. Traversal and commit
// orders are fixed, so diagnostic traces are reproducible.
//
// # Concurrency
//
// A single invocation is fully synchronous and owns its pixmap and mask for
// the duration of the call. Independent invocations on independent pixmaps
// may run concurrently; nothing is shared. The context passed to Remove is
// checked only between dilation rounds.
package matte
