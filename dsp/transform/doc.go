// Package transform provides composable in-place mutations of audio buffers:
// gain and amplitude automation, envelopes, panning, channel routing, and
// time-domain slicing and mixing.
//
// A [Transform] mutates a buffer through Realize and holds no per-buffer
// state, so one instance can be applied to any number of buffers. Pipelines
// are ordered [Chain] values realized sequentially against one buffer.
//
// Parameters that can vary over time accept a [Param], which carries either
// a fixed scalar or a curve. Curve parameters apply their flattened values
// over the curve's own duration and hold the curve endpoint for the rest of
// the buffer.
//
// All errors are fail-fast: a transform that fails partway may leave the
// buffer partially mutated. Callers needing atomicity should realize
// against a copy.
package transform
