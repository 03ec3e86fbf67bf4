// Package audio provides the multichannel in-memory sample buffer that
// transforms operate on.
//
// A [Buffer] owns a channel-major matrix of float64 samples together with
// a sample rate. All mutating operations preserve existing sample content
// and zero-fill newly exposed regions; the matrix is only reallocated by
// the explicit resize, extend and channel-expansion operations.
//
// Buffers are not safe for concurrent mutation. A transform owns the
// buffer it mutates for the duration of the call.
package audio
