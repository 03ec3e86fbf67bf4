// Package filter provides the filter realization engines and the
// first-order coefficient designers.
//
// Two realization strategies are available. [FIR] applies a finite set of
// feedforward taps by summing shifted, scaled copies of the input; the
// taps are independent of each other, so the work is parallel in
// principle. [IIR] realizes the direct-form difference equation
//
//	y[t] = sum_n b[n]*x[t-n] - sum_{m>=1} a[m]*y[t-m]
//
// which is inherently sequential along the time axis of each channel but
// independent across channels.
//
// Both engines truncate their output to the input length: the transient
// tail a filter produces past the end of the signal is discarded.
//
// Stability is the caller's responsibility. The engines do not check pole
// locations; an unstable coefficient set diverges. The designers in this
// package ([SimpleLowPass], [SimpleHighPass], [SimpleLowShelf],
// [SimpleHighShelf]) are stable by construction for any cutoff strictly
// between zero and Nyquist.
package filter
