// Package either defines sum types whose cases correspond to the
// alternative wire shapes one logical field may carry: a bare string, a
// structured object, or a sequence.
//
// Decoding buffers the input into a format-agnostic value, classifies its
// top-level shape, and replays the buffer through the typed decoder matching
// that shape. Classification is a one-shot decision: a shape that is illegal
// for the target type fails immediately with an UnexpectedTypeError, and a
// payload that fails to decode after a correct shape selection is never
// retried under another shape.
//
// Encoding emits only the active case's payload, without a wrapper tag, so
// a round trip reproduces the original wire form.
package either
