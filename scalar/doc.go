// Package scalar provides tolerant decoders for the values found in wiki
// table cells.
//
// Decoders never return errors. A value that cannot be decoded resolves to
// a default (zero, or no value for dates) and a warning is logged through
// the package logger, which defaults to the logrus standard logger and can
// be replaced with [SetLogger] during initialization.
//
// Numeric decoders return zero both for empty input and for input that
// could not be parsed. Callers that need to tell the two apart should check
// the trimmed text for emptiness first.
package scalar
