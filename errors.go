package dynjson

import "fmt"

// Position identifies a point in parser input. Line is 1-based; Column is
// 0-based, matching spec.md's parse-error position convention.
type Position struct {
	Line   int
	Column int
}

// String returns "line:column", or "<unknown>" for the zero Position.
func (p Position) String() string {
	if p == (Position{}) {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ParseError reports a syntactic failure while reading JSON text. It always
// carries the position of the offending unit.
type ParseError struct {
	Pos     Position
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dynjson: parse error at %s: %s: %v", e.Pos, e.Message, e.Cause)
	}
	return fmt.Sprintf("dynjson: parse error at %s: %s", e.Pos, e.Message)
}

// Unwrap exposes the proximate cause, if any, for errors.Is/errors.As.
func (e *ParseError) Unwrap() error { return e.Cause }

// FormatError reports a failure while emitting a Variant tree: the
// configured max depth was exceeded (the emitter's only cycle guard), the
// Throw special-float policy encountered a non-finite Float, or
// EmitUTF16Bytes failed to encode. Variant/Array/Object Equivalent also
// return it when their maxDepth is exceeded.
type FormatError struct {
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dynjson: format error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("dynjson: format error: %s", e.Message)
}

func (e *FormatError) Unwrap() error { return e.Cause }

// ConversionError reports a failure in the conversion-context boundary:
// depth overflow ("too deep — circular reference suspected") or a failure
// surfaced by an external marshaller using the converter-plugin hook.
type ConversionError struct {
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dynjson: conversion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("dynjson: conversion error: %s", e.Message)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

func newParseError(pos Position, msg string) *ParseError {
	return &ParseError{Pos: pos, Message: msg}
}
