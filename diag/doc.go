// Package diag provides the diagnostic-collection model for dynjson's
// encoding/json-backed ingestion path (compat.Adapter).
//
// Everywhere else in dynjson, a failure is a single terminal event: the
// lenient parser returns *dynjson.ParseError and stops, the emitter returns
// *dynjson.FormatError and stops, the conversion helpers return
// *dynjson.ConversionError and stop. compat.Adapter reports its problems
// as [Issue] values collected into a [Collector] and returned as a
// [Result] alongside the decoded values, instead of as an error. It still
// stops decoding at the first bad document. [Kind] mirrors the three-way Parse/Format/Conversion split
// from the root error types so a Code always says which surface raised it,
// even though today only the parse surface has a collecting caller.
//
// # Issue construction
//
//	issue := diag.NewIssue(diag.Error, diag.E_ADAPTER_PARSE, "invalid JSON: unexpected end of input").
//	    WithSpan(span).
//	    Build()
//
// Direct struct literal construction bypasses validity checks and panics
// when collected; always go through [NewIssue].
//
// # Collection
//
//	collector := diag.NewCollector(100) // limit of 100 issues
//	collector.Collect(issue)
//	result := collector.Result()
//	if result.HasErrors() {
//	    // report result.Messages()
//	}
package diag
