// Package location tracks where in a JSON source a dynjson diagnostic
// applies.
//
// dynjson ingests byte slices and readers, not a named filesystem, so a
// [SourceID] is nothing more than a caller-supplied label for the input
// ("request-body", "inline:test", "<stdin>"). There is no canonical-path
// resolution, symlink following, or Unicode normalization to do: the label
// is opaque and compared as-is.
//
// [Position] and [Span] carry line/column/byte location the way the
// teacher's foundation-tier location package does, trimmed to what the
// compat adapter and the diag package actually produce and consume (the
// root parser reports positions with its own dynjson.Position type).
package location
