package compat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tidwall/jsonc"

	"github.com/simon-lentz/dynjson"
	"github.com/simon-lentz/dynjson/diag"
	"github.com/simon-lentz/dynjson/internal/trace"
	"github.com/simon-lentz/dynjson/location"
)

// Parse decodes data as a single JSON document into a dynjson.Variant,
// using encoding/json (optionally jsonc-preprocessed) instead of this
// module's own lenient engine. Problems are reported in the returned
// diag.Result rather than as an error: a decode error ends the parse with
// one issue and a Null Variant; otherwise at most one issue is added, for
// content found after the root value.
//
// source identifies the input for diagnostic purposes; it carries no byte
// offset conversion requirement since offsets are reported directly from
// the decoder.
func (a *Adapter) Parse(ctx context.Context, source location.SourceID, data []byte) (dynjson.Variant, diag.Result) {
	op := trace.Begin(ctx, a.logger, "dynjson.compat.parse",
		slog.String("source", source.String()), slog.Int("bytes", len(data)))
	var opErr error
	defer func() { op.End(opErr) }()

	collector := diag.NewCollector(a.maxIssues)

	processed := data
	if !a.strictJSON {
		processed = jsonc.ToJSON(data)
	}

	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		opErr = err
		collector.Collect(a.parseIssue(source, int(dec.InputOffset()), "invalid JSON", err))
		return dynjson.NewNull(), collector.Result()
	}
	if tok, err := dec.Token(); err == nil {
		collector.Collect(a.parseIssue(source, int(dec.InputOffset()), "unexpected content after root value", fmt.Errorf("found %v", tok)))
	}

	return toVariant(raw), collector.Result()
}

// ParseMany decodes data as a sequence of whitespace-separated JSON
// documents (e.g. a JSON-lines log), returning one Variant per document and
// a single diag.Result spanning all of them. A document that fails to
// decode is recorded as an issue; decoding stops there, so the returned
// slice holds only the documents successfully decoded before it.
func (a *Adapter) ParseMany(ctx context.Context, source location.SourceID, data []byte) ([]dynjson.Variant, diag.Result) {
	op := trace.Begin(ctx, a.logger, "dynjson.compat.parse_many",
		slog.String("source", source.String()), slog.Int("bytes", len(data)))
	var opErr error
	defer func() { op.End(opErr) }()

	collector := diag.NewCollector(a.maxIssues)

	processed := data
	if !a.strictJSON {
		processed = jsonc.ToJSON(data)
	}

	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()

	var out []dynjson.Variant
	for dec.More() {
		var raw any
		offset := int(dec.InputOffset())
		if err := dec.Decode(&raw); err != nil {
			opErr = err
			collector.Collect(a.parseIssue(source, offset, "invalid JSON document", err))
			break
		}
		out = append(out, toVariant(raw))
	}
	return out, collector.Result()
}

func (a *Adapter) parseIssue(source location.SourceID, byteOffset int, message string, cause error) diag.Issue {
	span := location.PointWithByte(source, 0, 0, byteOffset)
	return diag.NewIssue(diag.Error, diag.E_ADAPTER_PARSE, message+": "+cause.Error()).
		WithSpan(span).
		Build()
}

// toVariant converts a decoded encoding/json value (nil, bool, json.Number,
// string, []any, or map[string]any, per dec.UseNumber()) into a
// dynjson.Variant tree. json.Number becomes an Integer when it parses as
// one, otherwise a Float, matching the coercion rules a Variant would apply
// to the same textual form.
func toVariant(x any) dynjson.Variant {
	switch t := x.(type) {
	case nil:
		return dynjson.NewNull()
	case bool:
		return dynjson.NewBool(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return dynjson.NewInt(i)
		}
		f, _ := t.Float64()
		return dynjson.NewDouble(f)
	case string:
		return dynjson.NewString(t)
	case []any:
		arr := dynjson.NewArray()
		for _, e := range t {
			arr.Add(toVariant(e))
		}
		return dynjson.NewArrayVariant(arr)
	case map[string]any:
		obj := dynjson.NewObject()
		for k, v := range t {
			obj.Set(k, toVariant(v))
		}
		return dynjson.NewObjectVariant(obj)
	default:
		return dynjson.NewNull()
	}
}
