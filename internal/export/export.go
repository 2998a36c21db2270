// Package export serializes an evaluation pass for the external renderer.
// Two encodings are supported: JSON for inspection and tooling, msgpack for
// the compact transport the renderer consumes.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"graphite/internal/graph"
)

// Current schema version - increment when the payload format changes
const schemaVersion uint16 = 1

// PlotOutput is the root payload of one evaluation pass.
type PlotOutput struct {
	Schema uint16       `json:"schema"`
	Lines  []LineOutput `json:"lines"`
}

// LineOutput carries one line's samples, directives, and error, if any.
// Index is the 0-based source line number.
type LineOutput struct {
	Index      int         `json:"index"`
	Directives []Directive `json:"directives,omitempty"`
	Hidden     bool        `json:"hidden,omitempty"`
	X          []float64   `json:"x,omitempty"`
	Y          []float64   `json:"y,omitempty"`
	Direct     string      `json:"direct,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Directive is the transport form of one line annotation.
type Directive struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

// FromResult flattens an evaluation result into the transport payload.
// Empty lines without directives or errors are skipped.
func FromResult(res *graph.Result) *PlotOutput {
	out := &PlotOutput{Schema: schemaVersion}

	for i, ln := range res.Lines {
		lo := LineOutput{Index: i, Hidden: ln.Hidden, Direct: ln.Direct}
		for _, d := range ln.Directives {
			lo.Directives = append(lo.Directives, Directive{Key: d.Key, Value: d.Value})
		}
		if ln.Samples != nil {
			lo.X = ln.Samples.X
			lo.Y = ln.Samples.Y
		}
		if ln.Err != nil {
			lo.Error = ln.Err.Error()
		}
		if lo.X == nil && lo.Directives == nil && lo.Direct == "" && lo.Error == "" {
			continue
		}
		out.Lines = append(out.Lines, lo)
	}
	return out
}

// WriteJSON writes the payload as indented JSON.
func WriteJSON(w io.Writer, out *PlotOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteMsgpack writes the payload in msgpack encoding.
func WriteMsgpack(w io.Writer, out *PlotOutput) error {
	return msgpack.NewEncoder(w).Encode(out)
}

// ReadMsgpack decodes a payload written by WriteMsgpack.
func ReadMsgpack(r io.Reader) (*PlotOutput, error) {
	var out PlotOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Write dispatches on the format name from configuration.
func Write(w io.Writer, out *PlotOutput, format string) error {
	switch format {
	case "json":
		return WriteJSON(w, out)
	case "msgpack":
		return WriteMsgpack(w, out)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
