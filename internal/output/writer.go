// Package output writes run reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(cfg *config.Config) ReportWriter {
	if cfg.JSON {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile, cfg.Verbosity >= config.Normal)
}

// TextWriter writes reports as "Name: value" lines.
type TextWriter struct {
	w io.Writer
	// summary enables the position lines; perft and hints are always written.
	summary bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, summary bool) *TextWriter {
	return &TextWriter{w: w, summary: summary}
}

// WriteReport writes r in text form.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder

	if r.Perft != nil {
		for _, d := range r.Perft.Divide {
			fmt.Fprintf(&sb, "%s: %d\n", d.Move, d.Nodes)
		}
		fmt.Fprintf(&sb, "perft %d: %d\n", r.Perft.Depth, r.Perft.Nodes)
	}
	for i, h := range r.Hints {
		fmt.Fprintf(&sb, "hint %d: %s (%s, depth %d)\n", i+1, h.Move, h.Score, h.Depth)
	}

	if tw.summary {
		fmt.Fprintf(&sb, "FEN: %s\n", r.FEN)
		fmt.Fprintf(&sb, "To move: %s\n", r.ToMove)
		fmt.Fprintf(&sb, "Status: %s\n", r.Status)
		if r.Positions > 0 {
			fmt.Fprintf(&sb, "Positions: %d distinct, current seen %d times\n", r.Positions, r.Repetitions)
		}
		if r.Winner != "" {
			fmt.Fprintf(&sb, "Winner: %s\n", r.Winner)
		} else if r.InCheck {
			fmt.Fprintf(&sb, "Check: %s king\n", r.ToMove)
		}
		if r.History != nil {
			fmt.Fprintf(&sb, "History: %s\n", strings.Join(r.History, " "))
		}
		if r.LegalMoves != nil {
			fmt.Fprintf(&sb, "Legal moves (%d): %s\n", len(r.LegalMoves), strings.Join(r.LegalMoves, " "))
		}
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// JSONWriter writes reports as indented JSON objects.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONWriter{enc: enc}
}

// WriteReport writes r as one JSON object.
func (jw *JSONWriter) WriteReport(r *Report) error {
	return jw.enc.Encode(r)
}
