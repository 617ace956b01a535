// Package report renders governance results for people and downstream
// systems: plain text, CSV, JSON and a PDF memorandum.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	governance "Gauge/internal/calc/governance"
)

// Meta carries the report header fields that are not part of the
// calculation itself.
type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// WriteText renders a full plain-text report.
func WriteText(w io.Writer, meta Meta, res governance.Result) error {
	title := meta.Title
	if title == "" {
		title = "Pipe Thickness Evaluation"
	}

	var b strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(&b, "%s\n%s\n%s\n", rule, title, rule)
	if meta.Project != "" {
		fmt.Fprintf(&b, "Project: %s\n", meta.Project)
	}
	if meta.Author != "" {
		fmt.Fprintf(&b, "Author:  %s\n", meta.Author)
	}
	fmt.Fprintf(&b, "Date:    %s\n\n", time.Now().Format("2006-01-02"))

	fmt.Fprintf(&b, "VERDICT: %s (%s)\n%s\n\n", res.Flag, res.Status, res.Message)

	flat := res.Flat()
	for _, key := range governance.FieldOrder {
		v, ok := flat[key]
		if !ok || v == nil {
			continue
		}
		fmt.Fprintf(&b, "%-26s %s\n", key+":", formatValue(v))
	}
	if meta.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", meta.Notes)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCSV renders a header row and one value row in FieldOrder.
func WriteCSV(w io.Writer, res governance.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(governance.FieldOrder); err != nil {
		return err
	}

	flat := res.Flat()
	row := make([]string, 0, len(governance.FieldOrder))
	for _, key := range governance.FieldOrder {
		v := flat[key]
		if v == nil {
			row = append(row, "")
			continue
		}
		row = append(row, formatValue(v))
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON renders the result document with its meta header.
func WriteJSON(w io.Writer, meta Meta, res governance.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Meta   Meta              `json:"meta"`
		Result governance.Result `json:"result"`
	}{Meta: meta, Result: res})
}

func formatValue(v any) string {
	switch t := v.(type) {
	case float64:
		return fmt.Sprintf("%.4f", t)
	case bool:
		return fmt.Sprintf("%t", t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
