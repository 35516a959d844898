// ============================================================================
// veeks - Veek-Date Toolkit
// ============================================================================
//
// Package:     render
// Description: Renders conversion results as text, JSON, YAML or a styled
//              table, keeping the field order of the result
// Author:      msto63
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/veeks/foundation/core/error"
)

// Format is an output format name
type Format string

// Supported output formats
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists every supported format name
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatTable)}

// ParseFormat resolves a format name. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTable:
		return FormatTable, nil
	}
	return "", mdwerror.Newf("unknown output format %q, expected one of %s", s, strings.Join(Formats, ", ")).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("render.ParseFormat").
		WithDetail("format", s)
}

// Field is a single named value of a Result
type Field struct {
	Key   string
	Value interface{}
}

// Result is an ordered set of named values produced by one command
type Result struct {
	Title  string
	Fields []Field
}

// NewResult creates an empty result
func NewResult(title string) *Result {
	return &Result{Title: title}
}

// Add appends a field and returns the result for chaining
func (r *Result) Add(key string, value interface{}) *Result {
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
	return r
}

// Get returns the value of the first field named key
func (r *Result) Get(key string) (interface{}, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Render writes r to w in the given format
func Render(w io.Writer, r *Result, format Format) error {
	format, err := ParseFormat(string(format))
	if err != nil {
		return err
	}

	var out []byte
	switch format {
	case FormatJSON:
		out, err = renderJSON(r)
	case FormatYAML:
		out, err = renderYAML(r)
	case FormatTable:
		out = renderTable(r)
	default:
		out = renderText(r)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return mdwerror.Wrap(err, "failed to write output").
			WithCode(mdwerror.CodeInternal).
			WithOperation("render.Render")
	}
	return nil
}

func renderText(r *Result) []byte {
	var buf bytes.Buffer
	for _, f := range r.Fields {
		fmt.Fprintf(&buf, "%s: %v\n", f.Key, f.Value)
	}
	return buf.Bytes()
}

// renderJSON writes the fields as a single object in result order
func renderJSON(r *Result) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(f.Key)
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, encodeError(err, "json", f.Key)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, encodeError(err, "json", "")
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// renderYAML builds a mapping node so the keys keep result order
func renderYAML(r *Result) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.Fields {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}
		value := &yaml.Node{}
		if err := value.Encode(f.Value); err != nil {
			return nil, encodeError(err, "yaml", f.Key)
		}
		mapping.Content = append(mapping.Content, key, value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return nil, encodeError(err, "yaml", "")
	}
	if err := enc.Close(); err != nil {
		return nil, encodeError(err, "yaml", "")
	}
	return buf.Bytes(), nil
}

func renderTable(r *Result) []byte {
	keyWidth := 0
	for _, f := range r.Fields {
		keyWidth = max(keyWidth, lipgloss.Width(f.Key))
	}

	rows := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			KeyStyle.Width(keyWidth+KeyStyle.GetPaddingRight()).Render(f.Key),
			ValueStyle.Render(fmt.Sprint(f.Value)),
		))
	}

	body := BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if r.Title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(r.Title), body)
	}
	return []byte(body + "\n")
}

func encodeError(err error, format, key string) *mdwerror.Error {
	e := mdwerror.Wrap(err, "failed to encode "+format+" output").
		WithCode(mdwerror.CodeInternal).
		WithOperation("render.Render")
	if key != "" {
		e = e.WithDetail("field", key)
	}
	return e
}
