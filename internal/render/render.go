// Package render writes command results as text, JSON or YAML.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iancoleman/strcase"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses an output format name. The empty string means [Text].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	case "":
		return Text, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

var (
	labelColor = lipgloss.Color("63")
	nullColor  = lipgloss.Color("241")
)

type Renderer struct {
	w      io.Writer
	format Format
	label  lipgloss.Style
	null   lipgloss.Style
	title  cases.Caser
}

// New returns a [Renderer] writing to w. Text output is only colored when w
// is a terminal.
func New(w io.Writer, format Format) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if !IsTerminal(w) {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:      w,
		format: format,
		label:  lr.NewStyle().Bold(true).Foreground(labelColor),
		null:   lr.NewStyle().Foreground(nullColor),
		title:  cases.Title(language.English),
	}
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes v. Values must be JSON-serializable.
func (r *Renderer) Render(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	switch r.format {
	case JSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("indent json: %w", err)
		}

		buf.WriteByte('\n')

		return r.write(buf.Bytes())

	case YAML:
		out, err := yaml.JSONToYAML(data)
		if err != nil {
			return fmt.Errorf("convert to yaml: %w", err)
		}

		return r.write(out)

	case Text, "":
		out, err := r.text(data)
		if err != nil {
			return err
		}

		return r.write([]byte(out))
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
}

// Label converts a JSON key such as "rootRelativePath" into a title-cased
// label such as "Root Relative Path".
func (r *Renderer) Label(key string) string {
	return r.title.String(strcase.ToDelimited(key, ' '))
}

func (r *Renderer) write(b []byte) error {
	if _, err := r.w.Write(b); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func (r *Renderer) text(data []byte) (string, error) {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0:
		return "", nil

	case data[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return "", fmt.Errorf("decode list: %w", err)
		}

		var (
			sb      strings.Builder
			objects bool
		)

		for i, item := range items {
			s, err := r.text(item)
			if err != nil {
				return "", err
			}

			isObject := len(item) > 0 && item[0] == '{'
			if i > 0 && (objects || isObject) {
				sb.WriteByte('\n')
			}

			objects = isObject

			sb.WriteString(s)
		}

		return sb.String(), nil

	case data[0] == '{':
		return r.object(data)
	}

	return r.scalar(data) + "\n", nil
}

type field struct {
	key   string
	value json.RawMessage
}

// object renders a JSON object as aligned "Label: value" lines, preserving
// key order.
func (r *Renderer) object(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if _, err := dec.Token(); err != nil {
		return "", fmt.Errorf("decode object: %w", err)
	}

	var (
		fields []field
		width  int
	)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("decode key: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return "", fmt.Errorf("decode key: unexpected token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return "", fmt.Errorf("decode %s: %w", key, err)
		}

		fields = append(fields, field{key: key, value: value})
		width = max(width, len(r.Label(key))+1)
	}

	var sb strings.Builder

	for _, f := range fields {
		sb.WriteString(r.label.Width(width).Render(r.Label(f.key) + ":"))
		sb.WriteByte(' ')
		sb.WriteString(r.scalar(f.value))
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func (r *Renderer) scalar(data json.RawMessage) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return string(data)
	}

	switch v := v.(type) {
	case nil:
		return r.null.Render("-")
	case string:
		return v
	case map[string]any, []any:
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return string(data)
		}

		return buf.String()
	}

	return string(bytes.TrimSpace(data))
}
