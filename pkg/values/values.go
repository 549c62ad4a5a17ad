// Package values loads substitution values for template literals from JSON or
// YAML documents and key=value assignments.
package values

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/VanillaMaster/interpolate/pkg/stringify"
)

// Values holds named and positional substitution values. A document whose top
// level is a sequence fills Positional; a mapping fills Named.
type Values struct {
	Named      map[string]any
	Positional []any
}

// Load reads and parses a values document from disk.
func Load(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Values{}, fmt.Errorf("values: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses a values document from fsys.
func LoadFS(fsys fs.FS, path string) (Values, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Values{}, fmt.Errorf("values: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data as JSON, falling back to YAML. source names the document
// in error messages.
func Parse(data []byte, source string) (Values, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Values{}, fmt.Errorf("values: file %s is empty", source)
	}

	doc, err := decodeJSON(data)
	if errors.Is(err, errTrailingData) {
		return Values{}, fmt.Errorf("values: parse %s: %w", source, err)
	}
	if err != nil {
		if doc, err = decodeYAML(data); err != nil {
			return Values{}, fmt.Errorf("values: parse %s: %w", source, err)
		}
	}

	switch top := normalise(doc).(type) {
	case []any:
		return Values{Positional: top}, nil
	case map[string]any:
		return Values{Named: top}, nil
	default:
		return Values{}, fmt.Errorf("values: %s must hold a sequence or a mapping, got %T", source, doc)
	}
}

var errTrailingData = errors.New("trailing data after document")

// decodeJSON decodes a single JSON document, keeping numbers as json.Number so
// they render exactly as written.
func decodeJSON(data []byte) (any, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		switch doc.(type) {
		case map[string]any, []any:
			return nil, errTrailingData
		}
		// A leading scalar such as "0: a" is a YAML mapping, not broken JSON.
		return nil, fmt.Errorf("not a single JSON document")
	}
	return doc, nil
}

// decodeYAML decodes exactly one YAML document. yaml.Unmarshal stops after the
// first node, so a second node or document is checked for explicitly.
func decodeYAML(data []byte) (any, error) {
	var doc any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON or YAML: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("invalid JSON or YAML: %w", err)
		}
		return nil, errTrailingData
	}
	return doc, nil
}

// normalise turns YAML's map[any]any into map[string]any all the way down so
// dotted-path lookups see a single map type.
func normalise(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for k, item := range value {
			value[k] = normalise(item)
		}
		return value
	case map[any]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[stringify.Text(k)] = normalise(item)
		}
		return out
	case []any:
		for i, item := range value {
			value[i] = normalise(item)
		}
		return value
	default:
		return v
	}
}

// Set assigns value to key. Decimal keys address Positional, growing it with
// stringify.Undefined as needed; any other key addresses Named.
func (v *Values) Set(key string, value any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("values: empty key")
	}
	if idx, err := strconv.Atoi(key); err == nil {
		if idx < 0 {
			return fmt.Errorf("values: negative index %d", idx)
		}
		for len(v.Positional) <= idx {
			v.Positional = append(v.Positional, stringify.Undefined)
		}
		v.Positional[idx] = value
		return nil
	}
	if v.Named == nil {
		v.Named = make(map[string]any)
	}
	v.Named[key] = value
	return nil
}

// ParseAssignment splits "key=value" and decodes value with Decode, so "3"
// becomes a number and "[a, b]" a list.
func ParseAssignment(raw string) (string, any, error) {
	key, rawValue, ok := strings.Cut(raw, "=")
	if !ok {
		return "", nil, fmt.Errorf("values: assignment %q is missing '='", raw)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", nil, fmt.Errorf("values: assignment %q has an empty key", raw)
	}

	return key, Decode(rawValue), nil
}

// Decode interprets raw as a YAML scalar or flow collection. Input that does
// not decode, or decodes to nothing without saying null, stays a string.
func Decode(raw string) any {
	var decoded any
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil || decoded == nil && strings.TrimSpace(raw) != "null" {
		return raw
	}
	return normalise(decoded)
}

// Assign applies each "key=value" assignment in order.
func (v *Values) Assign(assignments ...string) error {
	for _, raw := range assignments {
		key, value, err := ParseAssignment(raw)
		if err != nil {
			return err
		}
		if err := v.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Merge returns v overlaid with other. Named keys in other win; positional
// entries in other replace those at the same index unless they are
// Undefined.
func (v Values) Merge(other Values) Values {
	out := Values{}
	if len(v.Named) > 0 || len(other.Named) > 0 {
		out.Named = make(map[string]any, len(v.Named)+len(other.Named))
		for k, item := range v.Named {
			out.Named[k] = item
		}
		for k, item := range other.Named {
			out.Named[k] = item
		}
	}
	out.Positional = append(out.Positional, v.Positional...)
	for i, item := range other.Positional {
		if i < len(out.Positional) {
			if item != stringify.Undefined {
				out.Positional[i] = item
			}
			continue
		}
		out.Positional = append(out.Positional, item)
	}
	return out
}
