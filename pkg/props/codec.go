package props

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/magiconair/properties"
)

// Codec converts between a flat key/value mapping and its on-disk text form.
type Codec interface {
	Decode(r io.Reader) (map[string]string, error)
	Encode(w io.Writer, values map[string]string) error
}

// CodecFor picks a codec from the file extension. Files ending in .toml use
// TOML, everything else uses the properties format.
func CodecFor(path string) Codec {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOMLCodec{}
	}
	return PropertiesCodec{}
}

// PropertiesCodec reads and writes Java style .properties files in UTF-8.
// Values are taken literally; ${...} references are not expanded.
type PropertiesCodec struct{}

// Decode parses a properties document.
func (PropertiesCodec) Decode(r io.Reader) (map[string]string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return p.Map(), nil
}

// Encode writes one sorted key = value line per entry. Keys and values are
// escaped the way java.util.Properties stores them, so any string survives a
// Decode.
func (PropertiesCodec) Encode(w io.Writer, values map[string]string) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for k, v := range values {
		if _, _, err := p.Set(k, v); err != nil {
			return fmt.Errorf("failed to set %s: %w", k, err)
		}
	}
	p.Sort()

	// Properties.Write leaves '=', '#' and '!' in keys unescaped, so lines
	// are written here.
	var b strings.Builder
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		b.WriteString(escapeProperty(k, true))
		b.WriteString(" = ")
		b.WriteString(escapeProperty(v, false))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to encode properties: %w", err)
	}
	return nil
}

// escapeProperty backslash-escapes s for a properties line. In keys every
// space and separator is escaped; in values only a leading space is.
func escapeProperty(s string, key bool) string {
	var b strings.Builder
	for i, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case ' ':
			if key || i == 0 {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		case '=', ':', '#', '!':
			if key {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TOMLCodec reads and writes TOML files. Dotted keys are written quoted at
// the top level so they stay flat; tables written by hand are flattened back
// into dotted keys on decode.
type TOMLCodec struct{}

// Decode parses a TOML document into dotted keys.
func (TOMLCodec) Decode(r io.Reader) (map[string]string, error) {
	var raw map[string]any
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode toml: %w", err)
	}

	values := make(map[string]string)
	if err := flatten("", raw, values); err != nil {
		return nil, err
	}
	return values, nil
}

// Encode writes values as top-level string keys.
func (TOMLCodec) Encode(w io.Writer, values map[string]string) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""
	if err := encoder.Encode(values); err != nil {
		return fmt.Errorf("failed to encode toml: %w", err)
	}
	return nil
}

func flatten(prefix string, raw map[string]any, out map[string]string) error {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if _, dup := out[key]; dup {
			return fmt.Errorf("duplicate key %s", key)
		}

		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		case bool, int64, float64:
			out[key] = fmt.Sprint(val)
		default:
			return fmt.Errorf("unsupported value for %s: %T", key, v)
		}
	}
	return nil
}
