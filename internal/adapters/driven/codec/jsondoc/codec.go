// Package jsondoc decodes and encodes JSON documents without losing the
// order of object members.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.DocumentCodec = (*Codec)(nil)

// members holds one object level; values stay raw until they are walked.
type members = orderedmap.OrderedMap[string, json.RawMessage]

func newMembers() *members {
	return orderedmap.New[string, json.RawMessage](
		orderedmap.WithDisableHTMLEscape[string, json.RawMessage](),
	)
}

// Codec is a driven.DocumentCodec backed by ordered maps of raw members.
type Codec struct {
	indent string
}

// New creates a codec that indents output with two spaces.
func New() *Codec {
	return &Codec{indent: "  "}
}

// Decode parses data into a document tree.
func (c *Codec) Decode(data []byte) (domain.Value, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: malformed JSON", domain.ErrInvalidDocument)
	}
	v, err := decodeRaw(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	return v, nil
}

func decodeRaw(raw []byte) (domain.Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty value")
	}

	switch raw[0] {
	case '{':
		return decodeObject(raw)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		arr := make([]domain.Value, 0, len(items))
		for i, item := range items {
			v, err := decodeRaw(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr = append(arr, v)
		}
		return arr, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case 'n':
		return nil, nil
	default:
		return domain.Number(raw), nil
	}
}

func decodeObject(raw []byte) (*domain.Object, error) {
	om := newMembers()
	if err := om.UnmarshalJSON(raw); err != nil {
		return nil, err
	}

	obj := domain.NewObject()
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		v, err := decodeRaw(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pair.Key, err)
		}
		obj.Set(pair.Key, v)
	}
	return obj, nil
}

// Encode serialises v with indentation and a trailing newline.
func (c *Codec) Encode(v domain.Value) ([]byte, error) {
	compact, err := encodeRaw(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", c.indent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeRaw(v domain.Value) (json.RawMessage, error) {
	switch t := v.(type) {
	case nil:
		return json.RawMessage("null"), nil
	case *domain.Object:
		if t == nil {
			return json.RawMessage("null"), nil
		}
		om := newMembers()
		for _, m := range t.Members() {
			raw, err := encodeRaw(m.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", m.Key, err)
			}
			om.Set(m.Key, raw)
		}
		return om.MarshalJSON()
	case []domain.Value:
		items := make([]json.RawMessage, 0, len(t))
		for i, item := range t {
			raw, err := encodeRaw(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, raw)
		}
		return marshal(items)
	case domain.Number:
		if !json.Valid([]byte(t)) {
			return nil, fmt.Errorf("invalid number literal %q", string(t))
		}
		return json.RawMessage(t), nil
	case string, bool:
		return marshal(t)
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// marshal encodes v without HTML escaping.
func marshal(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
