// Package catalog provides the built-in field type catalogue used by the
// field splitter. The catalogue ships as embedded YAML and is decoded through
// yaml.Node so that schema property order survives into the generated JSON.
package catalog

import (
	_ "embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
)

//go:embed fieldtypes.yaml
var builtin []byte

// Ensure Catalog implements the interface.
var _ driven.FieldCatalog = (*Catalog)(nil)

// Catalog holds parsed field types and templates.
type Catalog struct {
	types     []domain.FieldType
	templates map[domain.FieldKind]*domain.FieldTemplate
}

// rawFieldType mirrors one entry of the fieldTypes list.
type rawFieldType struct {
	Type          string    `yaml:"type"`
	Kind          string    `yaml:"kind"`
	Title         string    `yaml:"title"`
	Description   string    `yaml:"description"`
	BusinessRules []string  `yaml:"businessRules"`
	UserStories   []string  `yaml:"userStories"`
	Properties    yaml.Node `yaml:"properties"`
}

// New parses the built-in catalogue.
func New() (*Catalog, error) {
	return Parse(builtin)
}

// Parse builds a catalogue from YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse field catalogue: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse field catalogue: %w: empty document", domain.ErrInvalidInput)
	}
	root := doc.Content[0]

	c := &Catalog{templates: make(map[domain.FieldKind]*domain.FieldTemplate)}

	if tmpl := mappingValue(root, "templates"); tmpl != nil {
		if err := c.parseTemplates(tmpl); err != nil {
			return nil, err
		}
	}

	types := mappingValue(root, "fieldTypes")
	if types == nil || types.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("field catalogue: %w: fieldTypes must be a list", domain.ErrInvalidInput)
	}
	if err := c.parseFieldTypes(types); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) parseTemplates(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("field catalogue: %w: templates must be a mapping", domain.ErrInvalidInput)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		kind := domain.FieldKind(node.Content[i].Value)
		val, err := toValue(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("template %s: %w", kind, err)
		}
		obj, ok := val.(*domain.Object)
		if !ok {
			return fmt.Errorf("template %s: %w", kind, domain.ErrNotObject)
		}
		c.templates[kind] = &domain.FieldTemplate{Kind: kind, Schema: obj}
	}
	return nil
}

func (c *Catalog) parseFieldTypes(node *yaml.Node) error {
	seen := make(map[string]bool)
	for _, item := range node.Content {
		var raw rawFieldType
		if err := item.Decode(&raw); err != nil {
			return fmt.Errorf("field type at line %d: %w", item.Line, err)
		}
		if raw.Type == "" || raw.Title == "" {
			return fmt.Errorf("field type at line %d: %w: type and title are required", item.Line, domain.ErrInvalidInput)
		}
		if seen[raw.Type] {
			return fmt.Errorf("field type %s: %w: duplicate", raw.Type, domain.ErrInvalidInput)
		}
		seen[raw.Type] = true

		kind := domain.FieldKind(raw.Kind)
		if _, ok := c.templates[kind]; !ok {
			return fmt.Errorf("field type %s: %w: no template for kind %q", raw.Type, domain.ErrInvalidInput, kind)
		}

		ft := domain.FieldType{
			Type:          raw.Type,
			Title:         raw.Title,
			Kind:          kind,
			Description:   raw.Description,
			BusinessRules: raw.BusinessRules,
			UserStories:   raw.UserStories,
		}
		if raw.Properties.Kind != 0 {
			props, err := toValue(&raw.Properties)
			if err != nil {
				return fmt.Errorf("field type %s: %w", raw.Type, err)
			}
			obj, ok := props.(*domain.Object)
			if !ok {
				return fmt.Errorf("field type %s properties: %w", raw.Type, domain.ErrNotObject)
			}
			ft.Properties = obj
		}
		c.types = append(c.types, ft)
	}
	return nil
}

// FieldTypes returns every field type in catalogue order.
func (c *Catalog) FieldTypes() ([]domain.FieldType, error) {
	out := make([]domain.FieldType, len(c.types))
	copy(out, c.types)
	return out, nil
}

// Template returns the schema skeleton for kind.
func (c *Catalog) Template(kind domain.FieldKind) (*domain.FieldTemplate, error) {
	tmpl, ok := c.templates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: field kind %q", domain.ErrNotFound, kind)
	}
	return &domain.FieldTemplate{Kind: tmpl.Kind, Schema: tmpl.Schema.Clone()}, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// toValue converts a YAML node into a document value.
func toValue(n *yaml.Node) (domain.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return toValue(n.Content[0])
	case yaml.AliasNode:
		return toValue(n.Alias)
	case yaml.MappingNode:
		obj := domain.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := toValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(n.Content[i].Value, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]domain.Value, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := toValue(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalarValue(n)
	default:
		return nil, fmt.Errorf("unsupported YAML node at line %d", n.Line)
	}
}

func scalarValue(n *yaml.Node) (domain.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, err
		}
		return domain.Number(strconv.FormatInt(i, 10)), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return domain.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return n.Value, nil
	}
}
