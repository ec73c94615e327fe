package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
	"github.com/omnera-dev/schematools/internal/core/ports/driving"
	"github.com/omnera-dev/schematools/internal/logger"
)

// Ensure FieldSplitter implements the interface.
var _ driving.FieldSplitter = (*FieldSplitter)(nil)

// Template placeholders. A string equal to a list placeholder is replaced by
// the corresponding list; other placeholders are substituted inside strings.
const (
	placeholderType          = "{type}"
	placeholderTitle         = "{title}"
	placeholderDescription   = "{description}"
	placeholderBusinessRules = "{business_rules}"
	placeholderUserStories   = "{user_stories}"
)

// FieldSplitter replaces the generic Text and Number field schemas of the
// tables schema with one schema per specific field type.
type FieldSplitter struct {
	files   driven.FileStore
	codec   driven.DocumentCodec
	catalog driven.FieldCatalog
}

// NewFieldSplitter creates a new field splitter.
func NewFieldSplitter(files driven.FileStore, codec driven.DocumentCodec, catalog driven.FieldCatalog) *FieldSplitter {
	return &FieldSplitter{
		files:   files,
		codec:   codec,
		catalog: catalog,
	}
}

// Build renders the schema of ft from its kind's template.
func (f *FieldSplitter) Build(ft domain.FieldType) (*domain.Object, error) {
	tmpl, err := f.catalog.Template(ft.Kind)
	if err != nil {
		return nil, fmt.Errorf("template for %s: %w", ft.Type, err)
	}

	out, ok := fill(tmpl.Schema.Clone(), ft).(*domain.Object)
	if !ok {
		return nil, fmt.Errorf("%w: template for %s", domain.ErrNotObject, ft.Kind)
	}

	if ft.Properties.Len() > 0 {
		props, ok := out.GetObject("properties")
		if !ok {
			props = domain.NewObject()
			out.Set("properties", props)
		}
		for _, m := range ft.Properties.Members() {
			props.Set(m.Key, domain.CloneValue(m.Value))
		}
	}
	return out, nil
}

// fill substitutes placeholders throughout v.
func fill(v domain.Value, ft domain.FieldType) domain.Value {
	switch t := v.(type) {
	case *domain.Object:
		for _, m := range t.Members() {
			t.Set(m.Key, fill(m.Value, ft))
		}
		return t
	case []domain.Value:
		for i := range t {
			t[i] = fill(t[i], ft)
		}
		return t
	case string:
		switch t {
		case placeholderBusinessRules:
			return stringList(ft.BusinessRules)
		case placeholderUserStories:
			return stringList(ft.UserStories)
		}
		return strings.NewReplacer(
			placeholderType, ft.Type,
			placeholderTitle, ft.Title,
			placeholderDescription, ft.Description,
		).Replace(t)
	default:
		return v
	}
}

func stringList(items []string) []domain.Value {
	out := make([]domain.Value, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}

// Split rewrites the field union of the tables schema at path. Running it
// on an already split schema leaves the file untouched.
func (f *FieldSplitter) Split(ctx context.Context, path string) (*domain.SplitReport, error) {
	logger.Section("Field Split")

	data, err := f.files.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := f.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	parentPath := domain.FieldsAnyOfPath[:len(domain.FieldsAnyOfPath)-1]
	anyOfKey := domain.FieldsAnyOfPath[len(domain.FieldsAnyOfPath)-1]

	parentVal, ok := domain.Lookup(doc, parentPath...)
	parent, isObj := parentVal.(*domain.Object)
	if !ok || !isObj || parent == nil {
		return nil, fmt.Errorf("%s: %w: %s", path, domain.ErrPathNotFound, strings.Join(domain.FieldsAnyOfPath, "."))
	}
	anyOfVal, _ := parent.Get(anyOfKey)
	anyOf, ok := anyOfVal.([]domain.Value)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", path, domain.ErrPathNotFound, strings.Join(domain.FieldsAnyOfPath, "."))
	}

	report := &domain.SplitReport{}
	kept := make([]domain.Value, 0, len(anyOf))
	existing := make(map[string]bool)
	for _, entry := range anyOf {
		title := entryTitle(entry)
		if _, generic := domain.GenericFieldTitles[title]; generic {
			report.Removed = append(report.Removed, title)
			continue
		}
		existing[title] = true
		kept = append(kept, entry)
	}
	report.Kept = len(kept)

	if len(report.Removed) == 0 {
		logger.Debug("No generic field schemas in %s", path)
		return report, nil
	}

	types, err := f.catalog.FieldTypes()
	if err != nil {
		return nil, fmt.Errorf("load field catalogue: %w", err)
	}

	split := make([]domain.Value, 0, len(types)+len(kept))
	for _, kind := range []domain.FieldKind{domain.FieldKindText, domain.FieldKindNumber} {
		for _, ft := range types {
			if ft.Kind != kind || existing[ft.Title] {
				continue
			}
			schema, err := f.Build(ft)
			if err != nil {
				return nil, err
			}
			logger.Debug("Generated %s (type: %s)", ft.Title, ft.Type)
			split = append(split, schema)
			report.Added = append(report.Added, ft)
		}
	}
	split = append(split, kept...)
	parent.Set(anyOfKey, split)

	out, err := f.codec.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.files.WriteFile(ctx, path, out); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	report.Modified = true
	logger.Info("Split %d generic field(s) into %d field types", len(report.Removed), len(report.Added))
	return report, nil
}

func entryTitle(v domain.Value) string {
	obj, ok := v.(*domain.Object)
	if !ok {
		return ""
	}
	title, _ := obj.GetString(domain.TitleKey)
	return title
}
