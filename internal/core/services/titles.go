package services

import (
	"context"
	"fmt"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
	"github.com/omnera-dev/schematools/internal/core/ports/driving"
	"github.com/omnera-dev/schematools/internal/logger"
)

// Ensure TitleInjector implements the interface.
var _ driving.TitleInjector = (*TitleInjector)(nil)

// leadingKeys stay ahead of the inserted title, in this order.
var leadingKeys = []string{domain.IDKey, domain.SchemaKey}

// TitleInjector inserts titles from a static table into schema files.
type TitleInjector struct {
	files driven.FileStore
	codec driven.DocumentCodec
}

// NewTitleInjector creates a new title injector.
func NewTitleInjector(files driven.FileStore, codec driven.DocumentCodec) *TitleInjector {
	return &TitleInjector{
		files: files,
		codec: codec,
	}
}

// Inject builds a new object with title right after $id and $schema.
// Values are shared with obj, not copied.
func (t *TitleInjector) Inject(obj *domain.Object, title string) (*domain.Object, bool) {
	if obj.Has(domain.TitleKey) {
		return obj, false
	}

	out := domain.NewObject()
	for _, key := range leadingKeys {
		if v, ok := obj.Get(key); ok {
			out.Set(key, v)
		}
	}
	out.Set(domain.TitleKey, title)
	for _, m := range obj.Members() {
		if m.Key == domain.IDKey || m.Key == domain.SchemaKey {
			continue
		}
		out.Set(m.Key, m.Value)
	}
	return out, true
}

// InjectAll processes every table entry. A failing file never aborts the batch.
func (t *TitleInjector) InjectAll(
	ctx context.Context,
	root string,
	table domain.TitleTable,
) (*domain.BatchReport, error) {
	logger.Section("Title Injection")
	logger.Debug("Root: %s, entries: %d", root, table.Len())

	report := &domain.BatchReport{}
	for _, entry := range table.Entries() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		path := t.files.Join(root, entry.Path)
		res := t.injectFile(ctx, path, entry.Title)
		if res.Err != nil {
			logger.Warn("%s: %v", path, res.Err)
		}
		report.Add(res)
	}
	return report, nil
}

func (t *TitleInjector) injectFile(ctx context.Context, path, title string) domain.FileResult {
	data, err := t.files.ReadFile(ctx, path)
	if err != nil {
		return domain.FileResult{Path: path, Status: domain.FileFailed, Err: err}
	}

	doc, err := t.codec.Decode(data)
	if err != nil {
		return domain.FileResult{Path: path, Status: domain.FileFailed, Err: err}
	}

	obj, ok := doc.(*domain.Object)
	if !ok || obj == nil {
		return domain.FileResult{
			Path:   path,
			Status: domain.FileFailed,
			Err:    fmt.Errorf("%s: %w", path, domain.ErrNotObject),
		}
	}

	titled, changed := t.Inject(obj, title)
	if !changed {
		logger.Debug("%s already has a title", path)
		return domain.FileResult{Path: path, Status: domain.FileSkipped, Detail: "title already present"}
	}

	out, err := t.codec.Encode(titled)
	if err != nil {
		return domain.FileResult{Path: path, Status: domain.FileFailed, Err: err}
	}
	if err := t.files.WriteFile(ctx, path, out); err != nil {
		return domain.FileResult{Path: path, Status: domain.FileFailed, Err: err}
	}

	logger.Info("Added title %q to %s", title, path)
	return domain.FileResult{Path: path, Status: domain.FileModified, Detail: title}
}
