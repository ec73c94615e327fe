package services

import (
	"context"
	"fmt"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
	"github.com/omnera-dev/schematools/internal/core/ports/driving"
	"github.com/omnera-dev/schematools/internal/logger"
)

// Ensure RefRewriter implements the interface.
var _ driving.RefRewriter = (*RefRewriter)(nil)

// RefRewriter rewrites internal $ref pointers to external file paths.
type RefRewriter struct {
	files driven.FileStore
	codec driven.DocumentCodec
}

// NewRefRewriter creates a new reference rewriter.
func NewRefRewriter(files driven.FileStore, codec driven.DocumentCodec) *RefRewriter {
	return &RefRewriter{
		files: files,
		codec: codec,
	}
}

// Rewrite walks doc and rewrites every matching $ref string in place.
func (r *RefRewriter) Rewrite(doc domain.Value, rule domain.RefRule) bool {
	switch v := doc.(type) {
	case *domain.Object:
		return r.rewriteObject(v, rule)
	case []domain.Value:
		if !rule.TraverseArrays {
			return false
		}
		modified := false
		for _, item := range v {
			if r.Rewrite(item, rule) {
				modified = true
			}
		}
		return modified
	default:
		return false
	}
}

func (r *RefRewriter) rewriteObject(obj *domain.Object, rule domain.RefRule) bool {
	if obj == nil {
		return false
	}
	modified := false
	for _, m := range obj.Members() {
		if m.Key == domain.RefKey {
			if ref, ok := m.Value.(string); ok && rule.Matches(ref) {
				obj.Set(m.Key, rule.Apply(ref))
				modified = true
				continue
			}
		}
		if r.Rewrite(m.Value, rule) {
			modified = true
		}
	}
	return modified
}

// FixDirectory rewrites every schema file in dir.
func (r *RefRewriter) FixDirectory(
	ctx context.Context,
	dir string,
	rule domain.RefRule,
) (*domain.BatchReport, error) {
	logger.Section("Reference Rewrite")
	logger.Debug("Directory: %s, prefix: %q, target: %q", dir, rule.Prefix, rule.Target)

	paths, err := r.files.List(ctx, dir, domain.SchemaFilePattern)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	report := &domain.BatchReport{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Add(r.fixFile(ctx, path, rule))
	}
	return report, nil
}

func (r *RefRewriter) fixFile(ctx context.Context, path string, rule domain.RefRule) domain.FileResult {
	data, err := r.files.ReadFile(ctx, path)
	if err != nil {
		logger.Warn("read %s: %v", path, err)
		return domain.FileResult{Path: path, Status: domain.FileFailed, Err: err}
	}

	doc, err := r.codec.Decode(data)
	if err != nil {
		logger.Warn("parse %s: %v", path, err)
		return domain.FileResult{Path: path, Status: domain.FileFailed, Err: err}
	}

	if !r.Rewrite(doc, rule) {
		logger.Debug("No matching references in %s", path)
		return domain.FileResult{Path: path, Status: domain.FileUnchanged}
	}

	out, err := r.codec.Encode(doc)
	if err != nil {
		return domain.FileResult{Path: path, Status: domain.FileFailed, Err: err}
	}
	if err := r.files.WriteFile(ctx, path, out); err != nil {
		logger.Warn("write %s: %v", path, err)
		return domain.FileResult{Path: path, Status: domain.FileFailed, Err: err}
	}

	logger.Info("Rewrote references in %s", path)
	return domain.FileResult{Path: path, Status: domain.FileModified}
}
