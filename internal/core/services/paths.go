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

// Ensure PathFixer implements the interface.
var _ driving.PathFixer = (*PathFixer)(nil)

// PathFixer rewrites path strings in raw schema text. It does not parse JSON.
type PathFixer struct {
	files driven.FileStore
}

// NewPathFixer creates a new path fixer.
func NewPathFixer(files driven.FileStore) *PathFixer {
	return &PathFixer{files: files}
}

// FixText replaces every occurrence of rw.Old with rw.New.
func (p *PathFixer) FixText(text string, rw domain.PathRewrite) (string, bool) {
	if rw.Old == "" || !strings.Contains(text, rw.Old) {
		return text, false
	}
	out := strings.ReplaceAll(text, rw.Old, rw.New)
	return out, out != text
}

// FixDirectory applies rw to every schema file in dir.
func (p *PathFixer) FixDirectory(
	ctx context.Context,
	dir string,
	rw domain.PathRewrite,
) (*domain.BatchReport, error) {
	logger.Section("Path Fix")
	logger.Debug("Directory: %s, replacing %q with %q", dir, rw.Old, rw.New)

	if rw.Old == "" {
		return nil, fmt.Errorf("%w: empty search string", domain.ErrInvalidInput)
	}

	paths, err := p.files.List(ctx, dir, domain.SchemaFilePattern)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	report := &domain.BatchReport{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		data, err := p.files.ReadFile(ctx, path)
		if err != nil {
			logger.Warn("read %s: %v", path, err)
			report.Add(domain.FileResult{Path: path, Status: domain.FileFailed, Err: err})
			continue
		}

		fixed, changed := p.FixText(string(data), rw)
		if !changed {
			report.Add(domain.FileResult{Path: path, Status: domain.FileUnchanged})
			continue
		}

		if err := p.files.WriteFile(ctx, path, []byte(fixed)); err != nil {
			logger.Warn("write %s: %v", path, err)
			report.Add(domain.FileResult{Path: path, Status: domain.FileFailed, Err: err})
			continue
		}

		n := strings.Count(string(data), rw.Old)
		logger.Info("Fixed %d path(s) in %s", n, path)
		report.Add(domain.FileResult{
			Path:   path,
			Status: domain.FileModified,
			Detail: fmt.Sprintf("%d replacement(s)", n),
		})
	}
	return report, nil
}
