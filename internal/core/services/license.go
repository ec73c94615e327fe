package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
	"github.com/omnera-dev/schematools/internal/core/ports/driving"
	"github.com/omnera-dev/schematools/internal/logger"
)

// Ensure LicenseStamper implements the interface.
var _ driving.LicenseStamper = (*LicenseStamper)(nil)

var (
	// "The Licensed Work is (c) 2024 ESSENTIAL SERVICES"
	copyrightPattern = regexp.MustCompile(`(Licensed Work is \([cC]\)[ \t]+)\d{4}`)

	// "Change Date:          2029-01-01"
	changeDatePattern = regexp.MustCompile(`(Change Date:[ \t]+)\d{4}-\d{2}-\d{2}`)
)

// licensedWorkPattern matches "Licensed Work:        Omnera 1.2.3" for the
// given product name, which may span several words.
func licensedWorkPattern(product string) *regexp.Regexp {
	return regexp.MustCompile(`(Licensed Work:[ \t]+` + regexp.QuoteMeta(product) + `)[ \t]+\S+`)
}

// LicenseStamper updates the BSL license file for a release.
type LicenseStamper struct {
	files       driven.FileStore
	clock       driven.Clock
	product     string
	changeYears int
	work        *regexp.Regexp
}

// NewLicenseStamper creates a stamper for product whose change date lies
// changeYears after the stamping day.
func NewLicenseStamper(files driven.FileStore, clock driven.Clock, product string, changeYears int) *LicenseStamper {
	return &LicenseStamper{
		files:       files,
		clock:       clock,
		product:     product,
		changeYears: changeYears,
		work:        licensedWorkPattern(product),
	}
}

// Apply runs the three substitutions over text. Each one is independent
// and rewrites only the first occurrence of its field; a field that is not
// found is listed in the report as missing.
func (s *LicenseStamper) Apply(text string, stamp domain.LicenseStamp) (string, domain.StampReport) {
	report := domain.StampReport{Stamp: stamp}

	substitute := func(field domain.LicenseField, re *regexp.Regexp, value string) {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			report.Missing = append(report.Missing, field)
			return
		}
		text = text[:loc[3]] + value + text[loc[1]:]
		report.Updated = append(report.Updated, field)
	}

	substitute(domain.FieldVersion, s.workPattern(stamp.Product), " "+stamp.Version)
	substitute(domain.FieldCopyright, copyrightPattern, strconv.Itoa(stamp.Year))
	substitute(domain.FieldChangeDate, changeDatePattern, stamp.ChangeDateString())

	return text, report
}

func (s *LicenseStamper) workPattern(product string) *regexp.Regexp {
	if product == s.product {
		return s.work
	}
	return licensedWorkPattern(product)
}

// Stamp rewrites the license at path. The file is written once, after all
// substitutions are computed, and only when its content changes.
func (s *LicenseStamper) Stamp(ctx context.Context, path, version string) (*domain.StampReport, error) {
	logger.Section("License Stamp")

	version = strings.TrimSpace(version)
	if version == "" {
		return nil, domain.ErrVersionRequired
	}
	if strings.ContainsAny(version, " \t\r\n") {
		return nil, fmt.Errorf("%w: version %q contains whitespace", domain.ErrInvalidInput, version)
	}

	data, err := s.files.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read license: %w", err)
	}

	stamp := domain.NewLicenseStamp(s.product, version, s.clock.Now(), s.changeYears)
	logger.Debug("Version: %s, year: %d, change date: %s", stamp.Version, stamp.Year, stamp.ChangeDateString())

	original := string(data)
	updated, report := s.Apply(original, stamp)
	for _, field := range report.Missing {
		logger.Warn("No %s found in %s", field, path)
	}

	if updated == original {
		logger.Debug("%s already up to date", path)
		return &report, nil
	}

	if err := s.files.WriteFile(ctx, path, []byte(updated)); err != nil {
		return nil, fmt.Errorf("write license: %w", err)
	}
	report.Modified = true
	logger.Info("Updated %s to %s %s", path, stamp.Product, stamp.Version)
	return &report, nil
}
