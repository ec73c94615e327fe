package services

import (
	"fmt"
	"time"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
	"github.com/omnera-dev/schematools/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySchemasRoot       = "schemas.root"
	keyRefsDir           = "refs.dir"
	keyRefsPrefix        = "refs.prefix"
	keyRefsTarget        = "refs.target"
	keyRefsTraverse      = "refs.traverse_arrays"
	keyPathsDir          = "paths.dir"
	keyPathsOld          = "paths.old"
	keyPathsNew          = "paths.new"
	keyLicensePath       = "license.path"
	keyLicenseProduct    = "license.product"
	keyLicenseChangeYear = "license.change_years"
	keyReaperPattern     = "reaper.pattern"
	keyReaperSettleMS    = "reaper.settle_ms"
	keyFieldsSchema      = "fields.schema"
	prefixTitles         = "titles"
)

// SettingsService resolves tool settings from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset keys fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	root := s.getString(keySchemasRoot, domain.DefaultSchemasRoot)
	defaults := domain.SettingsForRoot(root)

	settings := &domain.AppSettings{
		SchemasRoot: root,
		Refs: domain.RefSettings{
			Dir: s.getString(keyRefsDir, defaults.Refs.Dir),
			Rule: domain.RefRule{
				Prefix:         s.getString(keyRefsPrefix, defaults.Refs.Rule.Prefix),
				Target:         s.getString(keyRefsTarget, defaults.Refs.Rule.Target),
				TraverseArrays: s.getBool(keyRefsTraverse, defaults.Refs.Rule.TraverseArrays),
			},
		},
		Paths: domain.PathSettings{
			Dir: s.getString(keyPathsDir, defaults.Paths.Dir),
			Rewrite: domain.PathRewrite{
				Old: s.getString(keyPathsOld, defaults.Paths.Rewrite.Old),
				New: s.getString(keyPathsNew, defaults.Paths.Rewrite.New),
			},
		},
		Titles: defaults.Titles.With(s.configStore.GetStringMap(prefixTitles)),
		License: domain.LicenseSettings{
			Path:        s.getString(keyLicensePath, defaults.License.Path),
			Product:     s.getString(keyLicenseProduct, defaults.License.Product),
			ChangeYears: s.getInt(keyLicenseChangeYear, defaults.License.ChangeYears),
		},
		Reaper: domain.ReaperSettings{
			Pattern: s.getString(keyReaperPattern, defaults.Reaper.Pattern),
			Settle:  defaults.Reaper.Settle,
		},
		Fields: domain.FieldSettings{
			Schema: s.getString(keyFieldsSchema, defaults.Fields.Schema),
		},
	}

	if _, ok := s.configStore.Get(keyReaperSettleMS); ok {
		settings.Reaper.Settle = time.Duration(s.configStore.GetInt(keyReaperSettleMS)) * time.Millisecond
	}

	if err := validateSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to the config store and persists them.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keySchemasRoot, settings.SchemasRoot},
		{keyRefsDir, settings.Refs.Dir},
		{keyRefsPrefix, settings.Refs.Rule.Prefix},
		{keyRefsTarget, settings.Refs.Rule.Target},
		{keyRefsTraverse, settings.Refs.Rule.TraverseArrays},
		{keyPathsDir, settings.Paths.Dir},
		{keyPathsOld, settings.Paths.Rewrite.Old},
		{keyPathsNew, settings.Paths.Rewrite.New},
		{keyLicensePath, settings.License.Path},
		{keyLicenseProduct, settings.License.Product},
		{keyLicenseChangeYear, settings.License.ChangeYears},
		{keyReaperPattern, settings.Reaper.Pattern},
		{keyReaperSettleMS, int(settings.Reaper.Settle / time.Millisecond)},
		{keyFieldsSchema, settings.Fields.Schema},
	}
	for _, entry := range settings.Titles.Entries() {
		values = append(values, struct {
			key   string
			value any
		}{prefixTitles + "." + entry.Path, entry.Title})
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("failed to set %s: %w", v.key, err)
		}
	}
	return s.configStore.Save()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func validateSettings(s *domain.AppSettings) error {
	if s.Refs.Rule.Prefix == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, keyRefsPrefix)
	}
	if s.Paths.Rewrite.Old == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, keyPathsOld)
	}
	if s.License.ChangeYears <= 0 {
		return fmt.Errorf("%w: %s must be positive", domain.ErrInvalidInput, keyLicenseChangeYear)
	}
	if s.Reaper.Settle < 0 {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, keyReaperSettleMS)
	}
	return nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
