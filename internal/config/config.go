// Package config provides settings management for the listing pipeline.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings validation errors.
var (
	ErrSettingsNotFound   = errors.New("settings file not found")
	ErrInvalidOrder       = errors.New("filters.order must be 'asc' or 'desc'")
	ErrNegativeBound      = errors.New("filters bounds must be non-negative")
	ErrPriceRange         = errors.New("filters.min_price cannot exceed filters.max_price")
	ErrEmptyRename        = errors.New("transform.field_mapping keys and values must be non-empty")
	ErrEmptyIncludeField  = errors.New("transform.include_fields entries must be non-empty")
	ErrInvalidPreviewRows = errors.New("output.preview_rows must be non-negative")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

// DefaultSortBy is the dotted path listings are sorted by when unset.
const DefaultSortBy = "price.value"

// Settings represents the complete pipeline configuration.
type Settings struct {
	Filters   FilterSettings    `yaml:"filters"`
	Transform TransformSettings `yaml:"transform"`
	Logging   LoggingSettings   `yaml:"logging"`
	Output    OutputSettings    `yaml:"output"`
}

// FilterSettings controls the filter, sort and limit stage.
type FilterSettings struct {
	MinPrice    *int64 `yaml:"min_price"`
	MaxPrice    *int64 `yaml:"max_price"`
	MinBedrooms *int64 `yaml:"min_bedrooms"`
	Limit       *int   `yaml:"limit"`
	SortBy      string `yaml:"sort_by"`
	Order       string `yaml:"order"`
}

// TransformSettings controls projection, renaming and cleansing.
type TransformSettings struct {
	IncludeFields []string     `yaml:"include_fields"`
	FieldMapping  FieldMapping `yaml:"field_mapping"`
	StripEmpty    bool         `yaml:"strip_empty"`
}

// OutputSettings controls how results are written.
type OutputSettings struct {
	PreviewRows int  `yaml:"preview_rows"`
	PrettyPrint bool `yaml:"pretty_print"`
}

// LoggingSettings defines logging behavior.
type LoggingSettings struct {
	Level string `yaml:"level"`
}

// DefaultSettings returns the settings used when no file is supplied.
func DefaultSettings() *Settings {
	limit := 50

	return &Settings{
		Filters: FilterSettings{
			SortBy: DefaultSortBy,
			Order:  "asc",
			Limit:  &limit,
		},
		Transform: TransformSettings{
			IncludeFields: []string{},
			StripEmpty:    true,
		},
		Output: OutputSettings{
			PrettyPrint: true,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// LoadSettings loads settings from a YAML (or JSON) file. Keys missing from
// the file keep their defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}

		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return cfg, nil
}

// SaveSettings writes the settings to a YAML file.
func (s *Settings) SaveSettings(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Validate validates the settings.
func (s *Settings) Validate() error {
	f := s.Filters

	if f.Order != "" && !strings.EqualFold(f.Order, "asc") && !strings.EqualFold(f.Order, "desc") {
		return fmt.Errorf("%w: got %q", ErrInvalidOrder, f.Order)
	}

	for name, bound := range map[string]*int64{
		"min_price":    f.MinPrice,
		"max_price":    f.MaxPrice,
		"min_bedrooms": f.MinBedrooms,
	} {
		if bound != nil && *bound < 0 {
			return fmt.Errorf("%w: filters.%s", ErrNegativeBound, name)
		}
	}

	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return ErrPriceRange
	}

	for i, field := range s.Transform.IncludeFields {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("%w: include_fields[%d]", ErrEmptyIncludeField, i)
		}
	}

	for i, r := range s.Transform.FieldMapping {
		if r.From == "" || r.To == "" {
			return fmt.Errorf("%w: field_mapping[%d]", ErrEmptyRename, i)
		}
	}

	if s.Output.PreviewRows < 0 {
		return ErrInvalidPreviewRows
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Descending reports whether results are sorted in descending order.
func (f *FilterSettings) Descending() bool {
	return strings.EqualFold(f.Order, "desc")
}

// String returns a string representation of the settings.
func (s *Settings) String() string {
	limit := "none"
	if s.Filters.Limit != nil {
		limit = fmt.Sprintf("%d", *s.Filters.Limit)
	}

	return fmt.Sprintf(
		"Settings{SortBy: %s, Order: %s, Limit: %s, IncludeFields: %d, Renames: %d, StripEmpty: %t}",
		s.Filters.SortBy,
		s.Filters.Order,
		limit,
		len(s.Transform.IncludeFields),
		len(s.Transform.FieldMapping),
		s.Transform.StripEmpty,
	)
}
