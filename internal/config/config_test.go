package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temp settings file.
func createTempConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, name)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

const validSettingsYAML = `
filters:
  min_price: 400000
  max_price: 800000
  min_bedrooms: 3
  sort_by: "price.value"
  order: "DESC"
  limit: 10
transform:
  include_fields: ["zpid", "price", "address.city"]
  field_mapping:
    price: priceUsd
    zpid: id
  strip_empty: false
output:
  pretty_print: false
  preview_rows: 5
logging:
  level: "debug"
`

const validSettingsJSON = `{
  "filters": {
    "min_price": null,
    "max_price": 900000,
    "min_bedrooms": null,
    "sort_by": "livingArea",
    "order": "asc",
    "limit": null
  },
  "transform": {
    "include_fields": [],
    "field_mapping": {"b": "c", "a": "b"},
    "strip_empty": true
  }
}`

func TestLoadSettings_YAML(t *testing.T) {
	path := createTempConfigFile(t, "settings.yaml", validSettingsYAML)

	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if cfg.Filters.MinPrice == nil || *cfg.Filters.MinPrice != 400000 {
		t.Errorf("MinPrice = %v, want 400000", cfg.Filters.MinPrice)
	}

	if cfg.Filters.Limit == nil || *cfg.Filters.Limit != 10 {
		t.Errorf("Limit = %v, want 10", cfg.Filters.Limit)
	}

	if !cfg.Filters.Descending() {
		t.Error("Expected DESC order to be descending")
	}

	if len(cfg.Transform.IncludeFields) != 3 {
		t.Errorf("Expected 3 include fields, got %d", len(cfg.Transform.IncludeFields))
	}

	want := FieldMapping{{From: "price", To: "priceUsd"}, {From: "zpid", To: "id"}}
	if len(cfg.Transform.FieldMapping) != len(want) {
		t.Fatalf("FieldMapping = %v, want %v", cfg.Transform.FieldMapping, want)
	}

	for i := range want {
		if cfg.Transform.FieldMapping[i] != want[i] {
			t.Errorf("FieldMapping[%d] = %v, want %v", i, cfg.Transform.FieldMapping[i], want[i])
		}
	}

	if cfg.Transform.StripEmpty {
		t.Error("Expected strip_empty false")
	}

	if cfg.Output.PrettyPrint || cfg.Output.PreviewRows != 5 {
		t.Errorf("Output = %+v, want compact with 5 preview rows", cfg.Output)
	}
}

func TestLoadSettings_JSON(t *testing.T) {
	path := createTempConfigFile(t, "settings.json", validSettingsJSON)

	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if cfg.Filters.Limit != nil {
		t.Errorf("Expected explicit null limit to clear the default, got %d", *cfg.Filters.Limit)
	}

	if cfg.Filters.SortBy != "livingArea" {
		t.Errorf("SortBy = %s, want livingArea", cfg.Filters.SortBy)
	}

	if got := cfg.Transform.FieldMapping; len(got) != 2 || got[0].From != "b" || got[1].From != "a" {
		t.Errorf("FieldMapping order not preserved: %v", got)
	}

	// Sections absent from the file keep their defaults.
	if cfg.Logging.Level != "info" || !cfg.Output.PrettyPrint {
		t.Errorf("Expected default logging/output, got %+v %+v", cfg.Logging, cfg.Output)
	}
}

func TestLoadSettings_EmptyFileUsesDefaults(t *testing.T) {
	path := createTempConfigFile(t, "settings.yaml", "")

	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if cfg.Filters.SortBy != DefaultSortBy || cfg.Filters.Order != "asc" {
		t.Errorf("Unexpected filter defaults: %+v", cfg.Filters)
	}

	if cfg.Filters.Limit == nil || *cfg.Filters.Limit != 50 {
		t.Errorf("Expected default limit 50, got %v", cfg.Filters.Limit)
	}

	if !cfg.Transform.StripEmpty {
		t.Error("Expected strip_empty default true")
	}
}

func TestLoadSettings_FileNotFound(t *testing.T) {
	_, err := LoadSettings("/nonexistent/path/settings.yaml")
	if !errors.Is(err, ErrSettingsNotFound) {
		t.Fatalf("Expected ErrSettingsNotFound, got %v", err)
	}
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	path := createTempConfigFile(t, "settings.yaml", "invalid: yaml: content: [}")

	_, err := LoadSettings(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestLoadSettings_FieldMappingNotMap(t *testing.T) {
	path := createTempConfigFile(t, "settings.yaml", "transform:\n  field_mapping: [a, b]\n")

	_, err := LoadSettings(path)
	if !errors.Is(err, ErrFieldMappingNotMap) {
		t.Fatalf("Expected ErrFieldMappingNotMap, got %v", err)
	}
}

func TestSettings_Validate_Errors(t *testing.T) {
	neg := int64(-1)
	low := int64(100)
	high := int64(50)

	tests := []struct {
		mutate  func(s *Settings)
		wantErr error
		name    string
	}{
		{
			name:    "Invalid order",
			mutate:  func(s *Settings) { s.Filters.Order = "sideways" },
			wantErr: ErrInvalidOrder,
		},
		{
			name:    "Negative bedrooms",
			mutate:  func(s *Settings) { s.Filters.MinBedrooms = &neg },
			wantErr: ErrNegativeBound,
		},
		{
			name: "Inverted price range",
			mutate: func(s *Settings) {
				s.Filters.MinPrice = &low
				s.Filters.MaxPrice = &high
			},
			wantErr: ErrPriceRange,
		},
		{
			name:    "Empty rename target",
			mutate:  func(s *Settings) { s.Transform.FieldMapping = FieldMapping{{From: "price"}} },
			wantErr: ErrEmptyRename,
		},
		{
			name:    "Blank include field",
			mutate:  func(s *Settings) { s.Transform.IncludeFields = []string{"zpid", " "} },
			wantErr: ErrEmptyIncludeField,
		},
		{
			name:    "Negative preview rows",
			mutate:  func(s *Settings) { s.Output.PreviewRows = -1 },
			wantErr: ErrInvalidPreviewRows,
		},
		{
			name:    "Invalid log level",
			mutate:  func(s *Settings) { s.Logging.Level = "loud" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSettings()
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultSettings_Valid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("Default settings should validate: %v", err)
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	cfg := DefaultSettings()
	cfg.Transform.FieldMapping = FieldMapping{{From: "zpid", To: "id"}, {From: "price", To: "priceUsd"}}

	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	if err := cfg.SaveSettings(path); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if len(loaded.Transform.FieldMapping) != 2 || loaded.Transform.FieldMapping[0].From != "zpid" {
		t.Errorf("FieldMapping not preserved: %v", loaded.Transform.FieldMapping)
	}

	if loaded.String() != cfg.String() {
		t.Errorf("String() = %s, want %s", loaded.String(), cfg.String())
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvSettingsPath, "/tmp/custom.yaml")

	cfg := DefaultSettings()
	cfg.ApplyEnv()

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
	}

	if got := SettingsPath("config/settings.yaml"); got != "/tmp/custom.yaml" {
		t.Errorf("SettingsPath = %s, want /tmp/custom.yaml", got)
	}
}
