package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/occupancy/internal/grid"
	"github.com/banshee-data/occupancy/internal/timeutil"
)

// DefaultConfigPath is the path to the canonical defaults file.
const DefaultConfigPath = "config/occupancy.defaults.json"

// Config is the root configuration for the gridctl tool. Every field is
// optional; the Get* accessors supply defaults for anything omitted.
type Config struct {
	// Text rendering
	OccupiedGlyph *string `json:"occupied_glyph,omitempty"`
	VacantGlyph   *string `json:"vacant_glyph,omitempty"`

	// Snapshot store
	DBPath    *string `json:"db_path,omitempty"`
	ListLimit *int    `json:"list_limit,omitempty"`
	Timezone  *string `json:"timezone,omitempty"`

	// Logging
	LogDiag *bool `json:"log_diag,omitempty"`
}

// Helper functions to create pointers
func ptrBool(v bool) *bool       { return &v }
func ptrString(v string) *string { return &v }
func ptrInt(v int) *int          { return &v }

// EmptyConfig returns a Config with all fields set to nil.
func EmptyConfig() *Config {
	return &Config{}
}

// DefaultConfig returns a Config with every field populated with its default.
func DefaultConfig() *Config {
	return &Config{
		OccupiedGlyph: ptrString(grid.DefaultGlyphs.Occupied),
		VacantGlyph:   ptrString(grid.DefaultGlyphs.Vacant),
		DBPath:        ptrString("occupancy.db"),
		ListLimit:     ptrInt(20),
		Timezone:      ptrString("UTC"),
		LogDiag:       ptrBool(false),
	}
}

// LoadConfig loads a Config from a JSON file.
// The file must have a .json extension and be under 1MB. Fields omitted
// from the file keep their defaults, so partial configs are safe.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents up to the repository root.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *Config {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/ or cmd/gridctl/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if err := c.Glyphs().Validate(); err != nil {
		return fmt.Errorf("glyphs: %w", err)
	}

	if c.DBPath != nil && *c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty when set")
	}

	if c.ListLimit != nil && *c.ListLimit <= 0 {
		return fmt.Errorf("list_limit must be positive, got %d", *c.ListLimit)
	}

	if c.Timezone != nil && !timeutil.IsTimezoneValid(*c.Timezone) {
		return fmt.Errorf("timezone %q is not a valid tz database name", *c.Timezone)
	}

	return nil
}

// Glyphs returns the rendering glyphs, falling back to grid.DefaultGlyphs
// for any that are unset.
func (c *Config) Glyphs() grid.Glyphs {
	g := grid.DefaultGlyphs
	if c.OccupiedGlyph != nil {
		g.Occupied = *c.OccupiedGlyph
	}
	if c.VacantGlyph != nil {
		g.Vacant = *c.VacantGlyph
	}
	return g
}

// GetDBPath returns the db_path value or the default.
func (c *Config) GetDBPath() string {
	if c.DBPath == nil {
		return "occupancy.db"
	}
	return *c.DBPath
}

// GetListLimit returns the list_limit value or the default.
func (c *Config) GetListLimit() int {
	if c.ListLimit == nil {
		return 20
	}
	return *c.ListLimit
}

// GetTimezone returns the timezone used when listing snapshots.
func (c *Config) GetTimezone() string {
	if c.Timezone == nil {
		return "UTC"
	}
	return *c.Timezone
}

// GetLogDiag returns the log_diag value or the default.
func (c *Config) GetLogDiag() bool {
	if c.LogDiag == nil {
		return false
	}
	return *c.LogDiag
}
