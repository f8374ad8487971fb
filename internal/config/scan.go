package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical scan defaults file.
const DefaultConfigPath = "config/scan.defaults.json"

// Defaults applied by the Get* methods when a field is omitted.
const (
	DefaultAngularWindowRad = 0.5 * math.Pi / 512
	DefaultSmoothingMode    = "every_read"
	DefaultNeighbourhood    = "index"
	DefaultPlotWidthIn      = 14.0
	DefaultPlotHeightIn     = 6.0
)

// maxAngularWindowRad bounds the smoothing window to a quarter turn.
const maxAngularWindowRad = math.Pi / 2

// ScanConfig holds tuning for scan smoothing and plotting. Every field is
// optional; omitted fields fall back to the defaults above, so partial
// files are safe.
type ScanConfig struct {
	AngularWindowRad *float64 `json:"angular_window_rad,omitempty"`
	SmoothingMode    *string  `json:"smoothing_mode,omitempty"` // "every_read" or "once"
	Neighbourhood    *string  `json:"neighbourhood,omitempty"`  // "index" or "angular"
	DebugChecks      *bool    `json:"debug_checks,omitempty"`

	// Plot output size in inches
	PlotWidthIn  *float64 `json:"plot_width_in,omitempty"`
	PlotHeightIn *float64 `json:"plot_height_in,omitempty"`
}

// EmptyScanConfig returns a ScanConfig with all fields set to nil.
func EmptyScanConfig() *ScanConfig {
	return &ScanConfig{}
}

// LoadScanConfig loads a ScanConfig from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadScanConfig(path string) (*ScanConfig, error) {
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

	cfg := EmptyScanConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents. Panics if the file cannot be loaded, intended
// for test setup.
func MustLoadDefaultConfig() *ScanConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadScanConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *ScanConfig) Validate() error {
	if c.AngularWindowRad != nil {
		w := *c.AngularWindowRad
		if math.IsNaN(w) || w <= 0 || w > maxAngularWindowRad {
			return fmt.Errorf("angular_window_rad must be in (0, %.4f], got %f", maxAngularWindowRad, w)
		}
	}

	if c.SmoothingMode != nil {
		switch *c.SmoothingMode {
		case "every_read", "once":
		default:
			return fmt.Errorf("invalid smoothing_mode %q: must be \"every_read\" or \"once\"", *c.SmoothingMode)
		}
	}

	if c.Neighbourhood != nil {
		switch *c.Neighbourhood {
		case "index", "angular":
		default:
			return fmt.Errorf("invalid neighbourhood %q: must be \"index\" or \"angular\"", *c.Neighbourhood)
		}
	}

	if c.PlotWidthIn != nil && *c.PlotWidthIn <= 0 {
		return fmt.Errorf("plot_width_in must be positive, got %f", *c.PlotWidthIn)
	}
	if c.PlotHeightIn != nil && *c.PlotHeightIn <= 0 {
		return fmt.Errorf("plot_height_in must be positive, got %f", *c.PlotHeightIn)
	}

	return nil
}

// GetAngularWindowRad returns the angular_window_rad value or the default.
func (c *ScanConfig) GetAngularWindowRad() float64 {
	if c.AngularWindowRad == nil {
		return DefaultAngularWindowRad
	}
	return *c.AngularWindowRad
}

// GetSmoothingMode returns the smoothing_mode value or the default.
func (c *ScanConfig) GetSmoothingMode() string {
	if c.SmoothingMode == nil || *c.SmoothingMode == "" {
		return DefaultSmoothingMode
	}
	return *c.SmoothingMode
}

// GetNeighbourhood returns the neighbourhood value or the default.
func (c *ScanConfig) GetNeighbourhood() string {
	if c.Neighbourhood == nil || *c.Neighbourhood == "" {
		return DefaultNeighbourhood
	}
	return *c.Neighbourhood
}

// GetDebugChecks returns the debug_checks value or the default.
func (c *ScanConfig) GetDebugChecks() bool {
	if c.DebugChecks == nil {
		return false // default: checks disabled
	}
	return *c.DebugChecks
}

// GetPlotWidthIn returns the plot_width_in value or the default.
func (c *ScanConfig) GetPlotWidthIn() float64 {
	if c.PlotWidthIn == nil {
		return DefaultPlotWidthIn
	}
	return *c.PlotWidthIn
}

// GetPlotHeightIn returns the plot_height_in value or the default.
func (c *ScanConfig) GetPlotHeightIn() float64 {
	if c.PlotHeightIn == nil {
		return DefaultPlotHeightIn
	}
	return *c.PlotHeightIn
}
