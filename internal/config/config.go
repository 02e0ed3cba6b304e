package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/menta2k/skintone/pkg/cluster"
	"github.com/menta2k/skintone/pkg/loader"
	"github.com/menta2k/skintone/pkg/region"
	"github.com/menta2k/skintone/pkg/skinmask"
)

// Config holds the application configuration
type Config struct {
	Loader  LoaderConfig  `json:"loader"`
	Region  RegionConfig  `json:"region"`
	Mask    MaskConfig    `json:"mask"`
	Cluster ClusterConfig `json:"cluster"`
}

// LoaderConfig holds configuration for image loading
type LoaderConfig struct {
	SupportedFormats []string `json:"supported_formats"`
	MinImageSize     int      `json:"min_image_size"`
	AutoOrient       bool     `json:"auto_orient"`
}

// RegionConfig holds configuration for the center crop
type RegionConfig struct {
	MaxHalfSize int `json:"max_half_size"`
	Divisor     int `json:"divisor"`
}

// MaskConfig holds the inclusive skin colour range in R, G, B order
type MaskConfig struct {
	Lower [3]uint8 `json:"lower"`
	Upper [3]uint8 `json:"upper"`
}

// ClusterConfig holds configuration for dominant colour clustering
type ClusterConfig struct {
	K             int     `json:"k"`
	Restarts      int     `json:"restarts"`
	MaxIterations int     `json:"max_iterations"`
	Tolerance     float64 `json:"tolerance"`
	Seed          uint64  `json:"seed"`
}

// Default returns a configuration with default values
func Default() *Config {
	km := cluster.DefaultConfig()
	return &Config{
		Loader: LoaderConfig{
			SupportedFormats: append([]string(nil), loader.DefaultFormats...),
			MinImageSize:     1,
			AutoOrient:       true,
		},
		Region: RegionConfig{
			MaxHalfSize: region.DefaultMaxHalfSize,
			Divisor:     region.DefaultDivisor,
		},
		Mask: MaskConfig{
			Lower: skinmask.DefaultBounds.Lower,
			Upper: skinmask.DefaultBounds.Upper,
		},
		Cluster: ClusterConfig{
			K:             km.K,
			Restarts:      km.Restarts,
			MaxIterations: km.MaxIterations,
			Tolerance:     km.Tolerance,
			Seed:          km.Seed,
		},
	}
}

// LoadFromFile loads configuration from a JSON file.
// Fields missing from the file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Loader.SupportedFormats) == 0 {
		return fmt.Errorf("loader.supported_formats cannot be empty")
	}

	if c.Loader.MinImageSize < 1 {
		return fmt.Errorf("loader.min_image_size must be positive")
	}

	if c.Region.MaxHalfSize < 1 {
		return fmt.Errorf("region.max_half_size must be positive")
	}

	if c.Region.Divisor < 1 {
		return fmt.Errorf("region.divisor must be positive")
	}

	for i := range c.Mask.Lower {
		if c.Mask.Lower[i] > c.Mask.Upper[i] {
			return fmt.Errorf("mask.lower[%d] is above mask.upper[%d]", i, i)
		}
	}

	if c.Cluster.K < 1 {
		return fmt.Errorf("cluster.k must be at least 1")
	}

	if c.Cluster.Restarts < 1 {
		return fmt.Errorf("cluster.restarts must be at least 1")
	}

	if c.Cluster.MaxIterations < 1 {
		return fmt.Errorf("cluster.max_iterations must be at least 1")
	}

	if c.Cluster.Tolerance < 0 {
		return fmt.Errorf("cluster.tolerance cannot be negative")
	}

	return nil
}

// LoaderOptions converts the loader section for pkg/loader
func (c *Config) LoaderOptions() loader.Config {
	return loader.Config{
		SupportedFormats: c.Loader.SupportedFormats,
		MinImageSize:     c.Loader.MinImageSize,
		AutoOrient:       c.Loader.AutoOrient,
	}
}

// RegionOptions converts the region section for pkg/region
func (c *Config) RegionOptions() region.Config {
	return region.Config{MaxHalfSize: c.Region.MaxHalfSize, Divisor: c.Region.Divisor}
}

// MaskBounds converts the mask section for pkg/skinmask
func (c *Config) MaskBounds() skinmask.Bounds {
	return skinmask.Bounds{Lower: c.Mask.Lower, Upper: c.Mask.Upper}
}

// ClusterOptions converts the cluster section for pkg/cluster
func (c *Config) ClusterOptions() cluster.Config {
	return cluster.Config{
		K:             c.Cluster.K,
		Restarts:      c.Cluster.Restarts,
		MaxIterations: c.Cluster.MaxIterations,
		Tolerance:     c.Cluster.Tolerance,
		Seed:          c.Cluster.Seed,
	}
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "skintone", "config.json")
}
