package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	if cfg.Cluster.K != 5 || cfg.Cluster.Restarts != 10 || cfg.Cluster.Seed != 42 {
		t.Errorf("Unexpected cluster defaults %+v", cfg.Cluster)
	}
	if cfg.Region.MaxHalfSize != 100 || cfg.Region.Divisor != 3 {
		t.Errorf("Unexpected region defaults %+v", cfg.Region)
	}
	if cfg.Mask.Lower != [3]uint8{0, 20, 70} || cfg.Mask.Upper != [3]uint8{255, 255, 255} {
		t.Errorf("Unexpected mask defaults %+v", cfg.Mask)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Cluster.K = 3
	cfg.Cluster.Seed = 7
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if loaded.Cluster.K != 3 || loaded.Cluster.Seed != 7 {
		t.Errorf("Expected saved cluster values, got %+v", loaded.Cluster)
	}
	if loaded.Mask != cfg.Mask {
		t.Errorf("Mask did not survive round trip: %+v", loaded.Mask)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"cluster": {"k": 4}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Cluster.K != 4 {
		t.Errorf("Expected k 4, got %d", cfg.Cluster.K)
	}
	if cfg.Cluster.Restarts != 10 || cfg.Region.MaxHalfSize != 100 {
		t.Errorf("Missing fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no formats", func(c *Config) { c.Loader.SupportedFormats = nil }},
		{"zero min size", func(c *Config) { c.Loader.MinImageSize = 0 }},
		{"zero half size", func(c *Config) { c.Region.MaxHalfSize = 0 }},
		{"zero divisor", func(c *Config) { c.Region.Divisor = 0 }},
		{"inverted mask", func(c *Config) { c.Mask.Lower[2] = 200; c.Mask.Upper[2] = 100 }},
		{"zero k", func(c *Config) { c.Cluster.K = 0 }},
		{"zero restarts", func(c *Config) { c.Cluster.Restarts = 0 }},
		{"zero iterations", func(c *Config) { c.Cluster.MaxIterations = 0 }},
		{"negative tolerance", func(c *Config) { c.Cluster.Tolerance = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	if cfg.ClusterOptions().K != cfg.Cluster.K {
		t.Error("ClusterOptions should carry k")
	}
	if cfg.MaskBounds().Lower != cfg.Mask.Lower {
		t.Error("MaskBounds should carry the lower bound")
	}
	if cfg.RegionOptions().Divisor != 3 {
		t.Error("RegionOptions should carry the divisor")
	}
	if len(cfg.LoaderOptions().SupportedFormats) == 0 {
		t.Error("LoaderOptions should carry formats")
	}
}

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".config", "skintone", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
