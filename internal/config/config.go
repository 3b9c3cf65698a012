// Package config carries process-wide defaults from the environment plus
// the embedded canvas preset catalog.
package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Config holds runtime defaults. Flags override these per invocation.
type Config struct {
	OutputDir string // default output directory for generated pages
	FFmpeg    string // ffmpeg binary, empty means "ffmpeg" from PATH
	FFprobe   string // ffprobe binary, empty means "ffprobe" from PATH
	Quality   int    // JPEG quality 1-100
	Workers   int    // parallel page renders
	Presets   PresetsConfig
}

// PresetsConfig is the named canvas size catalog embedded at build time.
type PresetsConfig struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Preset is a named canvas size.
type Preset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// Load builds the configuration from PAGEGRID_* environment variables and
// the embedded preset catalog.
func Load() *Config {
	var presets PresetsConfig
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		// This is an embedded file so this error should never happen in practice.
		panic("failed to unmarshal embedded presets.yaml: " + err.Error())
	}

	return &Config{
		OutputDir: envString("PAGEGRID_OUTPUT", "image_pages"),
		FFmpeg:    os.Getenv("PAGEGRID_FFMPEG"),
		FFprobe:   os.Getenv("PAGEGRID_FFPROBE"),
		Quality:   envInt("PAGEGRID_QUALITY", 95),
		Workers:   envInt("PAGEGRID_WORKERS", 4),
		Presets:   presets,
	}
}

// Preset looks up a named canvas size from the embedded catalog.
func (c *Config) Preset(name string) (Preset, bool) {
	p, ok := c.Presets.Presets[name]
	return p, ok
}

// PresetNames lists the available preset names for help output.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets.Presets))
	for name := range c.Presets.Presets {
		names = append(names, name)
	}
	return names
}
