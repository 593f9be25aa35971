// Package config loads run configuration from embedded defaults, an optional
// YAML file and command-line flags, in that order of precedence.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid reports a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all run parameters.
type Config struct {
	Sim   string `yaml:"sim"`
	Seed  int64  `yaml:"seed"`
	Steps int    `yaml:"steps"`
	// Params are passed verbatim to the simulation factory.
	Params map[string]string `yaml:"params"`

	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Batch     BatchConfig     `yaml:"batch"`
	Viewer    ViewerConfig    `yaml:"viewer"`
}

// RenderConfig controls headless ASCII frames.
type RenderConfig struct {
	ASCII bool `yaml:"ascii"`
	Every int  `yaml:"every"` // print one frame every N steps
	TPS   int  `yaml:"tps"`   // frame pacing, 0 disables
}

// TelemetryConfig controls CSV output.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // empty disables file output
	Every     int    `yaml:"every"`
}

// BatchConfig controls parallel runs.
type BatchConfig struct {
	Runs    int `yaml:"runs"`
	Workers int `yaml:"workers"`
}

// ViewerConfig holds settings for the windowed viewer.
type ViewerConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	return cfg
}

// Load returns the defaults overlaid with the YAML file at path. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	// Only fields present in the file are overwritten.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	return cfg, nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks ranges and clamps sampling intervals to at least one.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return fmt.Errorf("sim: empty name: %w", ErrInvalid)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps %d: %w", c.Steps, ErrInvalid)
	}
	if c.Batch.Runs < 1 {
		return fmt.Errorf("batch.runs %d: %w", c.Batch.Runs, ErrInvalid)
	}
	if c.Batch.Workers < 1 {
		c.Batch.Workers = 1
	}
	if c.Render.Every < 1 {
		c.Render.Every = 1
	}
	if c.Telemetry.Every < 1 {
		c.Telemetry.Every = 1
	}
	if c.Viewer.Scale < 1 {
		c.Viewer.Scale = 1
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first run (0 = random)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "maximum steps per run (0 = until complete)")
	fs.Var(paramFlag(c.Params), "set", "simulation parameter as key=value (repeatable)")
	fs.BoolVar(&c.Render.ASCII, "ascii", c.Render.ASCII, "print ASCII frames to stdout")
	fs.IntVar(&c.Render.Every, "every", c.Render.Every, "print a frame every N steps")
	fs.IntVar(&c.Render.TPS, "tps", c.Render.TPS, "frames per second when printing (0 = unpaced)")
	fs.StringVar(&c.Telemetry.OutputDir, "output-dir", c.Telemetry.OutputDir, "directory for CSV telemetry")
	fs.IntVar(&c.Batch.Runs, "runs", c.Batch.Runs, "number of independent runs")
	fs.IntVar(&c.Batch.Workers, "workers", c.Batch.Workers, "parallel workers for batch runs")
	fs.IntVar(&c.Viewer.Scale, "scale", c.Viewer.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Viewer.TPS, "view-tps", c.Viewer.TPS, "viewer ticks per second")
}

// Parse resolves the configuration for args. The -config flag names a YAML
// file applied over the defaults; all other flags override the file. extra may
// bind additional flags owned by the caller.
func Parse(name string, args []string, extra func(fs *flag.FlagSet)) (*Config, error) {
	var path string

	pre := flag.NewFlagSet(name, flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.StringVar(&path, "config", "", "")
	Default().Bind(pre)
	if extra != nil {
		extra(pre)
	}
	if err := pre.Parse(args); err != nil {
		// The second pass reports the error with usage.
		path = ""
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&path, "config", path, "YAML configuration file")
	cfg.Bind(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type paramFlag map[string]string

func (p paramFlag) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + p[k]
	}
	return strings.Join(parts, ",")
}

func (p paramFlag) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	p[strings.TrimSpace(key)] = strings.TrimSpace(value)
	return nil
}
