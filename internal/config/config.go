package config

import (
	"fmt"
	"os"
	"strings"

	kterrors "git.home.luguber.info/inful/ktdocs/internal/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "ktdocs.yaml"

// Config represents the application configuration
type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Output  OutputConfig  `yaml:"output"`
	Lint    LintConfig    `yaml:"lint"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// TreeConfig selects the documentation tree to work on
type TreeConfig struct {
	// Source is a .json/.yaml tree file; empty means the built-in descriptor.
	Source string `yaml:"source,omitempty"`
}

// OutputConfig represents scaffold output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"`    // Remove the output directory before scaffolding
	Manifest  *bool  `yaml:"manifest"` // Write manifest.json next to the pages (default true)
}

// WriteManifest reports whether a manifest should be written.
func (o OutputConfig) WriteManifest() bool {
	return o.Manifest == nil || *o.Manifest
}

// LintConfig tunes structural validation
type LintConfig struct {
	FailOnWarnings bool     `yaml:"fail_on_warnings"`
	Disabled       []string `yaml:"disabled,omitempty"`
}

// MetricsConfig enables Prometheus textfile output
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, kterrors.ConfigNotFound(configPath)
	}

	// #nosec G304 -- configuration path is user-provided
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, kterrors.ReadFailed(configPath, err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, kterrors.ConfigInvalid(configPath, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	applyDefaults(&config)
	if err := config.Validate(); err != nil {
		return nil, kterrors.ConfigInvalid(configPath, err)
	}
	return &config, nil
}

// LoadOrDefault loads configPath when it exists and falls back to Default
// otherwise. A missing file is only tolerated for the default path.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath == DefaultPath {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			loadEnvFile()
			return Default(), nil
		}
	}
	return Load(configPath)
}

func applyDefaults(cfg *Config) {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "./docs"
	}
}

// Validate checks field values that defaults cannot repair.
func (c *Config) Validate() error {
	if src := c.Tree.Source; src != "" {
		lower := strings.ToLower(src)
		if !strings.HasSuffix(lower, ".json") && !strings.HasSuffix(lower, ".yaml") && !strings.HasSuffix(lower, ".yml") {
			return fmt.Errorf("tree.source must be a .json, .yaml or .yml file: %s", src)
		}
	}
	if strings.TrimSpace(c.Output.Directory) == "/" {
		return fmt.Errorf("output.directory must not be the filesystem root")
	}
	return nil
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return kterrors.New(kterrors.CategoryConfig, kterrors.SeverityFatal,
			"configuration file already exists (use --force to overwrite)").WithContext("path", configPath)
	}

	manifest := true
	exampleConfig := Config{
		Tree: TreeConfig{},
		Output: OutputConfig{
			Directory: "./docs",
			Clean:     true,
			Manifest:  &manifest,
		},
		Lint: LintConfig{
			FailOnWarnings: false,
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return kterrors.InternalError("failed to marshal config", err)
	}

	// #nosec G306 -- configuration is not secret
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return kterrors.WriteFailed(configPath, err)
	}

	return nil
}
