package emotion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Report format constants.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// SourceConfig names one comment source: a CSV file, or a directory matched
// against the include glob patterns.
type SourceConfig struct {
	Path    string   `yaml:"path"`
	Include []string `yaml:"include"`
}

// OutputConfig controls where and how the report is written.
type OutputConfig struct {
	Path      string `yaml:"path"`
	Format    string `yaml:"format"`
	Overwrite bool   `yaml:"overwrite"`
}

// Config drives one analyze run.
type Config struct {
	Lexicon      string         `yaml:"lexicon"`
	Emotions     []Label        `yaml:"emotions"`
	Comments     []SourceConfig `yaml:"comments"`
	Country      string         `yaml:"country"`
	Countries    []string       `yaml:"countries"`
	ExcludeUsers []string       `yaml:"exclude_users"`
	Output       OutputConfig   `yaml:"output"`
}

// LoadConfig loads a run config from YAML and validates it. Relative paths
// are resolved against the config file's directory.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config file %s: %w", path, ErrNotFound)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %v: %w", err, ErrMalformedSource)
	}

	cfg.applyDefaults(filepath.Dir(path))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) applyDefaults(configDir string) {
	if len(cfg.Emotions) == 0 {
		cfg.Emotions = DefaultSet().Labels()
	}
	if cfg.Country == "" {
		cfg.Country = FilterAll
	}
	cfg.Country = strings.ToLower(strings.TrimSpace(cfg.Country))
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}

	if cfg.Lexicon != "" && !filepath.IsAbs(cfg.Lexicon) {
		cfg.Lexicon = filepath.Join(configDir, cfg.Lexicon)
	}
	if cfg.Output.Path != "" && !filepath.IsAbs(cfg.Output.Path) {
		cfg.Output.Path = filepath.Join(configDir, cfg.Output.Path)
	}
	for i := range cfg.Comments {
		if cfg.Comments[i].Path != "" && !filepath.IsAbs(cfg.Comments[i].Path) {
			cfg.Comments[i].Path = filepath.Join(configDir, cfg.Comments[i].Path)
		}
		if len(cfg.Comments[i].Include) == 0 {
			cfg.Comments[i].Include = []string{"**/*.csv"}
		}
	}
}

func (cfg Config) validate() error {
	if cfg.Lexicon == "" {
		return fmt.Errorf("lexicon is required")
	}
	if len(cfg.Comments) == 0 {
		return fmt.Errorf("at least one comment source is required")
	}
	for _, source := range cfg.Comments {
		if source.Path == "" {
			return fmt.Errorf("comment source path is required")
		}
	}
	if _, err := NewSet(cfg.Emotions); err != nil {
		return err
	}
	if cfg.Output.Format != FormatText && cfg.Output.Format != FormatJSON {
		return fmt.Errorf("output format must be %s or %s, got %q", FormatText, FormatJSON, cfg.Output.Format)
	}
	for _, pattern := range cfg.ExcludeUsers {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("exclude_users pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// EmotionSet builds the configured emotion set.
func (cfg Config) EmotionSet() (Set, error) {
	return NewSet(cfg.Emotions)
}
