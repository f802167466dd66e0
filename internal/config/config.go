package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/models"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_SERVER_ADDR
const EnvPrefix = "PORTFOLIO_"

// ProjectsFile is the name of the projects file inside DataDir
const ProjectsFile = "projects.yml"

// Config holds all application configuration
type Config struct {
	ServerAddr   string   `koanf:"server_addr" yaml:"server_addr"`
	Title        string   `koanf:"title" yaml:"title"`
	DataDir      string   `koanf:"data_dir" yaml:"data_dir"`
	StaticDir    string   `koanf:"static_dir" yaml:"static_dir"`
	AssetsDir    string   `koanf:"assets_dir" yaml:"assets_dir"`
	Catalog      string   `koanf:"catalog" yaml:"catalog"`
	Filters      []string `koanf:"filters" yaml:"filters,omitempty"`
	LogLevel     string   `koanf:"log_level" yaml:"log_level"`
	CORSAllowAll bool     `koanf:"cors_allow_all" yaml:"cors_allow_all"`

	Projects *models.ProjectList `koanf:"-" yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ServerAddr: ":8080",
		Title:      "Portfolio",
		DataDir:    "data",
		StaticDir:  "static",
		AssetsDir:  "assets",
		Catalog:    catalog.Full,
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path, overlays PORTFOLIO_* environment
// variables and validates the result. A missing file means defaults.
// Projects are not loaded; see LoadProjects.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains valid values
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return errors.New("server_addr is required")
	}
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if _, err := catalog.Lookup(c.Catalog); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// LoadProjects reads the projects file from DataDir into c.Projects
func (c *Config) LoadProjects() error {
	projects, err := ReadProjects(filepath.Join(c.DataDir, ProjectsFile))
	if err != nil {
		return err
	}
	c.Projects = projects
	return nil
}

// ReadProjects parses a projects YAML file
func ReadProjects(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var projects models.ProjectList
	if err := yamlv3.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &projects, nil
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}
