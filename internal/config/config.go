// Package config holds the portal configuration: Supabase project
// credentials, the generative API key and the static server settings.
// Configuration is loaded from a YAML file, then environment variables
// override individual values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all AJC portal configuration.
type Config struct {
	// Supabase project the portal talks to.
	Supabase SupabaseConfig `yaml:"supabase"`

	// Generative-language API used by the chat assistant.
	Generative GenerativeConfig `yaml:"generative"`

	// Static-asset server (ajc serve).
	Serve ServeConfig `yaml:"serve"`

	// Local chat transcript database.
	TranscriptPath string `yaml:"transcript_path"`
}

// SupabaseConfig locates the hosted backend.
type SupabaseConfig struct {
	URL     string `yaml:"url"`
	AnonKey string `yaml:"anon_key"`
}

// GenerativeConfig configures the chat assistant.
type GenerativeConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// ServeConfig configures the static-asset server.
type ServeConfig struct {
	Dir       string `yaml:"dir"`
	HTTPAddr  string `yaml:"http_addr"`
	HTTPSAddr string `yaml:"https_addr"`
	CertFile  string `yaml:"cert_file"`
	KeyFile   string `yaml:"key_file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Generative: GenerativeConfig{
			Model: "gemini-2.5-flash",
		},
		Serve: ServeConfig{
			Dir:       "dist",
			HTTPAddr:  ":3005",
			HTTPSAddr: ":3006",
			CertFile:  "cert_ajc.crt",
			KeyFile:   "cert_ajc.key",
		},
		TranscriptPath: filepath.Join(".ajc", "transcripts.db"),
	}
}

// Load reads the config file at path (if present), applies defaults for
// missing values, then applies environment overrides. A missing file is
// not an error: defaults plus environment are used.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Fall through to env overrides.
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets deployment environments inject credentials
// without a config file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Supabase.URL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		c.Supabase.AnonKey = v
	}
	// API_KEY matches the original deployment; GEMINI_API_KEY wins if both set.
	if v := os.Getenv("API_KEY"); v != "" {
		c.Generative.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Generative.APIKey = v
	}
	if v := os.Getenv("AJC_CERT_FILE"); v != "" {
		c.Serve.CertFile = v
	}
	if v := os.Getenv("AJC_KEY_FILE"); v != "" {
		c.Serve.KeyFile = v
	}
}

// Validate checks that the portal can reach its collaborators.
func (c Config) Validate() error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("supabase url is required (set supabase.url or SUPABASE_URL)")
	}
	if c.Supabase.AnonKey == "" {
		return fmt.Errorf("supabase anon key is required (set supabase.anon_key or SUPABASE_ANON_KEY)")
	}
	return nil
}
