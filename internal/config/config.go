package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type AnalystPrompts struct {
	Analyze string `toml:"analyze"`
	Stories string `toml:"stories"`
}

type ArchitectPrompts struct {
	Design string `toml:"design"`
	UML    string `toml:"uml"`
	Verify string `toml:"verify"`
}

type Prompts struct {
	Analyst   AnalystPrompts   `toml:"analyst"`
	Architect ArchitectPrompts `toml:"architect"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type RenderConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type Config struct {
	LLM     LLMConfig    `toml:"llm"`
	Render  RenderConfig `toml:"render"`
	Prompts Prompts      `toml:"prompts"`
}

// ApplyEnv overrides file settings with environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("RENDER_BASE_URL"); v != "" {
		c.Render.BaseURL = v
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}
