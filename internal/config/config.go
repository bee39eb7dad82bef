package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/madmaxieee/azchat/internal/utils"
	"github.com/pelletier/go-toml/v2"
)

const (
	EndpointEnv = "AZURE_OPENAI_ENDPOINT"
	APIKeyEnv   = "AZURE_OPENAI_API_KEY"
)

var (
	ErrMissingEndpoint = errors.New("no Azure OpenAI endpoint configured, set " + EndpointEnv)
	ErrMissingAPIKey   = errors.New("no API key found, set " + APIKeyEnv + " as an environment variable or in a .env file")
)

// Config is the fully resolved configuration: file settings merged over
// defaults, credentials from the environment.
type Config struct {
	*ConfigFile
	APIKey string
}

// ConfigFile mirrors the optional TOML file at
// $XDG_CONFIG_HOME/azchat/config.toml. All fields are optional and merged
// over the built-in defaults.
type ConfigFile struct {
	Endpoint              *string `toml:"endpoint"`
	APIKeyEnv             *string `toml:"api_key_env"`
	DefaultModel          *string `toml:"default_model"`
	SystemPrompt          *string `toml:"system_prompt"`
	RequestTimeoutSeconds *int    `toml:"request_timeout_seconds"`
}

var defaultConfig = ConfigFile{
	Endpoint:              utils.StringPtr("https://temporarytesting.openai.azure.com/"),
	APIKeyEnv:             utils.StringPtr(APIKeyEnv),
	DefaultModel:          nil,
	SystemPrompt:          utils.StringPtr("You are a helpful assistant."),
	RequestTimeoutSeconds: utils.IntPtr(120),
}

func (cfg *ConfigFile) Merge(other *ConfigFile) {
	if other == nil {
		return
	}
	if other.Endpoint != nil {
		cfg.Endpoint = other.Endpoint
	}
	if other.APIKeyEnv != nil {
		cfg.APIKeyEnv = other.APIKeyEnv
	}
	if other.DefaultModel != nil {
		cfg.DefaultModel = other.DefaultModel
	}
	if other.SystemPrompt != nil {
		cfg.SystemPrompt = other.SystemPrompt
	}
	if other.RequestTimeoutSeconds != nil {
		cfg.RequestTimeoutSeconds = other.RequestTimeoutSeconds
	}
}

// Load resolves the configuration: a .env file if present, the optional
// TOML config merged over defaults, then credentials from the environment.
// No network activity happens here.
func Load(configFilePath string) (*Config, error) {
	// best effort, mirrors how the endpoint and key usually live in .env
	_ = godotenv.Load()

	if configFilePath == "" {
		configFilePath = DefaultConfigFilePath()
	}

	merged := defaultConfig
	data, err := os.ReadFile(configFilePath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		var file ConfigFile
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
		merged.Merge(&file)
	}

	cfg := &Config{ConfigFile: &merged}
	if endpoint, ok := os.LookupEnv(EndpointEnv); ok && endpoint != "" {
		cfg.Endpoint = utils.StringPtr(endpoint)
	}
	if key, ok := os.LookupEnv(*cfg.APIKeyEnv); ok {
		cfg.APIKey = key
	}
	return cfg, nil
}

// Validate reports the fatal configuration errors that must stop the
// process before any network call.
func (cfg *Config) Validate() error {
	if utils.DefaultString(cfg.Endpoint, "") == "" {
		return ErrMissingEndpoint
	}
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// RequestTimeout returns the per-request timeout, zero meaning no limit
// beyond what the transport enforces.
func (cfg *Config) RequestTimeout() time.Duration {
	return time.Duration(utils.DefaultInt(cfg.RequestTimeoutSeconds, 0)) * time.Second
}
