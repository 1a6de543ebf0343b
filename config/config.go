package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Reddit assistant specifics
	Reddit  RedditConfig
	Cache   CacheConfig
	Session SessionConfig
	Fetcher FetcherConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RedditConfig struct {
	ClientID       string
	ClientSecret   string
	UserAgent      string
	BaseURL        string
	TokenURL       string
	RequestsPerMin int
	Timeout        time.Duration
	FilterPinned   bool // drop stickied posts from hot/top listings
}

type CacheConfig struct {
	Capacity int
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
	CookieName  string
}

type FetcherConfig struct {
	Workers       int
	DefaultPosts  int
	OverviewPosts int
	MaxPosts      int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Reddit
	cfg.Reddit.ClientID = viper.GetString("reddit.client_id")
	cfg.Reddit.ClientSecret = viper.GetString("reddit.client_secret")
	cfg.Reddit.UserAgent = viper.GetString("reddit.user_agent")
	cfg.Reddit.BaseURL = viper.GetString("reddit.base_url")
	cfg.Reddit.TokenURL = viper.GetString("reddit.token_url")
	cfg.Reddit.RequestsPerMin = viper.GetInt("reddit.requests_per_min")
	cfg.Reddit.Timeout = viper.GetDuration("reddit.timeout")
	cfg.Reddit.FilterPinned = viper.GetBool("reddit.filter_pinned")
	if id := viper.GetString("reddit_client_id"); id != "" {
		cfg.Reddit.ClientID = id
	}
	if secret := viper.GetString("reddit_client_secret"); secret != "" {
		cfg.Reddit.ClientSecret = secret
	}
	if ua := viper.GetString("reddit_user_agent"); ua != "" {
		cfg.Reddit.UserAgent = ua
	}

	// Cache, sessions, fetcher
	cfg.Cache.Capacity = viper.GetInt("cache.capacity")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Fetcher.Workers = viper.GetInt("fetcher.workers")
	cfg.Fetcher.DefaultPosts = viper.GetInt("fetcher.default_posts")
	cfg.Fetcher.OverviewPosts = viper.GetInt("fetcher.overview_posts")
	cfg.Fetcher.MaxPosts = viper.GetInt("fetcher.max_posts")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a providers section, OPENAI_API_KEY alone is enough to run.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("openai_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:     "openai",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("openai_model"),
				Timeout:  "60s",
			}}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}
	if c.Reddit.ClientID == "" || c.Reddit.ClientSecret == "" {
		return fmt.Errorf("reddit client_id and client_secret are required (REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET)")
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache.capacity must be positive, got %d", c.Cache.Capacity)
	}
	if c.Fetcher.Workers <= 0 {
		return fmt.Errorf("fetcher.workers must be positive, got %d", c.Fetcher.Workers)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Reddit defaults
	viper.SetDefault("reddit.user_agent", "reddit-assistant/1.0")
	viper.SetDefault("reddit.base_url", "https://oauth.reddit.com")
	viper.SetDefault("reddit.token_url", "https://www.reddit.com/api/v1/access_token")
	viper.SetDefault("reddit.requests_per_min", 100)
	viper.SetDefault("reddit.timeout", "30s")
	viper.SetDefault("reddit.filter_pinned", true)

	viper.SetDefault("cache.capacity", 20)
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.cookie_name", "session_id")
	viper.SetDefault("fetcher.workers", 10)
	viper.SetDefault("fetcher.default_posts", 10)
	viper.SetDefault("fetcher.overview_posts", 20)
	viper.SetDefault("fetcher.max_posts", 100)

	// LLM defaults: one provider, one call per turn
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("openai_model", "gpt-4o-mini")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set OPENAI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
