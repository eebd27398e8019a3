package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the whole service configuration. Keys follow config.yaml; any
// key with a default can be overridden from the environment by upper-casing
// it and replacing "." with "_" (HTTP_SERVER_PORT, AGENT_TIMEZONE).
type Config struct {
	Environment   EnvironmentConfig   `mapstructure:"environment"`
	HTTPServer    HTTPServerConfig    `mapstructure:"http_server"`
	Logger        LoggerConfig        `mapstructure:"logger"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Agent         AgentConfig         `mapstructure:"agent"`
	Google        GoogleConfig        `mapstructure:"google"`
	GitHub        GitHubConfig        `mapstructure:"github"`
	Session       SessionConfig       `mapstructure:"session"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type EnvironmentConfig struct {
	Name string `mapstructure:"name"`
}

type HTTPServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type LoggerConfig struct {
	Level        string `mapstructure:"level"`
	Mode         string `mapstructure:"mode"`
	Encoding     string `mapstructure:"encoding"`
	ColorEnabled bool   `mapstructure:"color_enabled"`
}

type RateLimitConfig struct {
	RequestsPerMin int `mapstructure:"requests_per_min"`
}

// LLMConfig lists the model providers and how the manager walks them.
type LLMConfig struct {
	Providers       []ProviderConfig `mapstructure:"providers"`
	FallbackEnabled bool             `mapstructure:"fallback_enabled"`
	RetryAttempts   int              `mapstructure:"retry_attempts"`
	RetryDelay      time.Duration    `mapstructure:"retry_delay"`
	MaxTotalTimeout time.Duration    `mapstructure:"max_total_timeout"`
	Temperature     float64          `mapstructure:"temperature"`
}

// ProviderConfig is one entry of llm.providers. APIKey may be written as
// ${ENV_VAR}.
type ProviderConfig struct {
	Name     string        `mapstructure:"name"`
	Enabled  bool          `mapstructure:"enabled"`
	Priority int           `mapstructure:"priority"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// AgentConfig tunes the orchestration loop and the workload aggregator.
type AgentConfig struct {
	MaxIterations     int           `mapstructure:"max_iterations"`
	Timezone          string        `mapstructure:"timezone"`
	SourceTimeout     time.Duration `mapstructure:"source_timeout"`
	WorkingHoursStart int           `mapstructure:"working_hours_start"`
	WorkingHoursEnd   int           `mapstructure:"working_hours_end"`
}

type GoogleConfig struct {
	CredentialsPath string `mapstructure:"credentials_path"`
	TokenPath       string `mapstructure:"token_path"`
	CalendarID      string `mapstructure:"calendar_id"`
	TaskListName    string `mapstructure:"tasklist_name"`
}

type GitHubConfig struct {
	Token       string `mapstructure:"token"`
	BaseURL     string `mapstructure:"base_url"`
	SearchLimit int    `mapstructure:"search_limit"`
}

type SessionConfig struct {
	Store    string        `mapstructure:"store"`
	TTL      time.Duration `mapstructure:"ttl"`
	Capacity int           `mapstructure:"capacity"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ObservabilityConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	PublicKey string `mapstructure:"public_key"`
	SecretKey string `mapstructure:"secret_key"`
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	ProviderOllama   = "ollama"
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"

	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "qwen2.5:7b"
)

var searchPaths = []string{"./config", ".", "/etc/devflow/"}

// envAliases are extra environment names accepted for a few keys, tried
// after the automatic one.
var envAliases = map[string]string{
	"google.credentials_path":  "GOOGLE_CREDENTIALS",
	"observability.host":       "LANGFUSE_HOST",
	"observability.public_key": "LANGFUSE_PUBLIC_KEY",
	"observability.secret_key": "LANGFUSE_SECRET_KEY",
}

// Load reads .env when present, then config.yaml from the search paths,
// then the environment. A missing config file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range searchPaths {
		v.AddConfigPath(dir)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	for key, alias := range envAliases {
		_ = v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), alias)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnv(cfg.LLM.Providers[i].APIKey)
	}
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = defaultProviders()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "120s")
	v.SetDefault("llm.temperature", 0.4)

	v.SetDefault("agent.max_iterations", 25)
	v.SetDefault("agent.timezone", "Asia/Kolkata")
	v.SetDefault("agent.source_timeout", "5s")
	v.SetDefault("agent.working_hours_start", 9)
	v.SetDefault("agent.working_hours_end", 17)

	v.SetDefault("google.credentials_path", "credentials.json")
	v.SetDefault("google.token_path", "token.json")
	v.SetDefault("google.calendar_id", "primary")
	v.SetDefault("google.tasklist_name", "DevFlow Tasks")

	// Empty defaults make the keys visible to AutomaticEnv during Unmarshal.
	v.SetDefault("github.token", "")
	v.SetDefault("github.base_url", "https://api.github.com")
	v.SetDefault("github.search_limit", 50)

	v.SetDefault("session.store", SessionStoreMemory)
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.capacity", 1000)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.host", "https://cloud.langfuse.com")
	v.SetDefault("observability.public_key", "")
	v.SetDefault("observability.secret_key", "")
}

// defaultProviders is used when llm.providers is absent: hosted models
// whose key is in the environment first, the local Ollama model last.
func defaultProviders() []ProviderConfig {
	var out []ProviderConfig
	add := func(p ProviderConfig) {
		p.Enabled = true
		p.Priority = len(out) + 1
		out = append(out, p)
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		add(ProviderConfig{Name: ProviderGemini, APIKey: key, Model: "gemini-2.5-flash"})
	}
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		add(ProviderConfig{Name: ProviderDeepSeek, APIKey: key, Model: "deepseek-chat"})
	}
	add(ProviderConfig{
		Name:    ProviderOllama,
		BaseURL: envOr("OLLAMA_BASE_URL", DefaultOllamaURL),
		Model:   envOr("OLLAMA_MODEL", DefaultOllamaModel),
	})
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// expandEnv resolves ${VAR} references; other values pass through untouched.
func expandEnv(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}
	return os.ExpandEnv(value)
}
