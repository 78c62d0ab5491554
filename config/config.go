package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Specialist backends
	Backends BackendsConfig

	// Edge
	CORS      CORSConfig
	RateLimit RateLimitConfig

	// Observability
	Telemetry TelemetryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendsConfig lists the connection settings for every specialist backend.
type BackendsConfig struct {
	Booking BackendConfig
	Sitter  BackendConfig
}

type BackendConfig struct {
	URL           string // base address, e.g. http://localhost:8002
	ChatPath      string
	HealthPath    string
	Timeout       time.Duration
	HealthTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type TelemetryConfig struct {
	Enabled     bool
	ServiceName string
}

// chatSuffix is stripped from backend URLs given as full chat endpoints.
const chatSuffix = "/agent/chat"

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
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
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backends
	cfg.Backends.Booking = loadBackend("booking")
	if bookingURL := viper.GetString("booking_agent_url"); bookingURL != "" {
		cfg.Backends.Booking.URL = bookingURL
	}
	cfg.Backends.Booking.URL = normalizeBaseURL(cfg.Backends.Booking.URL)

	cfg.Backends.Sitter = loadBackend("sitter")
	if sitterURL := viper.GetString("sitter_agent_url"); sitterURL != "" {
		cfg.Backends.Sitter.URL = sitterURL
	}
	cfg.Backends.Sitter.URL = normalizeBaseURL(cfg.Backends.Sitter.URL)

	// CORS: the frontend origin always comes first
	origins := loadList("cors.allowed_origins")
	if frontendURL := viper.GetString("frontend_url"); frontendURL != "" {
		origins = append([]string{frontendURL}, origins...)
	}
	cfg.CORS.AllowedOrigins = lo.Uniq(origins)

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Telemetry
	cfg.Telemetry.Enabled = viper.GetBool("telemetry.enabled")
	cfg.Telemetry.ServiceName = viper.GetString("telemetry.service_name")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8003)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Backends
	viper.SetDefault("backends.booking.url", "http://localhost:8002")
	viper.SetDefault("backends.sitter.url", "http://localhost:8001")
	for _, name := range []string{"booking", "sitter"} {
		viper.SetDefault("backends."+name+".chat_path", "/agent/chat")
		viper.SetDefault("backends."+name+".health_path", "/health")
		viper.SetDefault("backends."+name+".timeout", "30s")
		viper.SetDefault("backends."+name+".health_timeout", "5s")
	}

	viper.SetDefault("cors.allowed_origins", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.service_name", "agent-orchestrator")
}

func loadBackend(name string) BackendConfig {
	prefix := "backends." + name + "."
	return BackendConfig{
		URL:           viper.GetString(prefix + "url"),
		ChatPath:      viper.GetString(prefix + "chat_path"),
		HealthPath:    viper.GetString(prefix + "health_path"),
		Timeout:       viper.GetDuration(prefix + "timeout"),
		HealthTimeout: viper.GetDuration(prefix + "health_timeout"),
	}
}

// normalizeBaseURL accepts either a base address or a full chat endpoint URL.
func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimRight(raw, "/")
	return strings.TrimSuffix(raw, chatSuffix)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}

	backends := map[string]BackendConfig{
		"booking": cfg.Backends.Booking,
		"sitter":  cfg.Backends.Sitter,
	}
	for name, b := range backends {
		u, err := url.Parse(b.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("backends.%s.url must be an absolute http(s) url, got %q", name, b.URL)
		}
		if b.Timeout <= 0 {
			return fmt.Errorf("backends.%s.timeout must be positive", name)
		}
		if b.HealthTimeout <= 0 {
			return fmt.Errorf("backends.%s.health_timeout must be positive", name)
		}
	}

	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}

	return nil
}

// loadList reads key as either a YAML list or a comma separated string.
// Environment variables always arrive as strings.
func loadList(key string) []string {
	switch v := viper.Get(key).(type) {
	case nil:
		return nil
	case string:
		return splitList(v)
	default:
		items := lo.Map(viper.GetStringSlice(key), func(item string, _ int) string {
			return strings.TrimSpace(item)
		})
		return lo.Compact(items)
	}
}

// splitList splits a comma separated value.
func splitList(raw string) []string {
	items := lo.Map(strings.Split(raw, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Compact(items)
}
