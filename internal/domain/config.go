package domain

import "time"

// Config holds the complete Kavach configuration.
type Config struct {
	// Server settings
	Server ServerConfig `json:"server"`

	// Session lifecycle settings
	Session SessionConfig `json:"session"`

	// GraphFile optionally points at a YAML question-graph definition.
	// Empty means the builtin questionnaire is used.
	GraphFile string `json:"graphFile"`

	// Component configurations
	Cache    CacheConfig    `json:"cache"`
	EventBus EventBusConfig `json:"eventBus"`

	// Observability
	Logging LoggingConfig `json:"logging"`
	Tracing TracingConfig `json:"tracing"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	ReadTimeout  int    `json:"readTimeout"`  // seconds
	WriteTimeout int    `json:"writeTimeout"` // seconds
}

// SessionConfig holds triage-session lifecycle settings.
type SessionConfig struct {
	// TTL is how long an idle session is kept before eviction.
	TTL time.Duration `json:"ttl"`

	// SweepInterval is how often expired sessions are collected.
	SweepInterval time.Duration `json:"sweepInterval"`

	// MaxSessions caps concurrently live sessions (0 = unlimited).
	MaxSessions int `json:"maxSessions"`

	// ResultTTL is how long completed results stay in the cache.
	ResultTTL time.Duration `json:"resultTtl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Enabled     bool   `json:"enabled"`
	ServiceName string `json:"serviceName"`
}

// DefaultConfig returns the single-process default configuration:
// in-memory cache, channel event bus, builtin question graph.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
		},
		Session: SessionConfig{
			TTL:           30 * time.Minute,
			SweepInterval: time.Minute,
			MaxSessions:   10000,
			ResultTTL:     2 * time.Hour,
		},
		Cache: CacheConfig{
			Type:         "memory",
			LocalMaxSize: 10000,
			LocalTTL:     5 * time.Minute,
		},
		EventBus: EventBusConfig{
			Type:              "channel",
			ChannelBufferSize: 1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "kavach",
		},
	}
}

// DistributedConfig returns a configuration for multi-replica deployments:
// Redis cache and NATS event bus, so sessions completed on one replica are
// visible to the others.
func DistributedConfig() *Config {
	cfg := DefaultConfig()
	cfg.Cache = CacheConfig{
		Type:      "redis",
		RedisAddr: "localhost:6379",
	}
	cfg.EventBus = EventBusConfig{
		Type:              "nats",
		NATSUrl:           "nats://localhost:4222",
		NATSMaxReconnects: 10,
		NATSReconnectWait: 5,
	}
	cfg.Tracing.Enabled = true
	return cfg
}
