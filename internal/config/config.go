package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the orchestrator. It is loaded once at
// startup and passed into constructors; no component reads the environment
// at call time.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Planner      PlannerConfig      `yaml:"planner"`
	Cache        CacheConfig        `yaml:"cache"`
	Database     DatabaseConfig     `yaml:"database"`
	Scheduling   SchedulingConfig   `yaml:"scheduling"`
	ContentFeeds ContentFeedsConfig `yaml:"content_feeds"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// PlannerConfig holds LLM planner settings. The planner is invoked through
// AWS Bedrock; on failure the deterministic fallback builders take over.
type PlannerConfig struct {
	Enabled bool   `yaml:"enabled"`
	ModelID string `yaml:"model_id"`
	Region  string `yaml:"region"`
	MaxTokens int  `yaml:"max_tokens"`
	// Temperature is a pointer so an explicit 0 (greedy decoding) survives
	// defaulting; nil means unset.
	Temperature     *float64 `yaml:"temperature"`
	TimeoutSeconds  int      `yaml:"timeout_seconds"`
	CacheTTLSeconds int      `yaml:"cache_ttl_seconds"`
}

// CacheConfig holds planner response cache settings. With no Redis address
// the server falls back to an in-process cache.
type CacheConfig struct {
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

// DatabaseConfig holds the optional schedule-run audit store settings.
type DatabaseConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// SchedulingConfig holds the conservative-distribution policy knobs. The
// weekly caps are tuning constants, not invariants; defaults match the
// anti-fatigue policy (max 3 posts/week unless the caller explicitly asks
// for daily posting, then max 5).
type SchedulingConfig struct {
	ConservativePostsPerWeek  float64 `yaml:"conservative_posts_per_week"`
	ExplicitDailyPostsPerWeek float64 `yaml:"explicit_daily_posts_per_week"`
	MaxTimelineSlots          int     `yaml:"max_timeline_slots"`
	RandomSeed                int64   `yaml:"random_seed"` // 0 = time-seeded
}

// ContentFeedsConfig holds RSS inventory import settings.
type ContentFeedsConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
	MaxItems       int `yaml:"max_items"`
}

// Load reads configuration from a YAML file and applies defaults. A missing
// file is not an error: the defaults plus environment overrides are enough
// to run.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads the YAML file then overrides secrets and endpoints from
// the environment. A local .env file is honored when present.
func LoadFromEnv(path string) (*Config, error) {
	godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if model := os.Getenv("PLANNER_MODEL_ID"); model != "" {
		cfg.Planner.ModelID = model
	}
	if region := os.Getenv("AWS_REGION"); region != "" {
		cfg.Planner.Region = region
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Cache.RedisAddr = addr
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Cache.RedisPassword = pass
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
		cfg.Database.Enabled = true
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Planner.ModelID == "" {
		cfg.Planner.ModelID = "anthropic.claude-3-sonnet-20240229-v1:0"
	}
	if cfg.Planner.Region == "" {
		cfg.Planner.Region = "us-east-1"
	}
	if cfg.Planner.MaxTokens == 0 {
		cfg.Planner.MaxTokens = 4000
	}
	if cfg.Planner.Temperature == nil {
		temperature := 0.7
		cfg.Planner.Temperature = &temperature
	}
	if cfg.Planner.TimeoutSeconds == 0 {
		cfg.Planner.TimeoutSeconds = 45
	}
	if cfg.Planner.CacheTTLSeconds == 0 {
		cfg.Planner.CacheTTLSeconds = 300
	}
	if cfg.Scheduling.ConservativePostsPerWeek == 0 {
		cfg.Scheduling.ConservativePostsPerWeek = 3
	}
	if cfg.Scheduling.ExplicitDailyPostsPerWeek == 0 {
		cfg.Scheduling.ExplicitDailyPostsPerWeek = 5
	}
	if cfg.Scheduling.MaxTimelineSlots == 0 {
		cfg.Scheduling.MaxTimelineSlots = 20
	}
	if cfg.ContentFeeds.TimeoutSeconds == 0 {
		cfg.ContentFeeds.TimeoutSeconds = 30
	}
	if cfg.ContentFeeds.MaxItems == 0 {
		cfg.ContentFeeds.MaxItems = 50
	}
}
