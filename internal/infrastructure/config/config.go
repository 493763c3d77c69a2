package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	APIVersion string `env:"API_VERSION, default=v1"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRES_IN, default=168h"`

	Supabase  SupabaseConfig
	Admin     AdminConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig

	UploadDir string `env:"UPLOAD_DIR, default=uploads"`
}

type SupabaseConfig struct {
	URL            string `env:"SUPABASE_URL"`
	AnonKey        string `env:"SUPABASE_ANON_KEY"`
	ServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`
}

type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@sonnasweet.com"`
	Password string `env:"ADMIN_PASSWORD"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type RateLimitConfig struct {
	Window time.Duration `env:"RATE_LIMIT_WINDOW,       default=15m"`
	Max    int           `env:"RATE_LIMIT_MAX_REQUESTS, default=100"`
}

type CORSConfig struct {
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:5173"`
	AdminURL    string `env:"ADMIN_URL,    default=http://localhost:3000"`
}

// IsProduction reports whether the process runs with production semantics
// (fatal provisioning failures must terminate with a non-zero exit).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
