// Package envcfg loads and validates the environment configuration services
// boot from. Parsing and type coercion happen here; the validation contract
// itself lives in [shapecheck.EnvConfig].
package envcfg

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/go-shape/shapecheck"
)

// Config is the parsed service environment.
type Config struct {
	NodeEnv     string `env:"NODE_ENV" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"3000"`
	TrustProxy  bool   `env:"TRUST_PROXY" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"shapecheck"`
}

var loadDotenv sync.Once

// Load parses the process environment, after a best-effort .env load, and
// validates the result against [shapecheck.EnvConfig]. The returned error
// carries the full message list when validation fails.
func Load() (Config, error) {
	loadDotenv.Do(func() {
		// A missing .env file is the normal production case.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	record := map[string]any{
		"NODE_ENV":    cfg.NodeEnv,
		"PORT":        float64(cfg.Port),
		"TRUST_PROXY": cfg.TrustProxy,
	}
	if _, err := shapecheck.Check(shapecheck.EnvConfig, record); err != nil {
		return Config{}, fmt.Errorf("validate environment: %w", err)
	}

	zap.L().Info("environment configuration loaded",
		zap.String("node_env", cfg.NodeEnv),
		zap.Int("port", cfg.Port),
		zap.Bool("trust_proxy", cfg.TrustProxy))
	return cfg, nil
}

// MustLoad is Load for main wiring; it panics on error.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
