package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flightnet/core"
	"github.com/katalvlaran/flightnet/matrix"
)

// Environment overrides, applied after the config file.
const (
	envLogLevel   = "FLIGHTNET_LOG_LEVEL"
	envTableStyle = "FLIGHTNET_TABLE_STYLE"
	envGenSeed    = "FLIGHTNET_GEN_SEED"
)

var errInvalidConfig = errors.New("invalid config")

// Config is the CLI configuration. The seed network is only ever read.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// TableStyle names the border of the boxed adjacency table.
	TableStyle string `yaml:"table_style"`

	// Seed is loaded into the graph before the first command.
	Seed SeedConfig `yaml:"seed"`

	// Generator drives the gen script command.
	Generator GeneratorConfig `yaml:"generator"`
}

// GeneratorConfig sets the RNG seed and fare range of generated networks.
type GeneratorConfig struct {
	Seed    int64 `yaml:"seed"`
	FareMin int64 `yaml:"fare_min"`
	FareMax int64 `yaml:"fare_max"`
}

// SeedConfig lists airports and routes to preload.
type SeedConfig struct {
	Airports []string      `yaml:"airports"`
	Routes   []RouteConfig `yaml:"routes"`
}

// RouteConfig is one undirected route with its fare.
type RouteConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Fare int64  `yaml:"fare"`
}

// DefaultConfig returns info logging, rounded tables, an empty network and
// fares of 50 to 500 for generated routes.
func DefaultConfig() Config {
	return Config{
		LogLevel:   "info",
		TableStyle: matrix.DefaultBorder,
		Generator: GeneratorConfig{
			Seed:    1,
			FareMin: 50,
			FareMax: 500,
		},
	}
}

// LoadConfig loads configuration with priority: env > file > defaults.
//
// Inputs:
//   - path: YAML config file (optional, can be empty). A missing file
//     leaves the defaults in place.
//
// Outputs:
//   - Config: merged configuration.
//   - error: non-nil if the file is unreadable, malformed or fails Validate.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	loadConfigFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func loadConfigFromEnv(cfg *Config) {
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envTableStyle); v != "" {
		cfg.TableStyle = v
	}
	if v := os.Getenv(envGenSeed); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Generator.Seed = i
		}
	}
}

// Validate checks the log level, the table style and every seed route.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if !matrix.ValidBorder(c.TableStyle) {
		return fmt.Errorf("table_style %q: want one of %s",
			c.TableStyle, strings.Join(matrix.BorderNames(), ", "))
	}
	if c.Generator.FareMin < 1 {
		return fmt.Errorf("generator.fare_min must be >= 1")
	}
	if c.Generator.FareMax < c.Generator.FareMin {
		return fmt.Errorf("generator.fare_max must be >= fare_min")
	}
	for i, r := range c.Seed.Routes {
		if r.From == "" || r.To == "" {
			return fmt.Errorf("seed.routes[%d]: from and to are required", i)
		}
		if strings.EqualFold(r.From, r.To) {
			return fmt.Errorf("seed.routes[%d]: %w", i, core.ErrSelfReference)
		}
		if r.Fare == 0 {
			return fmt.Errorf("seed.routes[%d]: %w", i, core.ErrZeroWeight)
		}
	}

	return nil
}

// applySeed loads the seed network into g, uppercasing airport codes.
// Airports listed twice are an error; routes may only join listed airports.
func applySeed(g *core.Graph, seed SeedConfig) error {
	for _, a := range seed.Airports {
		if err := g.AddVertex(strings.ToUpper(a)); err != nil {
			return fmt.Errorf("seed airport: %w", err)
		}
	}
	for _, r := range seed.Routes {
		if err := g.AddEdge(strings.ToUpper(r.From), strings.ToUpper(r.To), r.Fare); err != nil {
			return fmt.Errorf("seed route %s-%s: %w", r.From, r.To, err)
		}
	}

	return nil
}
