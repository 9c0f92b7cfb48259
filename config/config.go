// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/shirou/gopsutil/v3/cpu"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thetasharp/matrix"
	"github.com/katalvlaran/thetasharp/theta"
)

// Defaults.
const (
	DefaultIndices     = 1
	DefaultWeightBound = 4
	DefaultRankMethod  = "exact"
	DefaultLogLevel    = "info"
)

// Config is the driver configuration.
type Config struct {
	Indices     int    `yaml:"indices" validate:"gte=1,lte=26"`
	WeightBound int    `yaml:"weight_bound" validate:"gte=1,lte=53"`
	Workers     int    `yaml:"workers" validate:"gte=0"` // 0 = physical cores
	Parallel    bool   `yaml:"parallel"`
	RankMethod  string `yaml:"rank_method" validate:"oneof=exact modular"`
	// OddWeightReduction is a pointer so an absent key keeps the default.
	OddWeightReduction *bool        `yaml:"odd_weight_reduction"`
	Random             RandomConfig `yaml:"random"`
	CacheDir           string       `yaml:"cache_dir"`
	LogLevel           string       `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsAddr        string       `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
	Runs               []Run        `yaml:"runs" validate:"required,min=1,dive"`
}

// RandomConfig controls random assignments.
type RandomConfig struct {
	Seed  *int64 `yaml:"seed"` // nil = time-seeded
	Bound int64  `yaml:"bound" validate:"gte=1"`
}

// Run is one kernel-bound query.
type Run struct {
	Degree        int  `yaml:"degree" validate:"gte=0"`
	FixedIntegers bool `yaml:"fixed_integers"`
}

var validate = validator.New()

// Default returns the two-query serial driver: degree 17 with fixed test
// integers, then degree 18 with random integers.
func Default() Config {
	return Config{
		Indices:     DefaultIndices,
		WeightBound: DefaultWeightBound,
		RankMethod:  DefaultRankMethod,
		Random:      RandomConfig{Bound: theta.DefaultRandomBound},
		LogLevel:    DefaultLogLevel,
		Runs: []Run{
			{Degree: 17, FixedIntegers: true},
			{Degree: 18, FixedIntegers: false},
		},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, configErrorf(opLoad, ErrPathRequired)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, configErrorf(opLoad, fmt.Errorf("read %s: %w", path, err))
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, configErrorf(opLoad, fmt.Errorf("decode: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return configErrorf(opValidate, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}

	return nil
}

// WorkerCount returns the configured worker count, or the number of
// physical cores when it is 0. Serial configurations get 0.
func (c Config) WorkerCount() int {
	if !c.Parallel {
		return 0
	}
	if c.Workers > 0 {
		return c.Workers
	}
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}

	return runtime.NumCPU()
}

// Level maps LogLevel to a slog level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Method maps RankMethod to a matrix.RankMethod.
func (c Config) Method() matrix.RankMethod {
	if c.RankMethod == matrix.RankModular.String() {
		return matrix.RankModular
	}

	return matrix.RankExact
}

// Options returns the theta options for run r. Extra options are appended
// last and win.
func (c Config) Options(r Run, extra ...theta.Option) []theta.Option {
	opts := []theta.Option{
		theta.WithIndices(c.Indices),
		theta.WithRankMethod(c.Method()),
		theta.WithRandomBound(c.Random.Bound),
		theta.WithWorkers(c.WorkerCount()),
	}
	if c.OddWeightReduction != nil {
		opts = append(opts, theta.WithOddWeightReduction(*c.OddWeightReduction))
	}
	if c.Random.Seed != nil {
		opts = append(opts, theta.WithSeed(*c.Random.Seed))
	}
	if r.FixedIntegers {
		opts = append(opts, theta.WithFixedTestIntegers())
	}

	return append(opts, extra...)
}
