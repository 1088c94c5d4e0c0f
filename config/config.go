package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"aiplay/heredity"
	"aiplay/searcher"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

type Config struct {
	Heredity HeredityConfig `yaml:"heredity"`
	Search   SearchConfig   `yaml:"search"`
	Log      LogConfig      `yaml:"log"`
}

type HeredityConfig struct {
	// GenePrior is indexed by gene count
	GenePrior  []float64  `yaml:"gene_prior" validate:"len=3,dive,gte=0,lte=1"`
	Trait      []TraitRow `yaml:"trait" validate:"len=3,dive"` // Indexed by gene count
	Mutation   float64    `yaml:"mutation" validate:"gte=0,lte=1"`
	Goroutines int        `yaml:"goroutines" validate:"gte=1,lte=1024"`
}

type TraitRow struct {
	Present float64 `yaml:"present" validate:"gte=0,lte=1"`
	Absent  float64 `yaml:"absent" validate:"gte=0,lte=1"`
}

type SearchConfig struct {
	Goroutines  int           `yaml:"goroutines" validate:"gte=1,lte=1024"`
	Episodes    int           `yaml:"episodes" validate:"gte=0"`
	Duration    time.Duration `yaml:"duration" validate:"gte=0"`
	Exploration float64       `yaml:"exploration" validate:"gt=0"`
	Seed        uint64        `yaml:"seed"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	Pretty bool   `yaml:"pretty"`
}

func Default() Config {
	params := heredity.DefaultParams()
	trait := make([]TraitRow, len(params.Trait))
	for genes, row := range params.Trait {
		trait[genes] = TraitRow{Present: row[1], Absent: row[0]}
	}
	return Config{
		Heredity: HeredityConfig{
			GenePrior:  params.GenePrior[:],
			Trait:      trait,
			Mutation:   params.Mutation,
			Goroutines: 4,
		},
		Search: SearchConfig{
			Goroutines:  4,
			Episodes:    2000,
			Exploration: searcher.CSquared,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path loads only the defaults.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(&config); err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func loadFromEnv(config *Config) error {
	if v := os.Getenv("AIPLAY_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv("AIPLAY_GOROUTINES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AIPLAY_GOROUTINES=%q: %w", v, ErrInvalid)
		}
		config.Heredity.Goroutines = n
		config.Search.Goroutines = n
	}
	return nil
}

// Validate checks field ranges and that the probability tables are
// distributions.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Search.Episodes == 0 && c.Search.Duration == 0 {
		return fmt.Errorf("%w: search needs episodes or a duration", ErrInvalid)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Params converts the heredity section into inference parameters. It must
// only be called on a validated config.
func (c Config) Params() heredity.Params {
	var p heredity.Params
	copy(p.GenePrior[:], c.Heredity.GenePrior)
	for genes, row := range c.Heredity.Trait {
		if genes < len(p.Trait) {
			p.Trait[genes] = [2]float64{row.Absent, row.Present}
		}
	}
	p.Mutation = c.Heredity.Mutation
	return p
}

// SearchOptions converts the search section into MCTS options.
func (c Config) SearchOptions() []searcher.Option {
	options := []searcher.Option{searcher.WithExploration(c.Search.Exploration)}
	if c.Search.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(c.Search.Episodes))
	} else {
		options = append(options, searcher.WithDuration(c.Search.Duration))
	}
	if c.Search.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Search.Seed))
	}
	return options
}
