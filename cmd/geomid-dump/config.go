package main

import (
	"fmt"
	"os"

	"github.com/forestrie/go-geomid/finder"
	"github.com/forestrie/go-geomid/geomidmap"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is read from the --config file. Flags given on the command line
// take precedence.
type Config struct {
	Dir       string `yaml:"dir"`
	Hash      string `yaml:"hash"`
	File      string `yaml:"file"`
	Finders   string `yaml:"finders"`
	TopVolume string `yaml:"top_volume"`
	LogLevel  string `yaml:"log_level"`
	Positions bool   `yaml:"positions"`
}

func defaultConfig() Config {
	return Config{
		Dir:       ".",
		Finders:   "nd280",
		TopVolume: geomidmap.DefaultTopVolume,
		LogLevel:  "INFO",
	}
}

func addFlags(flagSet *pflag.FlagSet, cfg *Config) *string {
	configPath := flagSet.String("config", "", "YAML file providing defaults for the other flags")
	flagSet.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory holding geom-<hash>.geom snapshots")
	flagSet.StringVar(&cfg.Hash, "hash", cfg.Hash, "geometry hash, unknown words may be given as xxxxxxxx")
	flagSet.StringVar(&cfg.File, "file", cfg.File, "snapshot file to read instead of searching by hash")
	flagSet.StringVar(&cfg.Finders, "finders", cfg.Finders, "detector finders to run: captain, nd280 or all")
	flagSet.StringVar(&cfg.TopVolume, "top-volume", cfg.TopVolume, "volume the id map is built below")
	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: DEBUG, INFO, WARN, ERROR or NOOP")
	flagSet.BoolVar(&cfg.Positions, "positions", cfg.Positions, "print the position of every volume")
	return configPath
}

// loadConfig parses args. Values from the config file replace the
// defaults, flags on the command line replace both.
func loadConfig(args []string) (Config, error) {
	cfg := defaultConfig()
	flagSet := pflag.NewFlagSet("geomid-dump", pflag.ContinueOnError)
	configPath := addFlags(flagSet, &cfg)
	if err := flagSet.Parse(args); err != nil {
		return cfg, err
	}
	if *configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(*configPath)
	if err != nil {
		return cfg, err
	}
	fromFile := defaultConfig()
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return cfg, fmt.Errorf("%s: %w", *configPath, err)
	}

	// reparse so the command line wins
	cfg = fromFile
	flagSet = pflag.NewFlagSet("geomid-dump", pflag.ContinueOnError)
	addFlags(flagSet, &cfg)
	if err := flagSet.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func findersFor(name string) (finder.Factory, error) {
	switch name {
	case "captain":
		return finder.CaptainFinders(), nil
	case "nd280":
		return finder.ND280Finders(), nil
	case "all":
		return finder.Combine(finder.CaptainFinders(), finder.ND280Finders()), nil
	}
	return nil, fmt.Errorf("unknown finders %q", name)
}
