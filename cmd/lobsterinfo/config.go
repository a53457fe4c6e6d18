package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Structure is one LOBSTER calculation to analyze.
type Structure struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"`
}

// Config is the job description, read from a TOML file.
type Config struct {
	Coops       bool        `toml:"coops"`
	Parquet     string      `toml:"parquet"`
	Compression string      `toml:"compression"`
	PlotDir     string      `toml:"plotdir"`
	Top         int         `toml:"top"`
	Structures  []Structure `toml:"structures"`
}

const defaultTop = 5

// loadConfig opens and decodes the configuration file at path, and checks it.
func loadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var cfg Config
	dec := toml.NewDecoder(f)
	err = dec.Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// check validates the configuration and sets the defaults.
func (c *Config) check() error {
	if len(c.Structures) == 0 {
		return fmt.Errorf("no structures given")
	}
	if c.Top <= 0 {
		c.Top = defaultTop
	}
	seen := make(map[string]bool, len(c.Structures))
	for k, v := range c.Structures {
		if v.Dir == "" {
			return fmt.Errorf("structure %d (%s) has no dir", k, v.Name)
		}
		if v.Name == "" {
			c.Structures[k].Name = v.Dir
		}
		name := c.Structures[k].Name
		if seen[name] {
			return fmt.Errorf("structure name `%s` is repeated", name)
		}
		seen[name] = true
	}
	return nil
}
