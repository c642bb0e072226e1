package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/ezjson"
	"github.com/reoring/ezjson/source/gojson"
	ezyaml "github.com/reoring/ezjson/source/yaml"
)

// config is the optional YAML file passed with -config. Flags given on the
// command line take precedence.
type config struct {
	Indent     int    `yaml:"indent"`
	Driver     string `yaml:"driver"`
	MaxDepth   int    `yaml:"max_depth"`
	MaxBytes   int64  `yaml:"max_bytes"`
	Duplicates string `yaml:"duplicates"`
}

func defaultConfig() config {
	return config{Indent: 2, Driver: "lenient", Duplicates: "ignore"}
}

// loadConfig reads path over the defaults. Unknown keys are rejected.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if _, ok := ezjson.IndentOf(c.Indent); !ok {
		return fmt.Errorf("indent must be between 0 and 4, got %d", c.Indent)
	}
	if _, err := driverByName(c.Driver); err != nil {
		return err
	}
	if _, err := severityByName(c.Duplicates); err != nil {
		return err
	}
	if c.MaxDepth < 0 || c.MaxBytes < 0 {
		return errors.New("max_depth and max_bytes must not be negative")
	}
	return nil
}

func (c config) indent() ezjson.Indent {
	i, _ := ezjson.IndentOf(c.Indent)
	return i
}

// readOpt projects the config onto ezjson.ReadOpt. validate must have passed.
func (c config) readOpt(lg *Logger) ezjson.ReadOpt {
	d, _ := driverByName(c.Driver)
	sev, _ := severityByName(c.Duplicates)
	return ezjson.ReadOpt{
		Driver:         d,
		MaxDepth:       c.MaxDepth,
		MaxBytes:       c.MaxBytes,
		OnDuplicateKey: sev,
		Logger:         lg.Logger,
	}
}

func driverByName(name string) (ezjson.JSONDriver, error) {
	switch name {
	case "", "lenient":
		return ezjson.DefaultDriver(), nil
	case "go-json", "gojson":
		return gojson.Driver(), nil
	case "yaml":
		return ezyaml.Driver(), nil
	}
	return nil, fmt.Errorf("unknown driver %q (want lenient, go-json or yaml)", name)
}

func severityByName(name string) (ezjson.Severity, error) {
	switch name {
	case "", "ignore":
		return ezjson.Ignore, nil
	case "warn":
		return ezjson.Warn, nil
	case "error":
		return ezjson.Fail, nil
	}
	return ezjson.Ignore, fmt.Errorf("unknown duplicates policy %q (want ignore, warn or error)", name)
}
