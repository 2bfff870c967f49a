package internal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHeader   = "../src/render_config.h"
	DefaultSource   = "../src/render_config.c"
	DefaultOutput   = "sprites_gen.go"
	DefaultPackage  = "sprites"
	DefaultSentinel = "MAKE AUTOGEN"
)

// Config drives one generator run. Values come from the built-in defaults,
// then an optional YAML file, then command-line options.
type Config struct {
	Base        string   `yaml:"base"`
	Target      Target   `yaml:"target"`
	Header      string   `yaml:"header"`
	Source      string   `yaml:"source"`
	Output      string   `yaml:"output"`
	Package     string   `yaml:"package"`
	Sentinel    string   `yaml:"sentinel"`
	Descriptors []string `yaml:"descriptors"`
}

func DefaultConfig() *Config {
	return &Config{
		Target:   TargetSplit,
		Header:   DefaultHeader,
		Source:   DefaultSource,
		Output:   DefaultOutput,
		Package:  DefaultPackage,
		Sentinel: DefaultSentinel,
	}
}

func NewConfig(opts *Options) (*Config, error) {
	cfg := DefaultConfig()
	if path := opts.Values["-config"]; path != "" {
		file, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg.merge(file)
	}
	cfg.apply(opts.Values)
	cfg.Descriptors = append(cfg.Descriptors, opts.Descriptors...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: config %s does not exist", ErrMissingInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %v", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: config %s: %v", ErrUsage, path, err)
	}
	return &cfg, nil
}

func (c *Config) merge(other *Config) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&c.Base, other.Base)
	set(&c.Header, other.Header)
	set(&c.Source, other.Source)
	set(&c.Output, other.Output)
	set(&c.Package, other.Package)
	set(&c.Sentinel, other.Sentinel)
	if other.Target != "" {
		c.Target = other.Target
	}
	c.Descriptors = append(c.Descriptors, other.Descriptors...)
}

func (c *Config) apply(values map[string]string) {
	for k, v := range values {
		switch k {
		case "-base":
			c.Base = v
		case "-target":
			c.Target = Target(v)
		case "-header":
			c.Header = v
		case "-source":
			c.Source = v
		case "-output":
			c.Output = v
		case "-package":
			c.Package = v
		case "-sentinel":
			c.Sentinel = v
		}
	}
}

func (c *Config) Validate() error {
	if !c.Target.IsValid() {
		return fmt.Errorf("%w: invalid argument -target: %s", ErrUsage, c.Target)
	}
	if len(c.Descriptors) == 0 {
		return fmt.Errorf("%w: no descriptor files given", ErrUsage)
	}

	switch c.Target {
	case TargetGo:
		if c.Output == "" || c.Package == "" {
			return fmt.Errorf("%w: -output and -package are required for target %s", ErrUsage, c.Target)
		}
	case TargetSplit:
		if c.Source == "" {
			return fmt.Errorf("%w: -source is required for target %s", ErrUsage, c.Target)
		}
		fallthrough
	case TargetHeader:
		if c.Header == "" {
			return fmt.Errorf("%w: -header is required for target %s", ErrUsage, c.Target)
		}
		if c.Sentinel == "" {
			return fmt.Errorf("%w: -sentinel must not be empty", ErrUsage)
		}
	}
	return nil
}

// DescriptorPaths resolves descriptor names against Base. Absolute names are
// kept as given.
func (c *Config) DescriptorPaths() []string {
	out := make([]string, 0, len(c.Descriptors))
	for _, d := range c.Descriptors {
		if c.Base == "" || filepath.IsAbs(d) {
			out = append(out, d)
			continue
		}
		out = append(out, filepath.Join(c.Base, d))
	}
	return out
}
