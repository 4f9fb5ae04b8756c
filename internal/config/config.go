// Package config loads the YAML configuration of the seqalign command.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/seqinput"
	"github.com/katalvlaran/seqalign/seqmatrix"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid configuration")

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml"}

// Scoring mirrors seqmatrix.Scoring with YAML keys.
type Scoring struct {
	Match    int `yaml:"match"`
	Mismatch int `yaml:"mismatch"`
	Indel    int `yaml:"indel"`
}

// Config is the file format read by Load.
//
//	scoring:
//	  match: 1
//	  mismatch: -1
//	  indel: -1
//	max_length: 30
//	format: text
type Config struct {
	Scoring   Scoring `yaml:"scoring"`
	MaxLength int     `yaml:"max_length"`
	Format    string  `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	s := seqmatrix.DefaultScoring()
	return Config{
		Scoring:   Scoring{Match: s.Match, Mismatch: s.Mismatch, Indel: s.Indel},
		MaxLength: seqinput.MaxLength,
		Format:    "text",
	}
}

// Load reads path over the defaults; keys absent from the file keep their
// default value. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MaxLength <= 0 {
		return fmt.Errorf("%w: max_length must be positive, got %d", ErrInvalid, c.MaxLength)
	}
	if c.Scoring.Match <= c.Scoring.Mismatch {
		return fmt.Errorf("%w: scoring.match (%d) must exceed scoring.mismatch (%d)",
			ErrInvalid, c.Scoring.Match, c.Scoring.Mismatch)
	}
	if c.Scoring.Indel > 0 {
		return fmt.Errorf("%w: scoring.indel must not be positive, got %d", ErrInvalid, c.Scoring.Indel)
	}
	if !ValidFormat(c.Format) {
		return fmt.Errorf("%w: format %q must be one of %v", ErrInvalid, c.Format, Formats)
	}
	return nil
}

// ValidFormat reports whether f is one of Formats.
func ValidFormat(f string) bool {
	return slices.Contains(Formats, f)
}

// Options converts the configuration into grid options.
func (c Config) Options() seqmatrix.Options {
	opts := seqmatrix.DefaultOptions()
	opts.Scoring = seqmatrix.Scoring{Match: c.Scoring.Match, Mismatch: c.Scoring.Mismatch, Indel: c.Scoring.Indel}
	return opts
}
