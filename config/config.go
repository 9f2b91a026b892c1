package config

import (
	"fmt"
	"net/url"

	"github.com/imdario/mergo"
)

type Config struct {
	Verbose bool       `json:"verbose,omitempty"`
	Quiet   bool       `json:"quiet,omitempty"`
	APIURL  string     `json:"api_url,omitempty"`
	Term    TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("config: invalid api_url %q: %w", c.APIURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: api_url %q is not an absolute url", c.APIURL)
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Printf(msg, args...)
}
