package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/lights/gf2"
	"github.com/katalvlaran/lights/machine"
)

// Environment fallbacks for flags left unset.
const (
	envInput   = "LIGHTS_INPUT"
	envPolicy  = "LIGHTS_POLICY"
	envMaxFree = "LIGHTS_MAX_FREE"
)

// config holds the resolved command-line configuration.
type config struct {
	input     string // path, "-" for stdin
	policy    machine.Policy
	wide      bool
	decompose bool
	maxFree   int
	verbose   bool
}

// loadConfig parses args (without the program name); unset flags fall back
// to the environment, then to defaults.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	fs := flag.NewFlagSet("lights", flag.ContinueOnError)
	input := fs.String("input", "", "record file, '-' for stdin (env "+envInput+")")
	policy := fs.String("policy", "", "unsolvable records: strict|skip (env "+envPolicy+")")
	wide := fs.Bool("wide", false, "use bitset rows (no 64-button limit)")
	decompose := fs.Bool("decompose", false, "solve independent button blocks separately")
	maxFree := fs.Int("max-free", -1, "free-variable enumeration ceiling (env "+envMaxFree+")")
	verbose := fs.Bool("v", false, "log every record")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		input:     *input,
		wide:      *wide,
		decompose: *decompose,
		maxFree:   *maxFree,
		verbose:   *verbose,
	}
	if cfg.input == "" {
		cfg.input = getenv(envInput)
	}
	if cfg.input == "" {
		cfg.input = "-"
	}

	if *policy == "" {
		*policy = getenv(envPolicy)
	}
	p, err := machine.ParsePolicy(*policy)
	if err != nil {
		return config{}, err
	}
	cfg.policy = p

	if cfg.maxFree < 0 {
		cfg.maxFree = gf2.DefaultMaxFreeVars
		if v := getenv(envMaxFree); v != "" {
			if cfg.maxFree, err = strconv.Atoi(v); err != nil {
				return config{}, fmt.Errorf("%s: %w", envMaxFree, err)
			}
		}
	}
	if cfg.maxFree < 0 || cfg.maxFree > gf2.MaxFreeVarsLimit {
		return config{}, fmt.Errorf("max-free must be in [0, %d], got %d", gf2.MaxFreeVarsLimit, cfg.maxFree)
	}

	return cfg, nil
}

// solverOptions maps the configuration onto gf2 options.
func (c config) solverOptions() []gf2.Option {
	opts := []gf2.Option{gf2.WithMaxFreeVars(c.maxFree)}
	if c.wide {
		opts = append(opts, gf2.WithWideMasks())
	}
	if c.decompose {
		opts = append(opts, gf2.WithDecompose())
	}

	return opts
}

// open returns the configured input and a closer.
func (c config) open() (*os.File, func() error, error) {
	if c.input == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(c.input)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
