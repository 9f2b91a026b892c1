package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/forktools/forkq/config"
	"github.com/forktools/forkq/forge/github"
	"github.com/forktools/forkq/model"
	"github.com/forktools/forkq/runner"
	"github.com/forktools/forkq/vcs/gitcli"
)

// Version is overridden by go build -X
var Version string

func main() {
	if err := run(os.Args, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string, termio *config.TerminalIO) error {
	cfg := config.NewWithTerminalIO(nil, termio)

	var help bool
	var version bool
	var cfgFile string
	var printConfig bool
	flags := pflag.NewFlagSet("forkq", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "GitHub API base `url`")
	flags.BoolVar(&printConfig, "print-config", false, "Print effective configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()[1:]

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}

	forkqYAML, err := readForkqYAML(cfgFile)
	if err != nil {
		return err
	}
	if forkqYAML != nil {
		apiURL := cfg.APIURL
		if err := mergo.Merge(&cfg, forkqYAML, mergo.WithOverride); err != nil {
			return err
		}
		// flags beat the config file
		if flags.Lookup("api-url").Changed {
			cfg.APIURL = apiURL
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
		return nil
	}

	if termio == nil && !isatty.IsTerminal(os.Stdout.Fd()) {
		// piped output stays down to the report itself
		cfg.Quiet = true
	}
	// done setting up config

	if len(args) != 3 {
		usage(cfg, flags)
		return fmt.Errorf("expected <owner> <repository> <integration_branch>, got %d argument(s)", len(args))
	}
	repo := model.Repository{Owner: args[0], Name: args[1]}
	integrationBranch := args[2]

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	git := gitcli.New(cfg, wd)
	api, err := github.New(cfg)
	if err != nil {
		return err
	}
	rnr := runner.New(cfg, git, api)
	return rnr.Run(context.Background(), repo, integrationBranch)
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [flags] <owner> <repository> <integration_branch>

List branches in GitHub forks that have not been merged into the given
local branch. Run it from inside the local clone.

FLAGS
%s
EXAMPLES

# list fork branches not yet merged into the local main branch
$ forkq golang go main

# same, against a local release branch, with request logging
$ forkq -v golang go release-branch.go1.25
`, os.Args[0], flags.FlagUsages())
}

func readForkqYAML(p string) (*config.Config, error) {
	if p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, "forkq.yaml")
		b, err := os.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				wd, _ = filepath.Split(filepath.Clean(wd))
				if wd == "/" {
					break
				}
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}
