// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/forktools/forkq/config"
	"github.com/forktools/forkq/vcs"
)

var _ vcs.Interface = (*Git)(nil)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

func (g *Git) ResolveRef(ctx context.Context, ref string) (string, error) {
	b, err := g.call(ctx, []string{"rev-parse", "--verify", "--quiet", ref + "^{commit}"})
	if err != nil {
		// under --verify --quiet an unresolvable ref exits 1 without
		// output; anything else (not a repository, broken git) is a real
		// failure
		var xerr *exec.ExitError
		if errors.As(err, &xerr) && xerr.ExitCode() == 1 {
			return "", vcs.NotFoundError{Ref: ref}
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (g *Git) ReadAncestors(ctx context.Context, commit string) ([]string, error) {
	b, err := g.call(ctx, []string{"rev-list", commit})
	if err != nil {
		return nil, err
	}

	var commits []string
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		if s := scanner.Text(); s != "" {
			commits = append(commits, s)
		}
	}
	return commits, scanner.Err()
}
