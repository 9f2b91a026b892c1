// Package runner manages command-line execution
package runner

import (
	"context"
	"fmt"

	"github.com/forktools/forkq/config"
	"github.com/forktools/forkq/forge"
	"github.com/forktools/forkq/model"
	"github.com/forktools/forkq/vcs"
)

// Runner checks branches in forks of a repository against the ancestry of a
// local integration branch.
type Runner struct {
	cfg   config.Config
	vcs   vcs.Interface
	forge forge.Interface
}

func New(cfg config.Config, vcs vcs.Interface, forge forge.Interface) *Runner {
	return &Runner{
		cfg:   cfg,
		vcs:   vcs,
		forge: forge,
	}
}

// Run prints the branches in forks of repo whose head commits are not
// reachable from the local integration branch, grouped by fork in the order
// the API returned them.
func (r *Runner) Run(ctx context.Context, repo model.Repository, integrationBranch string) error {
	head, err := r.vcs.ResolveRef(ctx, integrationBranch)
	if err != nil {
		return err
	}
	r.cfg.Debugf("integration branch %q is at %s", integrationBranch, head)

	// One walk over the local graph serves every branch check. The head is
	// reachable from itself, so a fork branch pointing at it counts as
	// merged. A commit the local repository has never seen is a plain miss,
	// not an error.
	ancestors, err := r.vcs.ReadAncestors(ctx, head)
	if err != nil {
		return err
	}
	merged := make(map[string]struct{}, len(ancestors))
	for _, commit := range ancestors {
		merged[commit] = struct{}{}
	}
	r.cfg.Debugf("%d commits reachable from %q", len(merged), integrationBranch)

	forks, err := r.forge.Forks(ctx, repo)
	if err != nil {
		return err
	}
	r.cfg.Debugf("%s has %d forks", repo, len(forks))

	reported := make(map[string]struct{})
	total := 0
	for _, fork := range forks {
		branches, err := r.forge.Branches(ctx, fork)
		if err != nil {
			return err
		}

		var unmerged []model.Branch
		for _, branch := range branches {
			if _, ok := merged[branch.Commit]; ok {
				r.cfg.Debugf("  %s %s: merged", branch.ShortCommit(), branch.Name)
				continue
			}
			// the same commit can back branches in more than one fork;
			// report the first fork's sighting only
			if _, ok := reported[branch.Commit]; ok {
				r.cfg.Debugf("  %s %s: already reported", branch.ShortCommit(), branch.Name)
				continue
			}
			unmerged = append(unmerged, branch)
		}
		// suppression applies to later forks, not within this one: two
		// branch names on the same commit here both print
		for _, branch := range unmerged {
			reported[branch.Commit] = struct{}{}
		}

		if len(unmerged) == 0 {
			continue
		}
		total += len(unmerged)
		fmt.Fprintf(r.cfg.Term.Stdout, "%s:\n", fork)
		for _, branch := range unmerged {
			fmt.Fprintf(r.cfg.Term.Stdout, "  %s\n", branch.Name)
		}
	}

	if total == 0 {
		r.cfg.Printf("no unmerged branches in %d fork(s) of %s", len(forks), repo)
	}
	return nil
}
