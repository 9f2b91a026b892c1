// Package github implements forge.Interface using the GitHub REST API via
// the go-github library.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"

	"github.com/forktools/forkq/config"
	"github.com/forktools/forkq/forge"
	"github.com/forktools/forkq/model"
)

var _ forge.Interface = (*Client)(nil)

// Unauthenticated clients hit the hourly rate limit long before pagination
// matters, so only the first page is requested.
const perPage = 100

// Client implements forge.Interface using the go-github library. Requests
// are unauthenticated.
type Client struct {
	cfg config.Config
	gh  *gh.Client
}

func New(cfg config.Config) (*Client, error) {
	client := gh.NewClient(nil)
	if cfg.APIURL != "" {
		u, err := url.Parse(cfg.APIURL)
		if err != nil {
			return nil, fmt.Errorf("github: invalid api url %q: %w", cfg.APIURL, err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		client.BaseURL = u
	}
	return &Client{
		cfg: cfg,
		gh:  client,
	}, nil
}

func (c *Client) Forks(ctx context.Context, repo model.Repository) ([]model.Repository, error) {
	opts := &gh.RepositoryListForksOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	c.cfg.Debugf("GET /repos/%s/forks", repo)
	forks, _, err := c.gh.Repositories.ListForks(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("github: listing forks of %s: %w", repo, err)
	}

	res := make([]model.Repository, 0, len(forks))
	for _, fork := range forks {
		res = append(res, model.Repository{
			Owner: fork.GetOwner().GetLogin(),
			Name:  fork.GetName(),
		})
	}
	return res, nil
}

func (c *Client) Branches(ctx context.Context, repo model.Repository) ([]model.Branch, error) {
	opts := &gh.BranchListOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	c.cfg.Debugf("GET /repos/%s/branches", repo)
	branches, _, err := c.gh.Repositories.ListBranches(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("github: listing branches of %s: %w", repo, err)
	}

	res := make([]model.Branch, 0, len(branches))
	for _, branch := range branches {
		res = append(res, model.Branch{
			Name:   branch.GetName(),
			Commit: branch.GetCommit().GetSHA(),
		})
	}
	return res, nil
}
