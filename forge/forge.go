// Package forge abstracts code hosting APIs. Currently just GitHub.
package forge

import (
	"context"

	"github.com/forktools/forkq/model"
)

type Interface interface {
	// Forks returns the repositories forked from repo.
	Forks(ctx context.Context, repo model.Repository) ([]model.Repository, error)
	// Branches returns the branches of repo with their head commits.
	Branches(ctx context.Context, repo model.Repository) ([]model.Branch, error)
}
