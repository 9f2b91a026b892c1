package forge

import (
	"context"

	"github.com/forktools/forkq/model"
)

type Mock struct {
	forks    map[string][]model.Repository
	branches map[string][]model.Branch
}

func NewMock() *Mock {
	return &Mock{
		forks:    make(map[string][]model.Repository),
		branches: make(map[string][]model.Branch),
	}
}

func (m *Mock) SetForks(repo model.Repository, forks ...model.Repository) *Mock {
	m.forks[repo.String()] = forks
	return m
}

func (m *Mock) SetBranches(repo model.Repository, branches ...model.Branch) *Mock {
	m.branches[repo.String()] = branches
	return m
}

func (m *Mock) Forks(ctx context.Context, repo model.Repository) ([]model.Repository, error) {
	return m.forks[repo.String()], nil
}

func (m *Mock) Branches(ctx context.Context, repo model.Repository) ([]model.Branch, error) {
	return m.branches[repo.String()], nil
}
