// Package model contains abstract data models.
package model

// Repository identifies a repository hosted under an owner.
type Repository struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// Branch identifies a branch and its head commit.
type Branch struct {
	Name   string `json:"name"`
	Commit string `json:"commit"`
}

func (b Branch) ShortCommit() string {
	if len(b.Commit) < 8 {
		return b.Commit
	}
	return b.Commit[:8]
}
