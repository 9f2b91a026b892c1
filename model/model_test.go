package model

import "testing"

func TestRepositoryString(t *testing.T) {
	repo := Repository{Owner: "alice", Name: "repo"}
	if s := repo.String(); s != "alice/repo" {
		t.Fatalf("expected %q, got %q", "alice/repo", s)
	}
}

func TestBranchShortCommit(t *testing.T) {
	b := Branch{Name: "feature", Commit: "0123456789abcdef0123456789abcdef01234567"}
	if s := b.ShortCommit(); s != "01234567" {
		t.Fatalf("expected %q, got %q", "01234567", s)
	}
	b = Branch{Name: "stub", Commit: "abc123"}
	if s := b.ShortCommit(); s != "abc123" {
		t.Fatalf("expected %q, got %q", "abc123", s)
	}
}
