// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	// ResolveRef resolves a ref name to a full commit hash. Returns
	// NotFoundError when the ref doesn't name a commit.
	ResolveRef(ctx context.Context, ref string) (string, error)
	// ReadAncestors returns commit followed by its transitive ancestors, in
	// reverse chronological order.
	ReadAncestors(ctx context.Context, commit string) ([]string, error)
}
