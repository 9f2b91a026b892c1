package vcs

import "context"

type Mock struct {
	refs      map[string]string
	ancestors map[string][]string
}

func NewMock() *Mock {
	return &Mock{
		refs:      make(map[string]string),
		ancestors: make(map[string][]string),
	}
}

func (m *Mock) SetRef(ref, commit string) *Mock {
	m.refs[ref] = commit
	return m
}

// SetAncestors sets the ancestor chain for a commit. The chain should start
// with the commit itself, matching git rev-list.
func (m *Mock) SetAncestors(commit string, ancestors ...string) *Mock {
	m.ancestors[commit] = ancestors
	return m
}

func (m *Mock) ResolveRef(ctx context.Context, ref string) (string, error) {
	if commit, ok := m.refs[ref]; ok {
		return commit, nil
	}
	if _, ok := m.ancestors[ref]; ok {
		return ref, nil
	}
	return "", NotFoundError{Ref: ref}
}

func (m *Mock) ReadAncestors(ctx context.Context, commit string) ([]string, error) {
	chain, ok := m.ancestors[commit]
	if !ok {
		return nil, NotFoundError{Ref: commit}
	}
	return chain, nil
}
