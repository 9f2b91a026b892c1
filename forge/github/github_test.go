package github_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forktools/forkq/config"
	ghforge "github.com/forktools/forkq/forge/github"
	"github.com/forktools/forkq/model"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) *ghforge.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.New(&config.Config{Quiet: true, APIURL: server.URL + "/"})
	client, err := ghforge.New(cfg)
	require.NoError(t, err)
	return client
}

type ownerJSON struct {
	Login string `json:"login"`
}

type forkJSON struct {
	Name  string    `json:"name"`
	Owner ownerJSON `json:"owner"`
}

type commitJSON struct {
	SHA string `json:"sha"`
}

type branchJSON struct {
	Name   string     `json:"name"`
	Commit commitJSON `json:"commit"`
}

func TestForks(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/golang/go/forks", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]forkJSON{
			{Name: "go", Owner: ownerJSON{Login: "alice"}},
			{Name: "notgo", Owner: ownerJSON{Login: "bob"}},
		})
	})

	client := newTestClient(t, handler)
	forks, err := client.Forks(context.Background(), model.Repository{Owner: "golang", Name: "go"})
	require.NoError(t, err)
	require.Len(t, forks, 2)
	assert.Equal(t, model.Repository{Owner: "alice", Name: "go"}, forks[0])
	assert.Equal(t, model.Repository{Owner: "bob", Name: "notgo"}, forks[1])
}

func TestBranches(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/alice/go/branches", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]branchJSON{
			{Name: "main", Commit: commitJSON{SHA: "aaaa1111"}},
			{Name: "feature", Commit: commitJSON{SHA: "bbbb2222"}},
		})
	})

	client := newTestClient(t, handler)
	branches, err := client.Branches(context.Background(), model.Repository{Owner: "alice", Name: "go"})
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, model.Branch{Name: "main", Commit: "aaaa1111"}, branches[0])
	assert.Equal(t, model.Branch{Name: "feature", Commit: "bbbb2222"}, branches[1])
}

func TestForksError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})

	client := newTestClient(t, handler)
	_, err := client.Forks(context.Background(), model.Repository{Owner: "golang", Name: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing forks of golang/nope")
}

func TestNewBadAPIURL(t *testing.T) {
	cfg := config.New(&config.Config{APIURL: "://bad"})
	_, err := ghforge.New(cfg)
	require.Error(t, err)
}
