// Package forkq lists branches in GitHub forks of a repository that have
// not been merged into a local integration branch.
//
// Related packages: config, forge, forge/github, model, runner, vcs, vcs/gitcli
package forkq

import "github.com/forktools/forkq/config"

// Config holds the configuration variables for forkq. This struct is
// intended for command-line use.
//
// See "go doc github.com/forktools/forkq/config Config" for more information.
type Config = config.Config
