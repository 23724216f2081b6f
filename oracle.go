package main

import (
	"context"
	"os/exec"
	"time"
)

// CommandOracle answers whether a token names a runnable program in the host
// environment
type CommandOracle interface {
	Exists(name string) bool
}

// SystemOracle resolves commands against the host shell via `command -v`
type SystemOracle struct {
	timeout time.Duration
}

// NewSystemOracle creates an oracle with a bounded per-lookup timeout
func NewSystemOracle(timeout time.Duration) *SystemOracle {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &SystemOracle{timeout: timeout}
}

// Exists checks whether the shell can resolve the given name. Lookup failures
// and timeouts are treated as "does not exist" so an unreachable oracle never
// lets an unverified token through.
func (o *SystemOracle) Exists(name string) bool {
	if name == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", `command -v -- "$1" >/dev/null 2>&1`, "sh", name)
	return cmd.Run() == nil
}

// CommandCache memoizes oracle lookups for the lifetime of a run so each
// distinct token incurs at most one round trip. It is an explicit state
// object, created per run, so independent runs and tests do not interfere.
type CommandCache struct {
	oracle  CommandOracle
	results map[string]bool
	lookups int
}

// NewCommandCache wraps an oracle with a per-run result cache
func NewCommandCache(oracle CommandOracle) *CommandCache {
	return &CommandCache{
		oracle:  oracle,
		results: make(map[string]bool),
	}
}

// Exists returns the cached answer for a token, consulting the underlying
// oracle on first sight
func (c *CommandCache) Exists(name string) bool {
	if result, ok := c.results[name]; ok {
		return result
	}

	c.lookups++
	result := c.oracle.Exists(name)
	c.results[name] = result
	return result
}

// Lookups returns how many distinct tokens reached the underlying oracle
func (c *CommandCache) Lookups() int {
	return c.lookups
}
