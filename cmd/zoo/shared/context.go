// Package shared holds the context passed to all CLI commands.
package shared

import "github.com/go-ports/zoo/internal/config"

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// Home overrides the settings directory.
	// When empty, resolution falls through to ZOO_HOME env var → ~/.zoo.
	Home string
	// Verbose enables debug logging on stderr.
	Verbose bool

	// Session flags.
	Seed       bool
	IgnoreCase bool
	NoColor    bool
}

// ResolveHome returns the settings directory and where it came from
// ("flag", "env" or "default").
func (c *Context) ResolveHome() (path, source string) {
	if c.Home != "" {
		return c.Home, "flag"
	}
	return config.ResolveHome()
}
