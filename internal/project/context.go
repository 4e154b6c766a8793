// Package project defines the read-only project context the resolver
// probes: a display name, the project root directory, and lookups for
// files, environment variables, and declared build properties. The
// embedding build tool provides the real values; nothing here is ever
// mutated by the resolver.
package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotExist is returned by ReadFile when the named file is absent.
// Callers distinguish absence (no signal) from read failures (warnings)
// with errors.Is.
var ErrNotExist = fs.ErrNotExist

// Context is the collaborator interface consumed by detection and
// default resolution.
type Context interface {
	// DisplayName is the name the build tool declares for the project.
	// May be a generic placeholder such as "root".
	DisplayName() string

	// RootDir is the project root directory.
	RootDir() string

	// ModulePath lists module names from the build root to this project,
	// empty for a single-module build.
	ModulePath() []string

	// ReadFile returns the contents of a file addressed relative to the
	// project root. Absent files return ErrNotExist.
	ReadFile(name string) ([]byte, error)

	// Env looks up an environment variable.
	Env(name string) (string, bool)

	// Property looks up a declared build property.
	Property(name string) (string, bool)
}

// DirContext is a directory-backed Context implementation.
type DirContext struct {
	name       string
	root       string
	modulePath []string
	props      map[string]string
	lookupEnv  func(string) (string, bool)
}

// Option customizes a DirContext.
type Option func(*DirContext)

// WithDisplayName sets the declared project name. Defaults to the root
// directory's base name.
func WithDisplayName(name string) Option {
	return func(c *DirContext) { c.name = name }
}

// WithModulePath sets the module names from build root to leaf.
func WithModulePath(path ...string) Option {
	return func(c *DirContext) { c.modulePath = append([]string(nil), path...) }
}

// WithProperties sets the declared build properties.
func WithProperties(props map[string]string) Option {
	return func(c *DirContext) { c.props = props }
}

// WithEnvLookup replaces the environment lookup, mainly for tests.
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(c *DirContext) { c.lookupEnv = lookup }
}

// NewDirContext creates a Context rooted at the given directory.
func NewDirContext(root string, opts ...Option) *DirContext {
	c := &DirContext{
		root:      root,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.name == "" {
		c.name = filepath.Base(root)
	}
	return c
}

func (c *DirContext) DisplayName() string { return c.name }

func (c *DirContext) RootDir() string { return c.root }

func (c *DirContext) ModulePath() []string { return c.modulePath }

func (c *DirContext) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(c.root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

func (c *DirContext) Env(name string) (string, bool) {
	return c.lookupEnv(name)
}

func (c *DirContext) Property(name string) (string, bool) {
	v, ok := c.props[name]
	return v, ok
}
