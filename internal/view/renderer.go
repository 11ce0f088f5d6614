package view

import (
	"context"
	"io/fs"
	"sync"
)

// Reloading reads and parses the template directory on every render,
// so template edits show up without a restart.
type Reloading struct {
	fsys fs.FS
	ext  string
}

// NewReloading returns a renderer that loads fsys on each call.
func NewReloading(fsys fs.FS, ext string) *Reloading {
	return &Reloading{fsys: fsys, ext: ext}
}

// Render implements Renderer.
func (r *Reloading) Render(name string, content Content) (string, error) {
	set, err := LoadSet(r.fsys, r.ext)
	if err != nil {
		return "", err
	}
	return set.Render(name, content)
}

// Cached loads the template directory once per process.
// A failed load is kept and returned by every later call.
type Cached struct {
	fsys fs.FS
	ext  string

	once sync.Once
	set  *Set
	err  error
}

// NewCached returns a renderer that loads fsys on first use.
func NewCached(fsys fs.FS, ext string) *Cached {
	return &Cached{fsys: fsys, ext: ext}
}

func (c *Cached) load() (*Set, error) {
	c.once.Do(func() {
		c.set, c.err = LoadSet(c.fsys, c.ext)
	})
	return c.set, c.err
}

// Warm forces the one-time load. Use it as a startup hook.
func (c *Cached) Warm(context.Context) error {
	_, err := c.load()
	return err
}

// Render implements Renderer.
func (c *Cached) Render(name string, content Content) (string, error) {
	set, err := c.load()
	if err != nil {
		return "", err
	}
	return set.Render(name, content)
}
