// Package view renders the HTML templates of the service.
//
// Templates are Liquid documents using {{field}} placeholders. String
// bindings are HTML-escaped before rendering, so a double-brace placeholder
// escapes its value the way a mustache template does.
package view

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"path"
	"strings"

	"github.com/osteele/liquid"
)

// DefaultExt is the template file extension used when none is configured.
const DefaultExt = "mustache"

// Content supplies the bindings of one render.
type Content interface {
	Bindings() map[string]any
}

// TemplateContext is the content of the greeting page.
type TemplateContext struct {
	Title      string
	NumberData int
}

// Bindings implements Content.
func (c TemplateContext) Bindings() map[string]any {
	return map[string]any{
		"title":       c.Title,
		"number_data": c.NumberData,
	}
}

// Renderer renders a named template from a set.
type Renderer interface {
	Render(name string, content Content) (string, error)
}

// Set is an immutable collection of parsed templates keyed by
// slash-separated path relative to the template root, e.g. "hangman.mustache".
type Set struct {
	templates map[string]*liquid.Template
}

// LoadSet parses every file with the given extension under fsys.
func LoadSet(fsys fs.FS, ext string) (*Set, error) {
	if ext == "" {
		ext = DefaultExt
	}
	suffix := "." + strings.TrimPrefix(ext, ".")

	engine := liquid.NewEngine()
	set := &Set{templates: make(map[string]*liquid.Template)}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Join(ErrTemplateDir, err)
		}
		if d.IsDir() || path.Ext(p) != suffix {
			return nil
		}

		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return errors.Join(ErrTemplateDir, err)
		}
		tpl, perr := engine.ParseTemplate(src)
		if perr != nil {
			return errors.Join(ErrTemplateParse, fmt.Errorf("%s: %w", p, perr))
		}
		set.templates[p] = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}

// Names returns the keys of all loaded templates.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	return names
}

// Render renders the template registered under name.
func (s *Set) Render(name string, content Content) (string, error) {
	tpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	out, rerr := tpl.RenderString(escapeBindings(content.Bindings()))
	if rerr != nil {
		return "", errors.Join(ErrRenderFailed, rerr)
	}
	return out, nil
}

func escapeBindings(b map[string]any) liquid.Bindings {
	out := make(liquid.Bindings, len(b))
	for k, v := range b {
		if s, ok := v.(string); ok {
			v = html.EscapeString(s)
		}
		out[k] = v
	}
	return out
}
