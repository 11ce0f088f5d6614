package view

import "errors"

var (
	ErrTemplateDir      = errors.New("view: template directory is not readable")
	ErrTemplateNotFound = errors.New("view: template not found")
	ErrTemplateParse    = errors.New("view: failed to parse template")
	ErrRenderFailed     = errors.New("view: failed to render template")
)
