package engine

import (
	"github.com/verso-editor/verso/internal/clipboard"
	"github.com/verso-editor/verso/internal/config"
	"github.com/verso-editor/verso/internal/measure"
)

// Option configures an Engine.
type Option func(*Engine)

// WithClipboard sets the clipboard collaborator. The default is an
// in-process clipboard.
func WithClipboard(c clipboard.Clipboard) Option {
	return func(e *Engine) {
		e.clip = c
	}
}

// WithMeasurer sets the text measurement collaborator.
func WithMeasurer(m measure.Measurer) Option {
	return func(e *Engine) {
		e.meas = m
	}
}

// WithConfig sets the configuration. The default is config.Default.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}
