// Package app runs the terminal front end: it owns the tcell screen,
// translates terminal events into engine input, and draws the engine's
// render frames.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/verso-editor/verso/internal/clipboard"
	"github.com/verso-editor/verso/internal/config"
	"github.com/verso-editor/verso/internal/engine"
	"github.com/verso-editor/verso/internal/measure"
	"github.com/verso-editor/verso/internal/syntax"
)

// Options configures a new App.
type Options struct {
	// ConfigPath overrides the standard config file location.
	ConfigPath string

	// File is the file to open; empty opens a scratch document.
	File string
}

// App wires the engine to a terminal.
type App struct {
	opts   Options
	cfg    *config.Config
	doc    *engine.Document
	eng    *engine.Engine
	theme  *syntax.Theme
	screen tcell.Screen

	status   string
	dragging bool
	quit     bool
}

// New loads configuration, opens the requested document and builds the
// engine.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	var doc *engine.Document
	switch {
	case opts.File == "":
		doc = engine.NewDocument("", "")
	default:
		doc, err = engine.Open(opts.File)
		if errors.Is(err, os.ErrNotExist) {
			doc = engine.NewDocument("", opts.File)
			err = nil
		}
		if err != nil {
			return nil, err
		}
	}

	a := &App{opts: opts, cfg: cfg, doc: doc, theme: syntax.DefaultTheme()}
	a.eng = engine.New(doc,
		engine.WithConfig(terminalConfig(cfg)),
		engine.WithMeasurer(cellMeasurer()),
		engine.WithClipboard(clipboard.NewSystem()),
	)
	return a, nil
}

// terminalConfig maps the user config onto terminal cell units: one cell
// per column, one row per line.
func terminalConfig(cfg *config.Config) *config.Config {
	c := *cfg
	c.Editor.FontSize = 1
	c.Editor.LineHeight = 1
	return &c
}

func cellMeasurer() measure.Measurer {
	return &measure.Monospace{Aspect: 1, LineHeight: 1}
}

// Engine returns the running engine, mainly for tests.
func (a *App) Engine() *engine.Engine {
	return a.eng
}

// Run creates the real terminal screen and enters the event loop.
func (a *App) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("app: create screen: %w", err)
	}
	return a.RunWith(s)
}

// RunWith enters the event loop on the given screen. It returns when the
// user quits.
func (a *App) RunWith(s tcell.Screen) error {
	if err := s.Init(); err != nil {
		return fmt.Errorf("app: init screen: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()

	a.screen = s
	w, h := s.Size()
	a.eng.SetViewport(float64(w), float64(h-1))

	var watcher *config.Watcher
	if a.opts.ConfigPath != "" {
		watcher, _ = config.Watch(a.opts.ConfigPath, func(cfg *config.Config) {
			s.PostEvent(tcell.NewEventInterrupt(cfg))
		})
	}
	if watcher != nil {
		defer watcher.Close()
	}

	for !a.quit {
		a.draw()
		a.handle(s.PollEvent())
	}
	return nil
}

// handle dispatches one terminal event.
func (a *App) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.eng.SetViewport(float64(w), float64(h-1))
		a.screen.Sync()

	case *tcell.EventKey:
		a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventInterrupt:
		if cfg, ok := ev.Data().(*config.Config); ok {
			a.cfg = cfg
			a.eng.SetConfig(terminalConfig(cfg))
			a.status = "config reloaded"
		}
	}
}

func (a *App) save() {
	if err := a.doc.Save(); err != nil {
		a.status = err.Error()
		return
	}
	a.status = "saved " + a.doc.Path()
}
