package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/verso-editor/verso/internal/input"
)

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		a.quit = true
		return
	case tcell.KeyCtrlS:
		a.save()
		return
	}

	if kev, ok := translateKey(ev); ok {
		a.eng.ProcessEvent(kev)
		// Terminals deliver no key-release events; synthesize one so the
		// engine returns to idle between presses.
		a.eng.ProcessEvent(input.KeyUp{Key: kev.Key, Rune: kev.Rune, Mods: kev.Mods})
	}
}

// translateKey maps a terminal key event onto the engine's event surface.
// Unmapped keys report false.
func translateKey(ev *tcell.EventKey) (input.KeyDown, bool) {
	mods := translateMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return input.KeyDown{Key: input.KeyRune, Rune: ev.Rune(), Mods: mods}, true
	case tcell.KeyEnter:
		return input.KeyDown{Key: input.KeyEnter, Mods: mods}, true
	case tcell.KeyTab:
		return input.KeyDown{Key: input.KeyTab, Mods: mods}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.KeyDown{Key: input.KeyBackspace, Mods: mods}, true
	case tcell.KeyDelete:
		return input.KeyDown{Key: input.KeyDelete, Mods: mods}, true
	case tcell.KeyLeft:
		return input.KeyDown{Key: input.KeyArrowLeft, Mods: mods}, true
	case tcell.KeyRight:
		return input.KeyDown{Key: input.KeyArrowRight, Mods: mods}, true
	case tcell.KeyUp:
		return input.KeyDown{Key: input.KeyArrowUp, Mods: mods}, true
	case tcell.KeyDown:
		return input.KeyDown{Key: input.KeyArrowDown, Mods: mods}, true
	case tcell.KeyHome:
		return input.KeyDown{Key: input.KeyHome, Mods: mods}, true
	case tcell.KeyEnd:
		return input.KeyDown{Key: input.KeyEnd, Mods: mods}, true
	case tcell.KeyEscape:
		return input.KeyDown{Key: input.KeyEscape, Mods: mods}, true

	// tcell folds control chords into dedicated key codes.
	case tcell.KeyCtrlC:
		return input.KeyDown{Key: input.KeyRune, Rune: 'c', Mods: mods | input.ModCtrl}, true
	case tcell.KeyCtrlX:
		return input.KeyDown{Key: input.KeyRune, Rune: 'x', Mods: mods | input.ModCtrl}, true
	case tcell.KeyCtrlV:
		return input.KeyDown{Key: input.KeyRune, Rune: 'v', Mods: mods | input.ModCtrl}, true
	case tcell.KeyCtrlZ:
		return input.KeyDown{Key: input.KeyRune, Rune: 'z', Mods: mods | input.ModCtrl}, true
	case tcell.KeyCtrlY:
		return input.KeyDown{Key: input.KeyRune, Rune: 'y', Mods: mods | input.ModCtrl}, true
	}
	return input.KeyDown{}, false
}

func translateMods(m tcell.ModMask) input.Modifiers {
	var mods input.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= input.ModMeta
	}
	return mods
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	mods := translateMods(ev.Modifiers())

	if buttons&tcell.WheelUp != 0 {
		a.eng.Wheel(0, 1, mods)
	}
	if buttons&tcell.WheelDown != 0 {
		a.eng.Wheel(0, -1, mods)
	}
	if buttons&tcell.WheelLeft != 0 {
		a.eng.Wheel(1, 0, mods)
	}
	if buttons&tcell.WheelRight != 0 {
		a.eng.Wheel(-1, 0, mods)
	}

	line, col := a.documentPos(x, y)
	switch {
	case buttons&tcell.Button1 != 0 && !a.dragging:
		a.dragging = true
		a.eng.ProcessEvent(input.MouseDown{Pos: input.Point{X: col}, Line: line})
	case buttons&tcell.Button1 != 0:
		a.eng.ProcessEvent(input.MouseMove{Pos: input.Point{X: col}, Line: line})
	case a.dragging:
		a.dragging = false
		a.eng.ProcessEvent(input.Click{})
	}
}

// documentPos converts screen cell coordinates into a document line and a
// layout x position, undoing the current scroll offsets.
func (a *App) documentPos(x, y int) (line int, col float64) {
	line = y - int(a.eng.VerticalWindow().Offset())
	col = float64(x) - a.eng.HorizontalWindow().Offset()
	return line, col
}
