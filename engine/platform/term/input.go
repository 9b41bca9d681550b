package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hubastard/californium/engine/core"
)

// translate turns one tcell event into core events. Terminals report key
// presses only, so each press is followed by its release.
func (w *Window) translate(ev tcell.Event) []core.Event {
	switch e := ev.(type) {
	case *tcell.EventResize:
		cols, rows := e.Size()
		return []core.Event{core.EventResize{W: cols, H: rows}}

	case *tcell.EventKey:
		key, mods := translateKey(e)
		out := []core.Event{core.EventKey{Key: key, Down: true, Mods: mods}}
		if e.Key() == tcell.KeyRune {
			out = append(out, core.EventText{Rune: e.Rune()})
		}
		return append(out, core.EventKey{Key: key, Down: false, Mods: mods})

	case *tcell.EventMouse:
		return w.translateMouse(e)
	}
	return nil
}

func (w *Window) translateMouse(e *tcell.EventMouse) []core.Event {
	x, y := e.Position()
	fx, fy := float64(x), float64(y)
	mask := e.Buttons()

	var out []core.Event
	if x != w.mx || y != w.my {
		w.mx, w.my = x, y
		out = append(out, core.EventMouseMove{X: fx, Y: fy})
	}

	switch {
	case mask&tcell.WheelUp != 0:
		out = append(out, core.EventMouseWheel{Delta: 1, X: fx, Y: fy})
	case mask&tcell.WheelDown != 0:
		out = append(out, core.EventMouseWheel{Delta: -1, X: fx, Y: fy})
	}

	for _, b := range []struct {
		mask tcell.ButtonMask
		btn  core.MouseButton
	}{
		{tcell.Button1, core.ButtonLeft},
		{tcell.Button2, core.ButtonRight},
		{tcell.Button3, core.ButtonMiddle},
	} {
		was, is := w.buttons&b.mask != 0, mask&b.mask != 0
		if was != is {
			out = append(out, core.EventMouseButton{Button: b.btn, Down: is, X: fx, Y: fy})
		}
	}
	w.buttons = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	return out
}

func translateKey(e *tcell.EventKey) (core.Key, core.Mod) {
	mods := translateMods(e.Modifiers())
	k := e.Key()
	switch k {
	case tcell.KeyRune:
		r := e.Rune()
		if r >= 'A' && r <= 'Z' {
			mods |= core.ModShift
		}
		return core.KeyForRune(r), mods
	case tcell.KeyEscape:
		return core.KeyEscape, mods
	case tcell.KeyEnter:
		return core.KeyEnter, mods
	case tcell.KeyTab:
		return core.KeyTab, mods
	case tcell.KeyBacktab:
		return core.KeyTab, mods | core.ModShift
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyBackspace, mods
	case tcell.KeyLeft:
		return core.KeyLeft, mods
	case tcell.KeyRight:
		return core.KeyRight, mods
	case tcell.KeyUp:
		return core.KeyUp, mods
	case tcell.KeyDown:
		return core.KeyDown, mods
	case tcell.KeyInsert:
		return core.KeyInsert, mods
	case tcell.KeyDelete:
		return core.KeyDelete, mods
	case tcell.KeyHome:
		return core.KeyHome, mods
	case tcell.KeyEnd:
		return core.KeyEnd, mods
	case tcell.KeyPgUp:
		return core.KeyPageUp, mods
	case tcell.KeyPgDn:
		return core.KeyPageDown, mods
	}
	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return core.KeyF1 + core.Key(k-tcell.KeyF1), mods
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return core.KeyA + core.Key(k-tcell.KeyCtrlA), mods | core.ModCtrl
	}
	return core.KeyUnknown, mods
}

func translateMods(m tcell.ModMask) core.Mod {
	var out core.Mod
	if m&tcell.ModShift != 0 {
		out |= core.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= core.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= core.ModSuper
	}
	return out
}
