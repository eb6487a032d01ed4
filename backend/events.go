package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tuikit/dispatch"
)

// translateKey converts one tcell key event into ordered dispatch
// candidates: bound label, then text, then the raw key.
func (t *Terminal) translateKey(ev *tcell.EventKey) []dispatch.Event {
	var out []dispatch.Event

	if label, ok := t.labels[ev.Name()]; ok {
		out = append(out, dispatch.Label{Name: label, Active: true})
	}

	mods := convertMods(ev.Modifiers())
	key := dispatch.Key{Sym: dispatch.SymNone, Mods: mods}

	switch ev.Key() {
	case tcell.KeyEnter:
		key.Sym = dispatch.SymEnter
	case tcell.KeyEsc:
		key.Sym = dispatch.SymEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		key.Sym = dispatch.SymBackspace
		key.Mods &^= dispatch.ModCtrl // terminals report BS as Ctrl+H
	case tcell.KeyDelete:
		key.Sym = dispatch.SymDelete
	case tcell.KeyTab:
		key.Sym = dispatch.SymTab
	case tcell.KeyLeft:
		key.Sym = dispatch.SymLeft
	case tcell.KeyRight:
		key.Sym = dispatch.SymRight
	case tcell.KeyUp:
		key.Sym = dispatch.SymUp
	case tcell.KeyDown:
		key.Sym = dispatch.SymDown
	case tcell.KeyHome:
		key.Sym = dispatch.SymHome
	case tcell.KeyEnd:
		key.Sym = dispatch.SymEnd
	case tcell.KeyPgUp:
		key.Sym = dispatch.SymPageUp
	case tcell.KeyPgDn:
		key.Sym = dispatch.SymPageDown
	case tcell.KeyRune:
		key.Sym = dispatch.SymRune
		key.Rune = ev.Rune()
		// Unmodified runes are text input first, raw key second.
		if mods&(dispatch.ModCtrl|dispatch.ModAlt|dispatch.ModMeta) == 0 {
			out = append(out, dispatch.Text{Runes: []rune{ev.Rune()}})
		}
	default:
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			key.Sym = dispatch.SymRune
			key.Rune = 'a' + rune(k-tcell.KeyCtrlA)
			key.Mods |= dispatch.ModCtrl
		}
	}

	if key.Sym != dispatch.SymNone {
		out = append(out, key)
	}
	return out
}

// translateMouse derives press and release transitions from tcell's
// absolute button mask.
func (t *Terminal) translateMouse(ev *tcell.EventMouse) []dispatch.Event {
	x, y := ev.Position()
	mods := convertMods(ev.Modifiers())
	buttons := ev.Buttons()

	var out []dispatch.Event
	for _, m := range []struct {
		mask tcell.ButtonMask
		btn  dispatch.Button
	}{
		{tcell.Button1, dispatch.ButtonLeft},
		{tcell.Button2, dispatch.ButtonMiddle},
		{tcell.Button3, dispatch.ButtonRight},
	} {
		was := t.prevButtons&m.mask != 0
		is := buttons&m.mask != 0
		if was == is {
			continue
		}
		out = append(out, dispatch.MouseButton{
			X: x, Y: y, Button: m.btn, Active: is, Mods: mods,
		})
	}

	if buttons&tcell.WheelUp != 0 {
		out = append(out, dispatch.MouseButton{X: x, Y: y, Button: dispatch.ButtonScrollUp, Active: true, Mods: mods})
	}
	if buttons&tcell.WheelDown != 0 {
		out = append(out, dispatch.MouseButton{X: x, Y: y, Button: dispatch.ButtonScrollDown, Active: true, Mods: mods})
	}

	t.prevButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown)
	return out
}

func convertMods(m tcell.ModMask) dispatch.Modifier {
	var out dispatch.Modifier
	if m&tcell.ModShift != 0 {
		out |= dispatch.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= dispatch.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= dispatch.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= dispatch.ModMeta
	}
	return out
}
