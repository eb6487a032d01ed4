package dispatch

// Sym is a symbolic key code for non-character keys. Printable characters
// travel as Text events or as Key events with Sym == SymRune.
type Sym uint16

const (
	// SymNone indicates no symbolic key.
	SymNone Sym = iota
	// SymRune is a character key; the character is in Key.Rune.
	SymRune
	// SymEnter is the commit key.
	SymEnter
	// SymEscape cancels the current input.
	SymEscape
	// SymBackspace deletes backward.
	SymBackspace
	// SymDelete deletes forward.
	SymDelete
	// SymTab is the tabulator key.
	SymTab
	// SymLeft moves the cursor left.
	SymLeft
	// SymRight moves the cursor right.
	SymRight
	// SymUp moves up a row or steps back in history.
	SymUp
	// SymDown moves down a row or steps forward in history.
	SymDown
	// SymHome moves to the start.
	SymHome
	// SymEnd moves to the end.
	SymEnd
	// SymPageUp moves up a page.
	SymPageUp
	// SymPageDown moves down a page.
	SymPageDown
)

// String returns the name of the symbolic key.
func (s Sym) String() string {
	switch s {
	case SymRune:
		return "rune"
	case SymEnter:
		return "enter"
	case SymEscape:
		return "escape"
	case SymBackspace:
		return "backspace"
	case SymDelete:
		return "delete"
	case SymTab:
		return "tab"
	case SymLeft:
		return "left"
	case SymRight:
		return "right"
	case SymUp:
		return "up"
	case SymDown:
		return "down"
	case SymHome:
		return "home"
	case SymEnd:
		return "end"
	case SymPageUp:
		return "page-up"
	case SymPageDown:
		return "page-down"
	default:
		return "none"
	}
}

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	// ModNone means no modifiers are held.
	ModNone Modifier = 0
	// ModShift is the shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl is the control key.
	ModCtrl
	// ModAlt is the alt/option key.
	ModAlt
	// ModMeta is the meta/command key.
	ModMeta
)

// HasShift reports whether shift is held.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasCtrl reports whether control is held.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt reports whether alt is held.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasMeta reports whether meta is held.
func (m Modifier) HasMeta() bool { return m&ModMeta != 0 }
