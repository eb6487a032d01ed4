package dispatch

// Kind identifies the category of an input event.
type Kind uint8

const (
	// KindLabel is a symbolic input label such as "paste" or "cycle_mode".
	KindLabel Kind = iota
	// KindText is a run of decoded UTF-8 text.
	KindText
	// KindKey is a raw key press.
	KindKey
	// KindMouseButton is a pointer button transition.
	KindMouseButton
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindText:
		return "text"
	case KindKey:
		return "key"
	case KindMouseButton:
		return "mouse-button"
	default:
		return "unknown"
	}
}

// Event is the sealed union of input event types offered to a Chain.
type Event interface {
	Kind() Kind
}

// Label is a symbolic input event. Labels are announced by the display
// context (for example from a keybinding table) and carry an active flag
// distinguishing press from release.
type Label struct {
	Name   string
	Active bool
}

// Kind implements Event.
func (Label) Kind() Kind { return KindLabel }

// Text is a run of decoded UTF-8 input.
type Text struct {
	Runes []rune
}

// Kind implements Event.
func (Text) Kind() Kind { return KindText }

// TextOf builds a Text event from a string.
func TextOf(s string) Text {
	return Text{Runes: []rune(s)}
}

// String returns the text payload.
func (t Text) String() string { return string(t.Runes) }

// Key is a raw key press event. Sym is the symbolic key code, Scan the
// platform scancode, and SubID distinguishes duplicate keys (left/right
// modifiers, keypad digits).
type Key struct {
	Sym   Sym
	Rune  rune
	Scan  uint8
	Mods  Modifier
	SubID uint16
}

// Kind implements Event.
func (Key) Kind() Kind { return KindKey }

// MouseButton is a pointer button transition at a logical cell position.
type MouseButton struct {
	X      int
	Y      int
	Button Button
	Active bool
	Mods   Modifier
}

// Kind implements Event.
func (MouseButton) Kind() Kind { return KindMouseButton }

// Button identifies a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
)

// String returns the name of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}
