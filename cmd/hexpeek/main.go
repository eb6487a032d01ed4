// Command hexpeek opens a file into a bufferwnd and renders it as a hex
// dump or character grid. Writes are opt-in; a modified buffer is written
// back to the file on exit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tuikit/backend"
	"github.com/dshills/tuikit/bufferwnd"
	"github.com/dshills/tuikit/dispatch"
)

func main() {
	os.Exit(run())
}

type options struct {
	path        string
	writeEnable bool
	mode        bufferwnd.Mode
}

func parseFlags() (options, error) {
	var opts options
	var modeName string
	flag.BoolVar(&opts.writeEnable, "w", false, "enable writes to the buffer")
	flag.StringVar(&modeName, "mode", "binary", "initial display mode (text or binary)")
	flag.Parse()

	switch modeName {
	case "text":
		opts.mode = bufferwnd.ModeText
	case "binary":
		opts.mode = bufferwnd.ModeBinary
	default:
		return opts, fmt.Errorf("unknown mode %q", modeName)
	}

	if flag.NArg() != 1 {
		return opts, fmt.Errorf("usage: hexpeek [-w] [-mode text|binary] <file>")
	}
	opts.path = flag.Arg(0)
	return opts, nil
}

func run() int {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	buf, err := os.ReadFile(opts.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer term.Fini()

	// Ctrl+T cycles between text and binary display.
	term.BindLabel("Ctrl+T", "cycle_mode")

	modified, err := loop(term, buf, opts)
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if modified && opts.writeEnable {
		if err := os.WriteFile(opts.path, buf, 0o644); err != nil {
			term.Fini()
			fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", opts.path, err)
			return 1
		}
	}
	return 0
}

// view is the window's display context: the terminal minus the status row.
type view struct {
	term *backend.Terminal
}

func (v view) Size() (int, int) {
	w, h := v.term.Size()
	if h > 1 {
		h--
	}
	return w, h
}

func loop(term *backend.Terminal, buf []byte, opts options) (bool, error) {
	p := &painter{term: term, buf: buf, path: opts.path}

	wnd, err := bufferwnd.New(view{term}, buf, opts.writeEnable,
		bufferwnd.WithMode(opts.mode),
		bufferwnd.WithUpdate(func(bufferwnd.State) { p.paint() }))
	if err != nil {
		return false, err
	}
	defer wnd.Free()
	p.wnd = wnd

	term.OnResize(func(int, int) { p.paint() })
	p.paint()

	for {
		for _, ev := range term.PollEvent() {
			if isQuit(ev) {
				return wnd.Modified(), nil
			}
			if wnd.Feed(ev) == dispatch.Handled {
				break
			}
		}
	}
}

func isQuit(ev dispatch.Event) bool {
	k, ok := ev.(dispatch.Key)
	return ok && k.Sym == dispatch.SymRune && k.Rune == 'q' && k.Mods.HasCtrl()
}

type painter struct {
	term *backend.Terminal
	wnd  *bufferwnd.Window
	buf  []byte
	path string
}

func (p *painter) paint() {
	p.term.Clear()

	width, height := p.term.Size()
	rows := height - 1
	if rows < 1 {
		rows = 1
	}

	bpr := p.wnd.RowBytes()
	top := p.wnd.Top()
	for y := 0; y < rows; y++ {
		off := (top + y) * bpr
		if off >= len(p.buf) {
			break
		}
		end := min(off+bpr, len(p.buf))
		if p.wnd.Mode() == bufferwnd.ModeText {
			p.paintTextRow(y, off, end)
		} else {
			p.paintHexRow(y, off, end, bpr)
		}
	}

	p.paintStatus(width, height-1)

	cx, cy := p.wnd.CursorCell()
	p.term.ShowCursor(cx, cy)
	p.term.Show()
}

func (p *painter) paintTextRow(y, off, end int) {
	for i, b := range p.buf[off:end] {
		p.term.SetText(i, y, string(printable(b)), tcell.StyleDefault)
	}
}

func (p *painter) paintHexRow(y, off, end, bpr int) {
	plain := tcell.StyleDefault
	dim := tcell.StyleDefault.Dim(true)

	p.term.SetText(0, y, fmt.Sprintf("%08x:", off), dim)
	for i, b := range p.buf[off:end] {
		p.term.SetText(10+i*3, y, fmt.Sprintf("%02x", b), plain)
		p.term.SetText(10+bpr*3+1+i, y, string(printable(b)), plain)
	}
}

func (p *painter) paintStatus(width, y int) {
	mark := ""
	if p.wnd.Modified() {
		mark = " [modified]"
	}
	ro := " (read-only)"
	if p.wnd.WriteEnabled() {
		ro = ""
	}
	status := fmt.Sprintf(" %s%s%s  %s  offset %d/%d  Ctrl+T mode  Ctrl+Q quit",
		p.path, ro, mark, p.wnd.Mode(), p.wnd.Cursor(), len(p.buf))
	if len(status) > width {
		status = status[:width]
	}
	p.term.SetText(0, y, status, tcell.StyleDefault.Reverse(true))
}

// printable maps a byte to its display rune for the ASCII column.
func printable(b byte) rune {
	if b >= 0x20 && b < 0x7f {
		return rune(b)
	}
	return '.'
}
