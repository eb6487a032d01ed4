// Command lineshell is a small read-eval-print loop demonstrating the
// readline widget: history with file persistence, completion with an
// optional Lua script, and caller-side rendering over tcell.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tuikit/backend"
	"github.com/dshills/tuikit/config"
	"github.com/dshills/tuikit/dispatch"
	"github.com/dshills/tuikit/histfile"
	"github.com/dshills/tuikit/internal/logging"
	"github.com/dshills/tuikit/readline"
	"github.com/dshills/tuikit/readline/complete"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	histPath   string
	multiline  bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "lineshell.toml", "configuration file (TOML or YAML)")
	flag.StringVar(&opts.histPath, "histfile", "", "history file (overrides config)")
	flag.BoolVar(&opts.multiline, "multiline", false, "enable multiline editing")
	flag.Parse()
	return opts
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.histPath != "" {
		cfg.History.File = opts.histPath
	}
	if opts.multiline {
		cfg.Readline.Multiline = true
	}

	log := logging.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log = logging.New(f, logging.ParseLevel(cfg.Log.Level), "lineshell")
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating terminal: %v\n", err)
		return 1
	}
	term.SetLogger(log)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer term.Fini()

	for keyName, label := range cfg.Labels {
		term.BindLabel(keyName, label)
	}

	return loop(term, cfg, log)
}

// session holds the REPL state shared between the event loop and the
// render callback.
type session struct {
	term   *backend.Terminal
	output []string
	state  readline.State
}

func loop(term *backend.Terminal, cfg config.Config, log *logging.Logger) int {
	s := &session{term: term}

	rlOpts := []readline.Option{
		readline.WithCompletionLimit(cfg.Readline.CompletionLimit),
		readline.WithHistoryLimit(cfg.History.Limit),
	}
	if cfg.Readline.Multiline {
		rlOpts = append(rlOpts, readline.WithMultiline())
	}
	if cfg.Readline.CompletionScript != "" {
		provider, err := complete.NewLuaFile(cfg.Readline.CompletionScript)
		if err != nil {
			log.Error("completion script: %v", err)
		} else {
			defer provider.Close()
			rlOpts = append(rlOpts, readline.WithCompletion(provider.Complete))
		}
	}

	rl, err := readline.New(term, s.render, rlOpts...)
	if err != nil {
		log.Error("readline setup: %v", err)
		return 1
	}
	defer rl.Free()

	if cfg.History.File != "" {
		if err := histfile.Load(rl.History(), cfg.History.File); err != nil {
			log.Warn("loading history: %v", err)
		}
	}

	var watcher *histfile.Watcher
	if cfg.History.File != "" && cfg.History.Watch {
		watcher, err = histfile.Watch(cfg.History.File, log)
		if err != nil {
			log.Warn("watching history: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	rl.Clear() // paint the initial empty prompt

	for {
		// Pick up external history rewrites between inputs.
		if watcher != nil {
			select {
			case <-watcher.Changes():
				if err := histfile.Load(rl.History(), cfg.History.File); err != nil {
					log.Warn("reloading history: %v", err)
				}
			default:
			}
		}

		events := term.PollEvent()
		for _, ev := range events {
			if isQuit(ev) {
				return 0
			}
			if rl.Feed(ev) == dispatch.Handled {
				break
			}
		}

		if rl.Done() {
			st := s.state
			if !st.Canceled && st.Line != "" {
				s.output = append(s.output, "> "+st.Line)
				rl.AddHistory(st.Line)
				if cfg.History.File != "" {
					if err := histfile.Save(rl.History(), cfg.History.File); err != nil {
						log.Warn("saving history: %v", err)
					}
				}
			}
			if st.Canceled && st.Line == "" {
				return 0 // escape on an empty line quits
			}
			rl.Clear()
		}
	}
}

func isQuit(ev dispatch.Event) bool {
	k, ok := ev.(dispatch.Key)
	return ok && k.Sym == dispatch.SymRune && k.Rune == 'c' && k.Mods.HasCtrl()
}

// render is the readline update callback: it repaints the scrollback, the
// prompt line with its dimmed hint, and the completion popup.
func (s *session) render(st readline.State) {
	s.state = st
	s.term.Clear()

	width, height := s.term.Size()
	promptRow := height - 1
	plain := tcell.StyleDefault
	dim := tcell.StyleDefault.Dim(true)

	// Scrollback above the prompt.
	first := 0
	if len(s.output) > promptRow {
		first = len(s.output) - promptRow
	}
	for i, line := range s.output[first:] {
		s.term.SetText(0, i, line, plain)
	}

	const prompt = "> "
	s.term.SetText(0, promptRow, prompt, plain)
	s.term.SetText(len(prompt), promptRow, st.Line, plain)

	// Dimmed remainder of the best suggestion.
	if st.HasHint && len(st.Hint) > len(st.Line) {
		s.term.SetText(len(prompt)+len(st.Line), promptRow, st.Hint[len(st.Line):], dim)
	}

	// Completion popup above the prompt.
	for i, cand := range st.Candidates {
		row := promptRow - len(st.Candidates) + i
		if row < 0 {
			continue
		}
		style := dim
		if cand.HasColor {
			style = plain.Foreground(tcell.NewRGBColor(
				int32(cand.RGB[0]), int32(cand.RGB[1]), int32(cand.RGB[2])))
		}
		text := cand.Text
		if len(text) > width {
			text = text[:width]
		}
		s.term.SetText(0, row, text, style)
	}

	s.term.ShowCursor(len(prompt)+st.CursorX, promptRow+st.CursorY)
	s.term.Show()
}
