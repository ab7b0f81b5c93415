package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
)

const (
	keyCtrlC    = 0x03
	keyEscape   = 0x1b
	clearScreen = "\x1b[H\x1b[2J"
)

// arrowActions maps the final byte of an ANSI cursor sequence.
var arrowActions = map[rune]core.Action{
	'A': core.ActionUp,
	'B': core.ActionDown,
	'C': core.ActionRight,
	'D': core.ActionLeft,
}

// KeySource reads raw keystrokes and yields game actions.
// Unmapped keys are discarded.
type KeySource struct {
	r *bufio.Reader
}

// NewKeySource reads keys from r.
func NewKeySource(r io.Reader) *KeySource {
	return &KeySource{r: bufio.NewReader(r)}
}

// Next blocks until a mapped key arrives.
func (s *KeySource) Next() (core.Action, error) {
	for {
		ch, _, err := s.r.ReadRune()
		if err != nil {
			return 0, err
		}

		switch ch {
		case keyCtrlC:
			return core.ActionExit, nil
		case keyEscape:
			action, ok, err := s.readEscape()
			if err != nil {
				return 0, err
			}
			if ok {
				return action, nil
			}
			continue
		}

		if action, ok := core.ParseKey(ch); ok {
			return action, nil
		}
	}
}

// readEscape consumes a CSI or SS3 sequence so its letters are not
// mistaken for WASD keys.
func (s *KeySource) readEscape() (core.Action, bool, error) {
	intro, _, err := s.r.ReadRune()
	if err != nil {
		return 0, false, err
	}
	if intro != '[' && intro != 'O' {
		if err := s.r.UnreadRune(); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}

	for {
		ch, _, err := s.r.ReadRune()
		if err != nil {
			return 0, false, err
		}
		if ch >= 0x40 && ch <= 0x7e {
			action, ok := arrowActions[ch]
			return action, ok, nil
		}
	}
}

// TextRenderer draws snapshots as plain text on a raw terminal.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer writes frames to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render clears the screen and writes the frame. Raw mode needs CRLF.
func (r *TextRenderer) Render(s game.Snapshot) error {
	frame := strings.ReplaceAll(game.RenderText(s), "\n", "\r\n")
	_, err := io.WriteString(r.w, clearScreen+frame)
	return err
}

// RunPlain plays one game with a blocking read loop instead of Bubble Tea.
// When in is a terminal it is switched to raw mode for the duration.
func RunPlain(cfg config.Config, logger *log.Logger, in *os.File, out io.Writer) error {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("tui: raw mode: %w", err)
		}
		//nolint:errcheck // Best-effort restore on exit
		defer term.Restore(fd, state)
	}

	machine := NewMachine(cfg, logger)
	if err := machine.Run(NewKeySource(in), NewTextRenderer(out)); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
