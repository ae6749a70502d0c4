package selector

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels the selection prompt with
// an interrupt or end-of-input.
var ErrAborted = errors.New("selection aborted")

// Terminal is the interactive surface the selector drives. A scripted
// implementation stands in for it in tests.
type Terminal interface {
	// ReadCommand blocks for one line of input at the selection prompt.
	// It returns ErrAborted on interrupt or end-of-input.
	ReadCommand(prompt string) (string, error)
	// Width returns the terminal width in cells.
	Width() int
}

// LineTerminal reads from the controlling terminal. Each prompt opens
// and closes its own liner so raw mode is never held between renders.
type LineTerminal struct{}

func NewTerminal() *LineTerminal {
	return &LineTerminal{}
}

func (t *LineTerminal) ReadCommand(prompt string) (string, error) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	input, err := state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (t *LineTerminal) Width() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
