package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
)

// ErrAborted is returned by a Prompter when the user presses Ctrl-C.
var ErrAborted = errors.New("prompt aborted")

// Prompter reads one line of user input per call.
// It returns io.EOF when input is exhausted.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// NewPrompter returns a line-editing prompter with persistent history when
// in is a terminal, and a plain line reader otherwise.
func NewPrompter(in io.Reader, out io.Writer, historyFile string) Prompter {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return newLinerPrompter(historyFile)
	}
	return NewLinePrompter(in, out)
}

type linerPrompter struct {
	state       *liner.State
	historyFile string
}

func newLinerPrompter(historyFile string) *linerPrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = state.ReadHistory(f)
			f.Close()
		}
	}
	return &linerPrompter{state: state, historyFile: historyFile}
}

func (p *linerPrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal and saves the history file.
func (p *linerPrompter) Close() error {
	var saveErr error
	if p.historyFile != "" {
		var buf bytes.Buffer
		if _, err := p.state.WriteHistory(&buf); err != nil {
			saveErr = err
		} else if err := atomic.WriteFile(p.historyFile, &buf); err != nil {
			saveErr = fmt.Errorf("failed to save history: %w", err)
		}
	}
	if err := p.state.Close(); err != nil {
		return err
	}
	return saveErr
}

// LinePrompter reads lines from any reader, for pipes and tests.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLinePrompter creates a LinePrompter that writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *LinePrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

func (p *LinePrompter) Close() error { return nil }
