package shell

import (
	"bufio"
	"errors"
	"io"

	"github.com/abiosoft/readline"
)

// ErrInputClosed is returned when the line source has no more input.
var ErrInputClosed = errors.New("input closed")

// LineSource supplies the shell with one line of input at a time.
type LineSource interface {
	// ReadLine shows prompt to the user and blocks until a line is available.
	// It returns ErrInputClosed once the input is exhausted.
	ReadLine(prompt string) (string, error)
}

// BufferedSource reads lines from a plain stream such as a pipe or file.
type BufferedSource struct {
	r *bufio.Reader
	w io.Writer
}

var _ LineSource = (*BufferedSource)(nil)

// NewBufferedSource reads lines from r, writing prompts to w.
func NewBufferedSource(r io.Reader, w io.Writer) *BufferedSource {
	return &BufferedSource{
		r: bufio.NewReader(r),
		w: writerOrDiscard(w),
	}
}

// ReadLine implements LineSource.ReadLine.
//
// A final line without a terminator is returned as-is, the following call
// reports ErrInputClosed.
func (b *BufferedSource) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(b.w, prompt); err != nil {
		return "", err
	}
	// The prompt must be visible before blocking on input.
	if err := flush(b.w); err != nil {
		return "", err
	}

	line, err := b.r.ReadString('\n')
	switch {
	case err == io.EOF && line != "":
		return line, nil
	case err == io.EOF:
		return "", ErrInputClosed
	case err != nil:
		return "", err
	}
	return line, nil
}

// ReadlineSource reads lines from a terminal with line editing and history.
type ReadlineSource struct {
	Readline *readline.Instance
}

var _ LineSource = (*ReadlineSource)(nil)

// NewReadlineSource creates a line editor over the shell's streams. If
// historyFile is non-empty, entered lines are persisted there.
func NewReadlineSource(stdio IO, historyFile string) (*ReadlineSource, error) {
	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(io.NopCloser(stdio.Stdin())),
		Stdout:      stdio.Stdout(),
		Stderr:      stdio.Stderr(),
		HistoryFile: historyFile,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &ReadlineSource{Readline: rl}, nil
}

// ReadLine implements LineSource.ReadLine.
//
// An interrupt (Ctrl-C) discards the line being edited and yields a blank
// line so the shell prompts again.
func (r *ReadlineSource) ReadLine(prompt string) (string, error) {
	r.Readline.SetPrompt(prompt)
	return readlineResult(r.Readline.Readline())
}

func readlineResult(line string, err error) (string, error) {
	switch {
	case err == readline.ErrInterrupt:
		return "", nil
	case err == io.EOF:
		return "", ErrInputClosed
	case err != nil:
		return "", err
	}
	return line, nil
}

// Close restores the terminal and releases the line editor.
func (r *ReadlineSource) Close() error {
	return r.Readline.Close()
}
