package shell

import "io"

// IO holds the standard streams of the shell. Launched programs inherit
// the same streams.
type IO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// StdIO is an IO backed by fixed streams. Nil streams read as closed and
// discard writes.
type StdIO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

var _ IO = (*StdIO)(nil)

// NewStdIO creates an IO from the given streams.
func NewStdIO(stdin io.Reader, stdout, stderr io.Writer) *StdIO {
	return &StdIO{
		In:  readerOrClosed(stdin),
		Out: writerOrDiscard(stdout),
		Err: writerOrDiscard(stderr),
	}
}

func (s *StdIO) Stdin() io.Reader {
	return s.In
}

func (s *StdIO) Stdout() io.Writer {
	return s.Out
}

func (s *StdIO) Stderr() io.Writer {
	return s.Err
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

func readerOrClosed(r io.Reader) io.Reader {
	if r == nil {
		return closedReader{}
	}
	return r
}

// closedReader always reports end of input.
type closedReader struct{}

func (closedReader) Read([]byte) (int, error) {
	return 0, io.EOF
}

// flusher is implemented by buffered writers such as bufio.Writer.
type flusher interface {
	Flush() error
}

// flush pushes any buffered output in w to its destination. Writes to an
// *os.File are unbuffered and need no flushing.
func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
