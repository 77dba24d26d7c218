package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is the interactive screen the console runs on. Without one the
// console never clears the screen or waits for a key, so piped and scripted
// sessions stay plain.
type Terminal interface {
	Clear()
	WaitKey(r io.ByteReader) error
}

type ttyTerminal struct {
	in  *os.File
	out io.Writer
}

// NewTerminal returns a Terminal for in when it is attached to a TTY, or nil.
func NewTerminal(in *os.File, out io.Writer) Terminal {
	if !IsTerminal(in) {
		return nil
	}
	return &ttyTerminal{in: in, out: out}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

func (t *ttyTerminal) Clear() {
	_, _ = io.WriteString(t.out, "\033[H\033[2J")
}

// WaitKey blocks until a single key is pressed. The terminal is put in raw
// mode for the read so no Enter is needed. The key is taken from r, the
// reader the menu prompts use, so keys typed ahead are consumed in order.
func (t *ttyTerminal) WaitKey(r io.ByteReader) error {
	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer func() { _ = term.Restore(fd, state) }()

	_, err = r.ReadByte()
	return err
}
