package interaction

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/penwyp/go-emotilog/internal/util"
	"golang.org/x/sys/unix"
)

// Control bytes delivered in raw mode
const (
	CtrlC  rune = 3
	Escape rune = 27
)

// KeyboardReader handles keyboard input in raw mode
type KeyboardReader struct {
	source   io.Reader
	fd       int
	oldState *unix.Termios
	input    chan KeyEvent
	stop     chan struct{}
}

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
)

// Char builds a printable key event
func Char(key rune) KeyEvent {
	return KeyEvent{Key: key, Type: KeyChar}
}

// NewKeyboardReader puts stdin in raw mode and starts reading key presses
func NewKeyboardReader() (*KeyboardReader, error) {
	return NewKeyboardReaderFor(os.Stdin)
}

// NewKeyboardReaderFor puts the terminal behind tty in raw mode and reads from it.
// Close restores the saved terminal state.
func NewKeyboardReaderFor(tty *os.File) (*KeyboardReader, error) {
	kr := newKeyboardReader(tty)
	kr.fd = int(tty.Fd())

	if err := kr.enableRawMode(); err != nil {
		return nil, err
	}

	go kr.readInput()
	return kr, nil
}

// NewKeyboardReaderFrom reads key presses from r without touching terminal modes
func NewKeyboardReaderFrom(r io.Reader) *KeyboardReader {
	kr := newKeyboardReader(r)
	go kr.readInput()
	return kr
}

func newKeyboardReader(r io.Reader) *KeyboardReader {
	return &KeyboardReader{
		source: r,
		fd:     -1,
		input:  make(chan KeyEvent, 10),
		stop:   make(chan struct{}),
	}
}

// readInput reads keyboard input until the source fails or Close is called.
// The events channel is closed when reading stops.
func (kr *KeyboardReader) readInput() {
	defer close(kr.input)
	buf := make([]byte, 8)

	for {
		n, err := kr.source.Read(buf)
		for _, event := range ParseInput(buf[:n]) {
			select {
			case kr.input <- event:
			case <-kr.stop:
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				util.LogDebugf("Keyboard read stopped: %v", err)
			}
			return
		}

		select {
		case <-kr.stop:
			return
		default:
		}
	}
}

// ParseInput parses one raw keyboard read. A read may hold several keys when
// input is pasted or piped; arrow and function key sequences are dropped.
func ParseInput(buf []byte) []KeyEvent {
	var events []KeyEvent

	for i := 0; i < len(buf); {
		switch {
		case buf[i] == byte(CtrlC):
			events = append(events, KeyEvent{Key: CtrlC, Type: KeyChar})
			i++

		case buf[i] == byte(Escape):
			if i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				i = skipEscapeSequence(buf, i+2)
				continue
			}
			events = append(events, KeyEvent{Key: Escape, Type: KeyEscape})
			i++

		default:
			r, size := utf8.DecodeRune(buf[i:])
			if r != utf8.RuneError {
				events = append(events, KeyEvent{Key: r, Type: KeyChar})
			}
			i += size
		}
	}
	return events
}

// skipEscapeSequence returns the index just past the final byte of a CSI/SS3 sequence
func skipEscapeSequence(buf []byte, i int) int {
	for i < len(buf) {
		b := buf[i]
		i++
		if b >= 0x40 && b <= 0x7e {
			break
		}
	}
	return i
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the keyboard reader and restores terminal
func (kr *KeyboardReader) Close() error {
	select {
	case <-kr.stop:
		return nil
	default:
		close(kr.stop)
	}
	return kr.disableRawMode()
}

// disableRawMode restores the terminal state saved by enableRawMode
func (kr *KeyboardReader) disableRawMode() error {
	if kr.oldState == nil || kr.fd < 0 {
		return nil
	}
	return unix.IoctlSetTermios(kr.fd, ioctlSetTermios, kr.oldState)
}

// makeRaw derives the raw-mode state from the current one
func makeRaw(oldState *unix.Termios) unix.Termios {
	newState := *oldState
	newState.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	// Keep ISIG enabled to allow Ctrl+C handling
	newState.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	newState.Cflag |= unix.CS8
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0
	return newState
}

// enableRawMode sets the terminal to raw mode
func (kr *KeyboardReader) enableRawMode() error {
	oldState, err := unix.IoctlGetTermios(kr.fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	kr.oldState = oldState

	newState := makeRaw(oldState)
	return unix.IoctlSetTermios(kr.fd, ioctlSetTermios, &newState)
}
