package e2e

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creack/pty"
)

// Terminal is an in-process pseudo-terminal. Code under test reads keys from
// and draws to TTY; the test types through SendKeys and inspects Screen.
type Terminal struct {
	ptmx   *os.File
	tty    *os.File
	screen *Screen
	done   chan struct{}
}

// OpenTerminal allocates a rows x cols pseudo-terminal and starts capturing its output
func OpenTerminal(rows, cols uint16) (*Terminal, error) {
	if rows == 0 {
		rows = 24
	}
	if cols == 0 {
		cols = 80
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open pty: %w", err)
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: rows, Cols: cols}); err != nil {
		ptmx.Close()
		tty.Close()
		return nil, fmt.Errorf("failed to size pty: %w", err)
	}

	t := &Terminal{
		ptmx:   ptmx,
		tty:    tty,
		screen: NewScreen(int(rows), int(cols)),
		done:   make(chan struct{}),
	}
	go t.capture()
	return t, nil
}

func (t *Terminal) capture() {
	defer close(t.done)
	buf := make([]byte, 4096)
	for {
		n, err := t.ptmx.Read(buf)
		if n > 0 {
			_, _ = t.screen.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// TTY is the slave side handed to the code under test
func (t *Terminal) TTY() *os.File {
	return t.tty
}

// Screen returns the virtual screen fed by the pty output
func (t *Terminal) Screen() *Screen {
	return t.screen
}

// SendKeys types keys as if pressed on the keyboard
func (t *Terminal) SendKeys(keys string) error {
	_, err := t.ptmx.Write([]byte(keys))
	return err
}

// WaitForText polls the screen until text is visible
func (t *Terminal) WaitForText(text string, timeout time.Duration) error {
	return t.waitFor(timeout, func() bool { return t.screen.Contains(text) },
		fmt.Sprintf("timeout waiting for %q", text))
}

// WaitForNoText polls the screen until text is gone
func (t *Terminal) WaitForNoText(text string, timeout time.Duration) error {
	return t.waitFor(timeout, func() bool { return !t.screen.Contains(text) },
		fmt.Sprintf("timeout waiting for %q to disappear", text))
}

func (t *Terminal) waitFor(timeout time.Duration, cond func() bool, msg string) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return nil
		}
		time.Sleep(20 * time.Millisecond)
	}
	return fmt.Errorf("%s\n--- screen ---\n%s", msg, strings.TrimRight(t.screen.Render(), "\n"))
}

// Close releases both ends of the pty
func (t *Terminal) Close() error {
	err := errors.Join(t.tty.Close(), t.ptmx.Close())
	select {
	case <-t.done:
	case <-time.After(time.Second):
	}
	return err
}
