package e2e

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes CSI escape sequences from s
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// wideTail marks the second cell of a double-width rune
const wideTail rune = -1

// Screen is a virtual terminal fed through Write. It understands the cursor
// and erase sequences the session display emits and ignores everything else.
type Screen struct {
	mu      sync.Mutex
	rows    int
	cols    int
	cells   [][]rune
	cursorX int
	cursorY int
	pending []byte
	altMode bool
}

// NewScreen creates a blank rows x cols screen
func NewScreen(rows, cols int) *Screen {
	s := &Screen{rows: rows, cols: cols, cells: make([][]rune, rows)}
	for i := range s.cells {
		s.cells[i] = blankRow(cols)
	}
	return s
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for j := range row {
		row[j] = ' '
	}
	return row
}

// Write feeds terminal output. Sequences split across writes are buffered.
func (s *Screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := append(s.pending, p...)
	s.pending = nil

	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == 0x1b:
			end, ok := s.escape(data, i)
			if !ok {
				s.pending = append([]byte(nil), data[i:]...)
				return len(p), nil
			}
			i = end
		case b == '\r':
			s.cursorX = 0
			i++
		case b == '\n':
			s.lineFeed()
			i++
		case b == '\b':
			if s.cursorX > 0 {
				s.cursorX--
			}
			i++
		case b < 0x20:
			i++
		default:
			if !utf8.FullRune(data[i:]) {
				s.pending = append([]byte(nil), data[i:]...)
				return len(p), nil
			}
			r, size := utf8.DecodeRune(data[i:])
			s.put(r)
			i += size
		}
	}
	return len(p), nil
}

// escape handles the sequence starting at data[start] and returns the index
// after it. ok is false when the sequence is incomplete.
func (s *Screen) escape(data []byte, start int) (end int, ok bool) {
	if start+1 >= len(data) {
		return 0, false
	}
	if data[start+1] != '[' {
		return start + 2, true
	}

	i := start + 2
	private := false
	if i < len(data) && data[i] == '?' {
		private = true
		i++
	}

	var params []int
	current, seen := 0, false
	for ; i < len(data); i++ {
		c := data[i]
		switch {
		case c >= '0' && c <= '9':
			current = current*10 + int(c-'0')
			seen = true
		case c == ';':
			params = append(params, current)
			current, seen = 0, false
		default:
			if seen {
				params = append(params, current)
			}
			if private {
				s.privateMode(c, params)
			} else {
				s.command(c, params)
			}
			return i + 1, true
		}
	}
	return 0, false
}

func param(params []int, idx, def int) int {
	if idx < len(params) && params[idx] > 0 {
		return params[idx]
	}
	return def
}

func (s *Screen) privateMode(cmd byte, params []int) {
	if param(params, 0, 0) != 1049 {
		return
	}
	switch cmd {
	case 'h':
		s.altMode = true
	case 'l':
		s.altMode = false
	}
}

func (s *Screen) command(cmd byte, params []int) {
	switch cmd {
	case 'H', 'f':
		s.cursorY = min(s.rows-1, param(params, 0, 1)-1)
		s.cursorX = min(s.cols-1, param(params, 1, 1)-1)
	case 'J':
		switch param(params, 0, 0) {
		case 0:
			s.eraseLine(s.cursorY, s.cursorX, s.cols)
			for y := s.cursorY + 1; y < s.rows; y++ {
				s.cells[y] = blankRow(s.cols)
			}
		case 1:
			for y := 0; y < s.cursorY; y++ {
				s.cells[y] = blankRow(s.cols)
			}
			s.eraseLine(s.cursorY, 0, s.cursorX+1)
		default:
			for y := range s.cells {
				s.cells[y] = blankRow(s.cols)
			}
		}
	case 'K':
		switch param(params, 0, 0) {
		case 0:
			s.eraseLine(s.cursorY, s.cursorX, s.cols)
		case 1:
			s.eraseLine(s.cursorY, 0, s.cursorX+1)
		default:
			s.eraseLine(s.cursorY, 0, s.cols)
		}
	case 'A':
		s.cursorY = max(0, s.cursorY-param(params, 0, 1))
	case 'B':
		s.cursorY = min(s.rows-1, s.cursorY+param(params, 0, 1))
	case 'C':
		s.cursorX = min(s.cols-1, s.cursorX+param(params, 0, 1))
	case 'D':
		s.cursorX = max(0, s.cursorX-param(params, 0, 1))
	}
}

func (s *Screen) eraseLine(y, from, to int) {
	for x := max(0, from); x < min(to, s.cols); x++ {
		s.cells[y][x] = ' '
	}
}

func (s *Screen) lineFeed() {
	s.cursorX = 0
	s.cursorY++
	if s.cursorY >= s.rows {
		copy(s.cells, s.cells[1:])
		s.cells[s.rows-1] = blankRow(s.cols)
		s.cursorY = s.rows - 1
	}
}

func (s *Screen) put(r rune) {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return
	}
	if s.cursorX+w > s.cols {
		s.lineFeed()
	}
	s.cells[s.cursorY][s.cursorX] = r
	if w == 2 {
		s.cells[s.cursorY][s.cursorX+1] = wideTail
	}
	s.cursorX += w
}

// Lines returns every row with trailing blanks trimmed
func (s *Screen) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, s.rows)
	for y, row := range s.cells {
		var b strings.Builder
		for _, r := range row {
			if r != wideTail {
				b.WriteRune(r)
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// Render returns the visible screen as text
func (s *Screen) Render() string {
	return strings.Join(s.Lines(), "\n")
}

// Contains reports whether text is visible on the screen
func (s *Screen) Contains(text string) bool {
	return strings.Contains(s.Render(), text)
}

// InAlternateScreen reports whether the alternate buffer is active
func (s *Screen) InAlternateScreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.altMode
}
