package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoEmotions is returned when a command is given nothing to log
var ErrNoEmotions = errors.New("no emotions given")

// readEmotions returns the labels to log. A single "-" argument reads one
// label per line from in, skipping blank lines. Labels are otherwise taken
// verbatim, including ones outside the built-in catalogue.
func readEmotions(args []string, in io.Reader) ([]string, error) {
	if len(args) == 1 && args[0] == "-" {
		var emotions []string
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				emotions = append(emotions, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read emotions from stdin: %w", err)
		}
		args = emotions
	}

	if len(args) == 0 {
		return nil, ErrNoEmotions
	}
	return args, nil
}
