package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadPreamble returns the destination's lines up to and including the first
// line containing sentinel. The result always ends with a newline.
func ReadPreamble(path, sentinel string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrDestination, path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var b strings.Builder
	for {
		line, err := r.ReadString('\n')
		b.WriteString(line)
		if strings.Contains(line, sentinel) {
			if !strings.HasSuffix(line, "\n") {
				b.WriteByte('\n')
			}
			return b.String(), nil
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: read %s: %v", ErrDestination, path, err)
		}
	}
	return "", fmt.Errorf("%w: sentinel %q not found in %s", ErrDestination, sentinel, path)
}

// OpenConditionals counts preprocessor conditionals left open by preamble,
// typically the include guard the generated block has to close.
func OpenConditionals(preamble string) int {
	open := 0
	for _, line := range strings.Split(preamble, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "#endif"):
			open--
		case strings.HasPrefix(line, "#if"):
			open++
		}
	}
	if open < 0 {
		return 0
	}
	return open
}

// LineEnding reports the line terminator of the sentinel line, the last line
// of preamble.
func LineEnding(preamble string) string {
	if strings.HasSuffix(preamble, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
