package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Buffer accumulates mailer output in arrival order. The zero value is
// ready to use and a copy is independent of the original. It is not safe
// for concurrent use.
type Buffer struct {
	text string
}

// Append adds text as received; no separator is inserted.
func (b *Buffer) Append(text string) {
	b.text += text
}

// String returns everything appended since the last Reset.
func (b Buffer) String() string {
	return b.text
}

// Len returns the byte length of the content.
func (b Buffer) Len() int {
	return len(b.text)
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.text = ""
}

// Tail returns at most n lines from the end of the buffer. A trailing
// newline does not produce an empty last line.
func (b Buffer) Tail(n int) []string {
	if n <= 0 || b.text == "" {
		return nil
	}
	lines, _ := tail(strings.NewReader(b.text), n)
	return lines
}

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	lines, err := tail(file, maxLines)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// tail keeps the last maxLines lines of r in a ring.
func tail(r io.Reader, maxLines int) ([]string, error) {
	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
