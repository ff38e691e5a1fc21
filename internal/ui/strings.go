package ui

import (
	"fmt"
	"strings"
)

// truncate shortens a string to the given rune limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// keeping more of the end (the file name) than the start.
func truncateMiddle(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 5 {
		return string(runes[:limit])
	}
	endLen := (limit - 3) * 2 / 3
	startLen := limit - 3 - endLen
	return string(runes[:startLen]) + "..." + string(runes[len(runes)-endLen:])
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// wrapText hard-wraps s at width runes, returning at most maxLines lines.
// The last line ends in an ellipsis when text was cut.
func wrapText(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	r := []rune(s)
	var lines []string
	for len(r) > 0 && len(lines) < maxLines {
		n := min(width, len(r))
		lines = append(lines, string(r[:n]))
		r = r[n:]
	}
	if len(r) > 0 {
		last := []rune(lines[len(lines)-1])
		lines[len(lines)-1] = string(last[:max(len(last)-3, 0)]) + "..."
	}
	return lines
}

// shortDay abbreviates a weekday name to three letters.
func shortDay(day string) string {
	r := []rune(day)
	if len(r) <= 3 {
		return day
	}
	return string(r[:3])
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
