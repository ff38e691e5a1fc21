// Package logtail keeps and tails text output for display in the TUI.
//
// # Overview
//
// Two sources of text are shown in the picker:
//
//  1. Buffer: the stdout and stderr of the running mailer, appended chunk by
//     chunk as the subprocess writes it
//  2. Read: the picker's own log file, shown in the log view
//
// Both are tailed with the same ring buffer so the view never has to split
// or hold more than the lines it renders.
//
// # Ring Buffer Algorithm
//
// The tail uses a circular buffer of size maxLines:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line:
//	   - Store line at current index
//	   - Advance index (wrapping at maxLines)
//	3. If more than maxLines were seen, unroll the ring starting at index
//
// Memory is O(maxLines) regardless of input size, and the result is in
// chronological order.
//
// # Buffer Semantics
//
// Buffer stores exactly what the subprocess wrote: chunks are concatenated
// without separators, so a line split across two reads is whole again in
// String. Partial multi-byte characters never reach the buffer because the
// mailer package holds them back until complete.
//
// Buffer has no lock and copies by value, so it can live inside the
// session value the UI passes from one update to the next. Background
// readers deliver chunks as messages instead of touching it directly.
//
// Example usage:
//
//	var out logtail.Buffer
//	out.Append("HTTP Status Code: 2")
//	out.Append("00\n")
//	out.Tail(10) // ["HTTP Status Code: 200"]
//
// # Error Handling
//
// Read treats a missing file as empty (the log may not exist before the
// first send). Other open or scan errors are wrapped and returned.
package logtail
