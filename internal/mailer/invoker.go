package mailer

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

const (
	defaultShell  = "/bin/sh"
	readChunkSize = 4096
	eventBuffer   = 64
)

// Invoker runs the mailer through a shell.
type Invoker struct {
	Shell  string   // shell run with -c; defaults to /bin/sh
	Setup  string   // optional command run before the mailer, joined with &&
	Binary string   // mailer executable path
	Env    []string // KEY=VALUE pairs added to the inherited environment
}

// CommandLine joins setup, binary and args into the script passed to -c.
func (inv Invoker) CommandLine(args string) string {
	binary := inv.Binary
	if strings.ContainsAny(binary, " \t'\"$`\\") {
		binary = ShellQuote(binary)
	}
	cmd := strings.TrimSpace(binary + " " + args)
	if setup := strings.TrimSpace(inv.Setup); setup != "" {
		return setup + " && " + cmd
	}
	return cmd
}

// Run starts one subprocess for commandLine and blocks until it has exited
// and both output streams are drained. Every chunk of output is handed to
// sink in arrival order per stream; sink is called from the two reader
// goroutines and must be safe for concurrent use.
//
// When the process cannot be started the launch error text is passed to sink
// and the returned Result has Launched unset.
func (inv Invoker) Run(commandLine string, sink func(Chunk)) Result {
	if sink == nil {
		sink = func(Chunk) {}
	}

	if bin := strings.TrimSpace(inv.Binary); bin != "" {
		if _, err := exec.LookPath(bin); err != nil {
			return launchFailed(err, sink)
		}
	}

	shell := inv.Shell
	if strings.TrimSpace(shell) == "" {
		shell = defaultShell
	}
	cmd := exec.Command(shell, "-c", commandLine)
	cmd.Env = append(os.Environ(), inv.Env...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return launchFailed(err, sink)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return launchFailed(err, sink)
	}
	if err := cmd.Start(); err != nil {
		return launchFailed(err, sink)
	}

	var g errgroup.Group
	g.Go(func() error { return pump(stdout, Stdout, sink) })
	g.Go(func() error { return pump(stderr, Stderr, sink) })
	readErr := g.Wait()
	waitErr := cmd.Wait()

	res := Result{Launched: true, ExitCode: -1}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	var exitErr *exec.ExitError
	switch {
	case waitErr != nil && !errors.As(waitErr, &exitErr):
		res.Err = errors.Wrap(waitErr, "wait for mailer")
	case readErr != nil:
		res.Err = errors.Wrap(readErr, "read mailer output")
	}
	if res.Err != nil {
		log.Printf("mailer: %v", res.Err)
	}
	return res
}

// Stream runs commandLine in the background and delivers its output as
// events. The channel carries every chunk, then one Done event, then closes.
func (inv Invoker) Stream(commandLine string) <-chan Event {
	events := make(chan Event, eventBuffer)
	go func() {
		defer close(events)
		res := inv.Run(commandLine, func(c Chunk) {
			events <- Event{Chunk: c}
		})
		events <- Event{Done: true, Result: res}
	}()
	return events
}

func launchFailed(err error, sink func(Chunk)) Result {
	marked := errors.Mark(err, ErrLaunch)
	log.Printf("mailer: launch failed: %v", err)
	sink(Chunk{Stream: Stderr, Text: fmt.Sprintf("launch failed: %v\n", err)})
	return Result{Launched: false, ExitCode: -1, Err: marked}
}

// pump copies r to sink until EOF. A multi-byte character split across two
// reads is held back and emitted whole.
func pump(r io.Reader, kind StreamKind, sink func(Chunk)) error {
	buf := make([]byte, readChunkSize)
	var pending []byte
	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := append(pending, buf[:n]...)
			emit, rest := splitUTF8(data)
			if len(emit) > 0 {
				sink(Chunk{Stream: kind, Text: string(emit)})
			}
			pending = append([]byte(nil), rest...)
		}
		if err == io.EOF {
			if len(pending) > 0 {
				sink(Chunk{Stream: kind, Text: string(pending)})
			}
			return nil
		}
		if err != nil {
			if len(pending) > 0 {
				sink(Chunk{Stream: kind, Text: string(pending)})
			}
			return err
		}
	}
}

// splitUTF8 separates a trailing incomplete rune from b.
func splitUTF8(b []byte) (emit, rest []byte) {
	i := len(b) - 1
	for i >= 0 && len(b)-i < utf8.UTFMax && !utf8.RuneStart(b[i]) {
		i--
	}
	if i >= 0 && !utf8.FullRune(b[i:]) {
		return b[:i], b[i:]
	}
	return b, nil
}
