// Package mailer builds, runs and interprets invocations of the external
// mailer tool that sends appointment confirmations.
//
// # Overview
//
// The mailer is an opaque executable with a text contract. Picker hands it a
// single shell command line and reads back whatever it prints. The package is
// split into three parts:
//
//   - args.go: Arguments and EncodeAppointments build the argument line
//   - invoker.go: Invoker runs the command and streams its output
//   - result.go: Interpret turns exit status and output into an Outcome
//
// # Argument Line
//
// The argument line looks like:
//
//	appointment --client "Jane Doe" --email "jane@x.com" --dog "Rex" '[{"date":...}]'
//
// The copyable form used for the clipboard additionally starts with the
// "mailer" token. Appointments are encoded as a JSON array with the field
// order date, time, day, street, number, area, location and wrapped in single
// quotes; embedded single quotes become '\''. An empty queue encodes as '[]'.
//
// # Invocation
//
// Invoker runs "<shell> -c '<setup> && <binary> <args>'". Stdout and stderr
// are read concurrently and every chunk is forwarded as it arrives. Ordering
// is preserved within a stream but not across streams. Run returns only after
// both streams are drained and the process has exited, so callers never see
// the exit status before the last chunk.
//
// Stream wraps Run for the UI: it returns a channel carrying chunks followed
// by exactly one Done event. The UI's update loop is the only reader, which
// keeps all buffer mutation on one goroutine.
//
// There is no retry, timeout or cancellation. One call, one process.
//
// # Interpreting Output
//
// The mailer may fail before printing a structured response (network errors
// print only a status line, launch failures print nothing), so the outcome
// is derived in stages, each overriding the previous:
//
//  1. exit code 0 is success, anything else failure
//  2. "HTTP Status Code: NNN" decides success by the 2xx range
//  3. a trailing {"success": bool, "message": string} object is authoritative
//
// A trailer that does not decode into both fields is ignored.
package mailer
