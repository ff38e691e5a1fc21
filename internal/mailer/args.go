package mailer

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/five82/picker/internal/appointment"
)

const (
	// BinaryToken is the mailer's command name in the copyable command form.
	BinaryToken = "mailer"
	// Subcommand selects the appointment confirmation flow.
	Subcommand = "appointment"

	emptyArray = "'[]'"
)

var (
	// ErrSerialization marks a failed appointment encoding.
	ErrSerialization = errors.New("encode appointments")
	// ErrLaunch marks a subprocess that could not be started.
	ErrLaunch = errors.New("launch mailer")
)

// marshalPayload is swapped in tests to exercise the fallback path.
var marshalPayload = func(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Arguments are the inputs to one mailer invocation.
type Arguments struct {
	Client       string
	Email        string
	Dog          string
	Appointments []appointment.Record
}

// String renders the argument line. With includeBinary the mailer command
// name leads, which is the form copied to the clipboard; the send path omits
// it and prefixes the configured binary path instead.
func (a Arguments) String(includeBinary bool) string {
	tokens := make([]string, 0, 6)
	if includeBinary {
		tokens = append(tokens, BinaryToken)
	}
	tokens = append(tokens,
		Subcommand,
		"--client "+doubleQuote(a.Client),
		"--email "+doubleQuote(a.Email),
		"--dog "+doubleQuote(a.Dog),
		EncodeAppointments(a.Appointments),
	)
	return strings.Join(tokens, " ")
}

// EncodeAppointments serializes records as a JSON array wrapped for a
// single-quoted shell context. An encoding failure is logged and yields '[]'.
func EncodeAppointments(records []appointment.Record) string {
	payload := make([]appointmentPayload, 0, len(records))
	for _, r := range records {
		payload = append(payload, newPayload(r))
	}
	data, err := marshalPayload(payload)
	if err != nil {
		log.Printf("mailer: %v; sending empty appointment list", errors.Mark(errors.Wrap(err, "marshal"), ErrSerialization))
		return emptyArray
	}
	return ShellQuote(string(data))
}

// ShellQuote wraps s in single quotes, replacing each embedded ' with '\''.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// doubleQuote wraps v in double quotes, escaping the characters the shell
// still interprets there.
func doubleQuote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
