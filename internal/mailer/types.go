package mailer

import "github.com/five82/picker/internal/appointment"

// appointmentPayload is the wire form of one appointment. Field order is the
// order the mailer expects.
type appointmentPayload struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Day      string `json:"day"`
	Street   string `json:"street"`
	Number   string `json:"number"`
	Area     string `json:"area"`
	Location string `json:"location"`
}

func newPayload(r appointment.Record) appointmentPayload {
	return appointmentPayload{
		Date:     r.Date,
		Time:     r.Time,
		Day:      r.Day,
		Street:   r.Street,
		Number:   r.Number,
		Area:     r.AreaCode,
		Location: r.Location,
	}
}

// Response mirrors the structured trailer the mailer prints when it gets far
// enough to talk to its API. Both fields are required.
type Response struct {
	Success *bool   `json:"success"`
	Message *string `json:"message"`
}

func (r Response) complete() bool {
	return r.Success != nil && r.Message != nil
}

// StreamKind tells which output channel a chunk came from.
type StreamKind int

const (
	Stdout StreamKind = iota
	Stderr
)

func (k StreamKind) String() string {
	if k == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Chunk is one read from the subprocess.
type Chunk struct {
	Stream StreamKind
	Text   string
}

// Result reports how a run ended. ExitCode is only meaningful when Launched.
type Result struct {
	Launched bool
	ExitCode int
	Err      error
}

// Event is delivered by Stream: zero or more chunks followed by exactly one
// event with Done set.
type Event struct {
	Chunk  Chunk
	Done   bool
	Result Result
}
