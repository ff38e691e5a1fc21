package state

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/five82/picker/internal/appointment"
	"github.com/five82/picker/internal/contacts"
	"github.com/five82/picker/internal/logtail"
	"github.com/five82/picker/internal/mailer"
)

// ErrSendInFlight is returned by BeginSend while a previous send is running.
var ErrSendInFlight = errors.New("a send is already in progress")

// Phase is the send lifecycle: Idle -> Sending -> Completed -> Idle.
type Phase int

const (
	Idle Phase = iota
	Sending
	Completed
)

func (p Phase) String() string {
	switch p {
	case Sending:
		return "sending"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// Session is the whole interactive state. It is a plain value: every
// operation returns a new Session and leaves the receiver untouched.
type Session struct {
	Selection appointment.Selection
	Queue     appointment.Queue
	Fields    contacts.Fields
	Local     bool

	Contacts []contacts.Contact
	Search   string
	Selected uuid.UUID // uuid.Nil when no contact is picked

	Phase      Phase
	Output     logtail.Buffer
	Outcome    mailer.Outcome
	HasOutcome bool
	// BannerSeq increments on every completion so a stale expiry timer
	// cannot hide a newer banner.
	BannerSeq int
}

// New returns an idle session with sel preselected.
func New(sel appointment.Selection) Session {
	return Session{Selection: sel.Normalize()}
}

// Address returns the address fields used for a non-local appointment.
func (s Session) Address() appointment.Address {
	return appointment.Address{
		Street:   s.Fields.Street,
		Number:   s.Fields.Number,
		AreaCode: s.Fields.AreaCode,
		Location: s.Fields.Location,
	}
}

// WithSelection replaces the picker selection, clamping the day.
func (s Session) WithSelection(sel appointment.Selection) Session {
	s.Selection = sel.Normalize()
	return s
}

// WithFields replaces the form fields.
func (s Session) WithFields(f contacts.Fields) Session {
	s.Fields = f
	return s
}

// ToggleLocal flips between a visit at the configured local address and one
// at the client's address.
func (s Session) ToggleLocal() Session {
	s.Local = !s.Local
	return s
}

// AddAppointment queues the record built from the current selection. The
// second result is false when the slot was already queued.
func (s Session) AddAppointment(f appointment.Factory) (Session, bool) {
	rec := f.Create(s.Selection, s.Address(), s.Local)
	s.Queue = s.Queue.Clone()
	added := s.Queue.Add(rec)
	return s, added
}

// RemoveAppointment drops the queued record at index.
func (s Session) RemoveAppointment(index int) (Session, error) {
	s.Queue = s.Queue.Clone()
	if _, err := s.Queue.Remove(index); err != nil {
		return s, err
	}
	return s, nil
}

// ClearQueue empties the queue.
func (s Session) ClearQueue() Session {
	s.Queue = appointment.Queue{}
	return s
}

// WithContacts replaces the loaded directory.
func (s Session) WithContacts(list []contacts.Contact) Session {
	s.Contacts = append([]contacts.Contact(nil), list...)
	return s
}

// WithSearch sets the contact search query.
func (s Session) WithSearch(query string) Session {
	s.Search = query
	return s
}

// VisibleContacts returns the contacts matching the search query.
func (s Session) VisibleContacts() []contacts.Contact {
	return contacts.Filter(s.Contacts, s.Search)
}

// SelectContact clears the form and fills it from c.
func (s Session) SelectContact(c contacts.Contact) Session {
	s = s.ClearContact()
	s.Selected = c.ID
	s.Fields = contacts.Fill(c)
	return s
}

// ClearContact empties the form and drops the selected contact.
func (s Session) ClearContact() Session {
	s.Fields = contacts.Fields{}
	s.Selected = uuid.Nil
	return s
}

// Arguments builds the mailer arguments for the current form and queue.
func (s Session) Arguments() mailer.Arguments {
	return mailer.Arguments{
		Client:       s.Fields.Client,
		Email:        s.Fields.Email,
		Dog:          s.Fields.Dog,
		Appointments: s.Queue.Items(),
	}
}

// BeginSend moves to Sending and clears the output of any previous send. It
// returns the argument line to hand to the invoker. An empty queue is sent
// as an empty appointment list.
func (s Session) BeginSend() (Session, string, error) {
	if s.Phase == Sending {
		return s, "", ErrSendInFlight
	}
	s.Phase = Sending
	s.Output = logtail.Buffer{}
	s.Outcome = mailer.Outcome{}
	s.HasOutcome = false
	return s, s.Arguments().String(false), nil
}

// AppendOutput adds one chunk of subprocess output.
func (s Session) AppendOutput(c mailer.Chunk) Session {
	s.Output.Append(c.Text)
	return s
}

// CompleteSend interprets the finished run against the accumulated output.
// On success the queue and contact are cleared; on failure both are kept so
// the send can be retried.
func (s Session) CompleteSend(res mailer.Result) Session {
	if s.Phase != Sending {
		return s
	}
	s.Outcome = mailer.Interpret(res, s.Output.String())
	s.HasOutcome = true
	s.Phase = Completed
	s.BannerSeq++
	if s.Outcome.Success {
		s = s.ClearQueue().ClearContact()
	}
	return s
}

// ExpireBanner returns to Idle if seq still names the visible banner.
func (s Session) ExpireBanner(seq int) Session {
	if s.Phase != Completed || seq != s.BannerSeq {
		return s
	}
	s.Phase = Idle
	return s
}

// BannerVisible reports whether the outcome banner should be shown.
func (s Session) BannerVisible() bool {
	return s.Phase == Completed && s.HasOutcome
}
