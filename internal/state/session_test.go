package state

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/five82/picker/internal/appointment"
	"github.com/five82/picker/internal/contacts"
	"github.com/five82/picker/internal/mailer"
)

var factory = appointment.Factory{
	Locale:        appointment.LookupLocale("nl"),
	LocalStreet:   "Prins Hendrikstraat",
	LocalLocation: "Alkmaar",
}

func feb1() appointment.Selection {
	return appointment.Selection{Year: 2025, Month: 2, Day: 1, Hour: 10, Minute: 0}
}

func queued(t *testing.T) Session {
	t.Helper()
	s := New(feb1())
	s = s.SelectContact(contacts.Contact{
		ID:        uuid.New(),
		GivenName: "Jane Doe | Rex",
		Emails:    []string{"jane@x.com"},
		Addresses: []contacts.Address{{Street: "Main St 5", City: "Heiloo", PostalCode: "1851AB"}},
	})
	s, added := s.AddAppointment(factory)
	if !added {
		t.Fatalf("AddAppointment added = false, want true")
	}
	return s
}

func TestAddAppointmentDeduplicatesAndKeepsOriginal(t *testing.T) {
	s := queued(t)
	before := s

	s2, added := s.AddAppointment(factory)
	if added {
		t.Fatalf("duplicate AddAppointment added = true, want false")
	}
	if s2.Queue.Len() != 1 {
		t.Fatalf("Queue.Len() = %d, want 1", s2.Queue.Len())
	}

	s3, _ := s.WithSelection(feb1().StepHour(1)).AddAppointment(factory)
	if s3.Queue.Len() != 2 {
		t.Fatalf("Queue.Len() = %d, want 2", s3.Queue.Len())
	}
	if before.Queue.Len() != 1 {
		t.Fatalf("original session queue changed: Len() = %d, want 1", before.Queue.Len())
	}

	rec, _ := s3.Queue.At(0)
	if rec.Day != "Zaterdag" || rec.Street != "Main St 5" || rec.Location != "Heiloo" {
		t.Fatalf("record = %+v, want Zaterdag at Main St 5, Heiloo", rec)
	}
}

func TestAddAppointmentLocal(t *testing.T) {
	s := queued(t).ClearQueue().ToggleLocal()
	s, _ = s.AddAppointment(factory)
	rec, ok := s.Queue.At(0)
	if !ok {
		t.Fatalf("At(0) missing")
	}
	if rec.Street != "Prins Hendrikstraat" || rec.Location != "Alkmaar" || rec.AreaCode != "" || rec.Number != "" {
		t.Fatalf("local record = %+v, want salon address", rec)
	}
}

func TestRemoveAppointment(t *testing.T) {
	s := queued(t)
	if _, err := s.RemoveAppointment(3); !errors.Is(err, appointment.ErrIndexOutOfRange) {
		t.Fatalf("RemoveAppointment(3) err = %v, want ErrIndexOutOfRange", err)
	}
	s2, err := s.RemoveAppointment(0)
	if err != nil {
		t.Fatalf("RemoveAppointment(0) err = %v", err)
	}
	if s2.Queue.Len() != 0 || s.Queue.Len() != 1 {
		t.Fatalf("Len after remove = %d (original %d), want 0 (1)", s2.Queue.Len(), s.Queue.Len())
	}
}

func TestSendLifecycleSuccessClearsQueueAndContact(t *testing.T) {
	s := queued(t)

	s, args, err := s.BeginSend()
	if err != nil {
		t.Fatalf("BeginSend err = %v", err)
	}
	if s.Phase != Sending {
		t.Fatalf("Phase = %v, want sending", s.Phase)
	}
	if !strings.HasPrefix(args, `appointment --client "Jane Doe" --email "jane@x.com" --dog "Rex" '[{`) {
		t.Fatalf("args = %q", args)
	}

	if _, _, err := s.BeginSend(); !errors.Is(err, ErrSendInFlight) {
		t.Fatalf("second BeginSend err = %v, want ErrSendInFlight", err)
	}

	s = s.AppendOutput(mailer.Chunk{Stream: mailer.Stdout, Text: "HTTP Status Code: 500\n"})
	s = s.AppendOutput(mailer.Chunk{Stream: mailer.Stdout, Text: `{"success": true, "message": "ok"}`})
	s = s.CompleteSend(mailer.Result{Launched: true, ExitCode: 1})

	if s.Phase != Completed || !s.BannerVisible() {
		t.Fatalf("Phase = %v, BannerVisible = %v, want completed banner", s.Phase, s.BannerVisible())
	}
	if !s.Outcome.Success || s.Outcome.Message != "ok" {
		t.Fatalf("Outcome = %+v, want success ok", s.Outcome)
	}
	if s.Queue.Len() != 0 || s.Fields != (contacts.Fields{}) || s.Selected != uuid.Nil {
		t.Fatalf("success should clear queue and contact, got queue %d fields %+v", s.Queue.Len(), s.Fields)
	}
	if !strings.Contains(s.Output.String(), "HTTP Status Code: 500") {
		t.Fatalf("Output = %q, want mailer output kept", s.Output.String())
	}
}

func TestSendFailureKeepsQueueForRetry(t *testing.T) {
	s := queued(t)
	s, _, _ = s.BeginSend()
	s = s.AppendOutput(mailer.Chunk{Stream: mailer.Stderr, Text: "HTTP Status Code: 404\nsome error\n"})
	s = s.CompleteSend(mailer.Result{Launched: true, ExitCode: 0})

	if s.Outcome.Success {
		t.Fatalf("Outcome.Success = true, want false")
	}
	if s.Queue.Len() != 1 || s.Fields.Client != "Jane Doe" {
		t.Fatalf("failure should keep queue and contact, got queue %d client %q", s.Queue.Len(), s.Fields.Client)
	}

	s, _, err := s.BeginSend()
	if err != nil {
		t.Fatalf("retry BeginSend err = %v", err)
	}
	if s.Output.Len() != 0 || s.HasOutcome {
		t.Fatalf("retry should reset output and outcome, got %q", s.Output.String())
	}
}

func TestLaunchFailureOutcome(t *testing.T) {
	s := queued(t)
	s, _, _ = s.BeginSend()
	s = s.AppendOutput(mailer.Chunk{Stream: mailer.Stderr, Text: "launch failed: exec: no such file\n"})
	s = s.CompleteSend(mailer.Result{Launched: false, ExitCode: -1, Err: errors.New("exec: no such file")})

	if s.Outcome.Success || s.Outcome.HasExit {
		t.Fatalf("Outcome = %+v, want failure without exit code", s.Outcome)
	}
	if !strings.Contains(s.Output.String(), "launch failed") {
		t.Fatalf("Output = %q, want launch error text", s.Output.String())
	}
}

func TestExpireBannerIgnoresStaleSequence(t *testing.T) {
	s := queued(t)
	s, _, _ = s.BeginSend()
	s = s.CompleteSend(mailer.Result{Launched: true, ExitCode: 2})
	first := s.BannerSeq

	s, _, _ = s.BeginSend()
	if got := s.ExpireBanner(first); got.Phase != Sending {
		t.Fatalf("stale expiry during send: Phase = %v, want sending", got.Phase)
	}
	s = s.CompleteSend(mailer.Result{Launched: true, ExitCode: 2})

	if got := s.ExpireBanner(first); got.Phase != Completed {
		t.Fatalf("stale expiry: Phase = %v, want completed", got.Phase)
	}
	if got := s.ExpireBanner(s.BannerSeq); got.Phase != Idle || got.BannerVisible() {
		t.Fatalf("current expiry: Phase = %v, want idle", got.Phase)
	}
}

func TestCompleteSendOutsideSendingIsNoop(t *testing.T) {
	s := queued(t)
	got := s.CompleteSend(mailer.Result{Launched: true})
	if got.Phase != Idle || got.HasOutcome || got.BannerSeq != 0 {
		t.Fatalf("CompleteSend while idle changed session: %+v", got.Phase)
	}
}

func TestVisibleContacts(t *testing.T) {
	s := New(feb1()).WithContacts([]contacts.Contact{
		{GivenName: "Zoë | Bello"},
		{GivenName: "Jane | Rex"},
	})
	if got := len(s.VisibleContacts()); got != 2 {
		t.Fatalf("VisibleContacts() = %d, want 2", got)
	}
	s = s.WithSearch("zoe")
	got := s.VisibleContacts()
	if len(got) != 1 || got[0].GivenName != "Zoë | Bello" {
		t.Fatalf("VisibleContacts() = %+v, want Zoë", got)
	}
}

func TestPhaseString(t *testing.T) {
	for phase, want := range map[Phase]string{Idle: "idle", Sending: "sending", Completed: "completed"} {
		if got := phase.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
