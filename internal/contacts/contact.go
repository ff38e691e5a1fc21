package contacts

import (
	"log"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
)

// ErrNoDirectory reports that no contacts file is configured or it cannot be read.
var ErrNoDirectory = errors.New("contact directory unavailable")

// malformed is filled into both client and dog when a name cannot be split.
const malformed = "ERR"

// Contact is one entry of the address book. By convention the given name
// holds "Client | Dog".
type Contact struct {
	ID         uuid.UUID
	GivenName  string
	FamilyName string
	Emails     []string
	Addresses  []Address
}

// Address is a postal address attached to a contact.
type Address struct {
	Street     string
	City       string
	PostalCode string
}

// Directory lists every contact in an address book.
type Directory interface {
	FetchAll() ([]Contact, error)
}

// DisplayName is the given and family name joined for list rows.
func (c Contact) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(c.GivenName) + " " + strings.TrimSpace(c.FamilyName))
}

// PrimaryEmail returns the first email or "".
func (c Contact) PrimaryEmail() string {
	if len(c.Emails) == 0 {
		return ""
	}
	return c.Emails[0]
}

// Fields is the form content derived from a contact.
type Fields struct {
	Client   string
	Dog      string
	Email    string
	Street   string
	Number   string
	AreaCode string
	Location string
}

// Fill maps a selected contact onto form fields. The given name is split
// into client and dog; the first email and first address are used. The
// house number stays part of the street line.
func Fill(c Contact) Fields {
	client, dog := SplitClientDog(c.GivenName)
	f := Fields{Client: client, Dog: dog, Email: c.PrimaryEmail()}
	if len(c.Addresses) > 0 {
		a := c.Addresses[0]
		f.Street = a.Street
		f.AreaCode = a.PostalCode
		f.Location = a.City
	}
	return f
}

// SplitClientDog splits "Client | Dog" into its trimmed parts. Anything other
// than exactly one separator yields "ERR" for both.
func SplitClientDog(name string) (client, dog string) {
	parts := strings.Split(name, "|")
	if len(parts) != 2 {
		log.Printf("contacts: expected \"client | dog\", got %q", name)
		return malformed, malformed
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// ValidEmail reports whether s parses as a single RFC 5322 address.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address != ""
}
