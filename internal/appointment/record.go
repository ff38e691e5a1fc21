package appointment

import "github.com/google/uuid"

// Record is one scheduled grooming visit. Records are immutable values; two
// records with the same Key describe the same appointment.
type Record struct {
	ID       uuid.UUID // list identity only, never sent to the mailer
	Date     string    // DD/MM/YYYY
	Time     string    // HH:MM, 24-hour
	Day      string    // localized weekday name
	Street   string
	Number   string
	AreaCode string
	Location string
}

// Key identifies an appointment slot.
type Key struct {
	Date string
	Time string
}

// Key returns the (date, time) pair used for deduplication.
func (r Record) Key() Key {
	return Key{Date: r.Date, Time: r.Time}
}

// AddressLine joins street and number for display, or returns "".
func (r Record) AddressLine() string {
	switch {
	case r.Street == "" && r.Number == "":
		return ""
	case r.Number == "":
		return r.Street
	case r.Street == "":
		return r.Number
	}
	return r.Street + " " + r.Number
}
