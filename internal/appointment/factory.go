package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Address holds the location fields copied into a new record.
type Address struct {
	Street   string
	Number   string
	AreaCode string
	Location string
}

// Factory creates records from the picker selection.
type Factory struct {
	Locale        Locale
	LocalStreet   string
	LocalLocation string
	NewID         func() uuid.UUID
}

// Create builds the record for sel at addr. When local is set the visit is at
// the salon: street and location come from the factory and number and area
// code are left empty.
func (f Factory) Create(sel Selection, addr Address, local bool) Record {
	sel = sel.Normalize()
	newID := f.NewID
	if newID == nil {
		newID = uuid.New
	}

	locale := f.Locale
	if locale.Code == "" {
		locale = LookupLocale(DefaultLocale)
	}
	weekday := time.Date(sel.Year, time.Month(sel.Month), sel.Day, 0, 0, 0, 0, time.UTC).Weekday()

	rec := Record{
		ID:   newID(),
		Date: sel.DateString(),
		Time: sel.TimeString(),
		Day:  locale.Weekday(weekday),
	}
	if local {
		rec.Street = f.LocalStreet
		rec.Location = f.LocalLocation
		return rec
	}
	rec.Street = addr.Street
	rec.Number = addr.Number
	rec.AreaCode = addr.AreaCode
	rec.Location = addr.Location
	return rec
}
