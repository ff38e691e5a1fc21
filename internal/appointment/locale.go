package appointment

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale names weekdays and months for display and for the Day field.
type Locale struct {
	Code     string
	tag      language.Tag
	weekdays [7]string  // indexed by time.Weekday
	months   [12]string // January first
}

const DefaultLocale = "nl"

var locales = map[string]Locale{
	"nl": {
		Code:     "nl",
		tag:      language.Dutch,
		weekdays: [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
		months: [12]string{"januari", "februari", "maart", "april", "mei", "juni",
			"juli", "augustus", "september", "oktober", "november", "december"},
	},
	"en": {
		Code:     "en",
		tag:      language.English,
		weekdays: [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
		months: [12]string{"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december"},
	},
}

// LookupLocale returns the locale for code, falling back to Dutch.
func LookupLocale(code string) Locale {
	if l, ok := locales[strings.ToLower(strings.TrimSpace(code))]; ok {
		return l
	}
	return locales[DefaultLocale]
}

// Weekday returns the capitalized weekday name.
func (l Locale) Weekday(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return cases.Title(l.tag).String(l.weekdays[d])
}

// Month returns the capitalized month name for month (1-12).
func (l Locale) Month(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return cases.Title(l.tag).String(l.months[month-1])
}
