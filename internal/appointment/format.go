package appointment

import "time"

// Format is an output preset for the picked date and time.
type Format struct {
	Key    string
	Label  string
	Layout string // time.Format layout
}

// Formats lists the presets in cycling order. The first is the default.
var Formats = []Format{
	{Key: "ymd", Label: "YYYY-MM-DD HH:mm", Layout: "2006-01-02 15:04"},
	{Key: "dmy", Label: "DD/MM/YYYY HH:mm", Layout: "02/01/2006 15:04"},
	{Key: "mdy", Label: "MM-DD-YYYY HH:mm", Layout: "01-02-2006 15:04"},
	{Key: "iso8601", Label: "ISO 8601", Layout: "2006-01-02T15:04:05-0700"},
	{Key: "cli", Label: "CLI (mailer)", Layout: "--date 02/01/2006 --time 15:04"},
}

// LookupFormat returns the preset for key, or the default preset.
func LookupFormat(key string) Format {
	for _, f := range Formats {
		if f.Key == key {
			return f
		}
	}
	return Formats[0]
}

// NextFormat returns the key of the preset after key.
func NextFormat(key string) string {
	for i, f := range Formats {
		if f.Key == key {
			return Formats[(i+1)%len(Formats)].Key
		}
	}
	return Formats[0].Key
}

// Format renders the selection with preset f in loc.
func (s Selection) Format(f Format, loc *time.Location) string {
	return s.Time(loc).Format(f.Layout)
}
