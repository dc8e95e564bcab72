package entity

import "time"

// DayHours is the opening window of a provider on one weekday.
type DayHours struct {
	Open   Slot `json:"open"`
	Close  Slot `json:"close"`
	Closed bool `json:"closed"`
}

// WorkingHours maps each weekday to its opening window. A weekday with no
// entry is treated as closed.
type WorkingHours map[time.Weekday]DayHours

// For returns the hours for the given weekday.
func (w WorkingHours) For(day time.Weekday) DayHours {
	hours, ok := w[day]
	if !ok {
		return DayHours{Closed: true}
	}

	return hours
}

// WeekdayNames maps the lowercase English weekday names used on the wire
// to time.Weekday.
var WeekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}
