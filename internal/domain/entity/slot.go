package entity

import (
	"fmt"
	"strconv"
	"strings"

	"locator/internal/errors"
)

// MinutesPerDay is the number of minutes in a calendar day; it is also the
// largest value a closing time may take ("24:00").
const MinutesPerDay = 24 * 60

// ErrInvalidSlot is returned when a time-of-day string is not a valid HH:MM value.
var ErrInvalidSlot = errors.New("invalid time of day, expected HH:MM")

// Slot is a time of day expressed in minutes since midnight. Appointment slots
// are identified by their start time; working hours use the same type for
// opening and closing times.
type Slot int

// NewSlot builds a Slot from an hour and minute.
func NewSlot(hour, minute int) Slot {
	return Slot(hour*60 + minute)
}

// ParseSlot parses an "HH:MM" string. "24:00" is accepted so that a closing
// time can mark the end of the day.
func ParseSlot(value string) (Slot, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, errors.Wrapf(ErrInvalidSlot, "parse %q", value)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSlot, "parse %q", value)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSlot, "parse %q", value)
	}

	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return 0, errors.Wrapf(ErrInvalidSlot, "parse %q", value)
	}

	return NewSlot(hour, minute), nil
}

// Hour returns the hour component.
func (s Slot) Hour() int {
	return int(s) / 60
}

// Minute returns the minute component.
func (s Slot) Minute() int {
	return int(s) % 60
}

// IsValid reports whether the slot lies within a day (00:00 to 24:00 inclusive).
func (s Slot) IsValid() bool {
	return s >= 0 && s <= MinutesPerDay
}

// String formats the slot as "HH:MM".
func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour(), s.Minute())
}

// MarshalText encodes the slot as "HH:MM" so JSON carries the wire form.
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes an "HH:MM" value.
func (s *Slot) UnmarshalText(text []byte) error {
	parsed, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// SlotStrings formats a list of slots as "HH:MM" strings.
func SlotStrings(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.String())
	}

	return out
}
