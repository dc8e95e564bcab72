package entity

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// statusTransitions lists the legal edges of the appointment state machine.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

// SlotHoldingStatuses are the statuses under which an appointment occupies its slot
// in the availability view. It is every status but cancelled, mirroring the
// uq_appointments_active_slot index (status <> 'cancelled') that guards inserts,
// so a slot listed as available can always be booked.
var SlotHoldingStatuses = []AppointmentStatus{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted}

// IsValid reports whether s is a known status.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}

	return false
}

// IsTerminal reports whether no further transition is possible.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, candidate := range statusTransitions[s] {
		if candidate == next {
			return true
		}
	}

	return false
}

// IsCancellable reports whether an appointment in this status may be cancelled.
func (s AppointmentStatus) IsCancellable() bool {
	return s.CanTransitionTo(StatusCancelled)
}

func (s AppointmentStatus) String() string {
	return string(s)
}
