package domain

// EventRecorder collects events produced during one operation and hands them
// out exactly once. It is not safe for concurrent use; handlers create one
// per request.
type EventRecorder struct {
	events []Event
}

// Record appends events in emission order.
func (r *EventRecorder) Record(events ...Event) {
	r.events = append(r.events, events...)
}

// Pending returns the number of events not yet released.
func (r *EventRecorder) Pending() int {
	return len(r.events)
}

// Release returns all recorded events and clears the buffer. A second call
// returns an empty slice.
func (r *EventRecorder) Release() []Event {
	released := r.events
	r.events = nil
	if released == nil {
		return []Event{}
	}
	return released
}
