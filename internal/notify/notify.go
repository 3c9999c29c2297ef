package notify

// Event is a real-time message pushed to connected clients.
type Event struct {
	Message string `json:"message"`
}

// Broadcaster publishes events to all currently connected clients.
// Delivery is fire-and-forget: callers must not assume anyone received it.
type Broadcaster interface {
	Publish(ev Event)
}

// Recorder is a Broadcaster that captures published events for assertions.
type Recorder struct {
	Events []Event
}

// Publish appends the event to the recorded list.
func (r *Recorder) Publish(ev Event) {
	r.Events = append(r.Events, ev)
}

var _ Broadcaster = (*Recorder)(nil)
